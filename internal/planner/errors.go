package planner

import "errors"

var ErrTaskNotFound = errors.New("planner: task not found")
