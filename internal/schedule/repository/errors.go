package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToSave   = errors.New("failed to save record")
	ErrFailedToDecode = errors.New("failed to decode record")
)
