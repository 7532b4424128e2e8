package repository

import (
	"context"

	"daily-planner/internal/model"
)

// Repository is the per-user state store. Writes replace the whole record.
type Repository interface {
	// GetState returns the user's record. A missing record is the zero value
	// (UserID == "") and no error.
	GetState(ctx context.Context, userID string) (model.UserState, error)

	// SaveState replaces the record keyed by state.UserID.
	SaveState(ctx context.Context, state model.UserState) error
}
