package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"daily-planner/internal/model"
	repo "daily-planner/internal/schedule/repository"
)

// GetState loads the user's record. Not found → zero value, no error.
func (r *implRepository) GetState(ctx context.Context, userID string) (model.UserState, error) {
	const query = `SELECT schedule, conversation_history FROM user_states WHERE user_id = ?`

	var scheduleJSON sql.NullString
	var historyJSON string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&scheduleJSON, &historyJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserState{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetState"), err)
		return model.UserState{}, repo.ErrFailedToGet
	}

	state := model.UserState{UserID: userID, ConversationHistory: []model.ConversationTurn{}}
	if scheduleJSON.Valid && scheduleJSON.String != "" && scheduleJSON.String != "null" {
		var s model.Schedule
		if err := json.Unmarshal([]byte(scheduleJSON.String), &s); err != nil {
			r.l.Errorf(ctx, "%s schedule: %v", r.dsn("GetState"), err)
			return model.UserState{}, repo.ErrFailedToDecode
		}
		s = s.Clone()
		state.Schedule = &s
	}
	if historyJSON != "" {
		if err := json.Unmarshal([]byte(historyJSON), &state.ConversationHistory); err != nil {
			r.l.Errorf(ctx, "%s history: %v", r.dsn("GetState"), err)
			return model.UserState{}, repo.ErrFailedToDecode
		}
		if state.ConversationHistory == nil {
			state.ConversationHistory = []model.ConversationTurn{}
		}
	}
	return state, nil
}

// SaveState upserts the whole record.
func (r *implRepository) SaveState(ctx context.Context, state model.UserState) error {
	const query = `
		INSERT INTO user_states (user_id, schedule, conversation_history, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			schedule = excluded.schedule,
			conversation_history = excluded.conversation_history,
			updated_at = excluded.updated_at`

	var scheduleJSON sql.NullString
	if state.Schedule != nil {
		b, err := json.Marshal(state.Schedule)
		if err != nil {
			r.l.Errorf(ctx, "%s schedule: %v", r.dsn("SaveState"), err)
			return repo.ErrFailedToSave
		}
		scheduleJSON = sql.NullString{String: string(b), Valid: true}
	}

	history := state.ConversationHistory
	if history == nil {
		history = []model.ConversationTurn{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		r.l.Errorf(ctx, "%s history: %v", r.dsn("SaveState"), err)
		return repo.ErrFailedToSave
	}

	if _, err := r.db.ExecContext(ctx, query, state.UserID, scheduleJSON, string(historyJSON), time.Now().UnixMilli()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveState"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
