package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"daily-planner/internal/model"
	repo "daily-planner/internal/schedule/repository"
	"daily-planner/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()).(*implRepository)
}

func sampleSchedule() *model.Schedule {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return &model.Schedule{
		Tasks: []model.Task{{
			ID: "t1", Name: "Email", Duration: 30, Priority: "high",
			StartTime: model.At(start), EndTime: model.At(start.Add(30 * time.Minute)),
		}},
		Breaks:           []model.Break{{Time: model.At(start.Add(90 * time.Minute)), Duration: 15}},
		StartTime:        model.At(start),
		CurrentTaskIndex: 0,
		Status:           model.StatusActive,
	}
}

func TestGetState_NotFound(t *testing.T) {
	r := newTestRepo(t)

	state, err := r.GetState(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Exists() || state.Schedule != nil {
		t.Errorf("expected zero value, got %+v", state)
	}
}

func TestSaveAndGetState(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	in := model.UserState{
		UserID:   "u1",
		Schedule: sampleSchedule(),
		ConversationHistory: []model.ConversationTurn{
			{Role: model.RoleUser, Content: "hi", Timestamp: model.At(time.UnixMilli(1000))},
		},
	}
	if err := r.SaveState(ctx, in); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := r.GetState(ctx, "u1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if got.UserID != "u1" || got.Schedule == nil {
		t.Fatalf("unexpected state %+v", got)
	}
	task := got.Schedule.Tasks[0]
	if task.ID != "t1" || task.Priority != "high" || !task.EndTime.Equal(in.Schedule.Tasks[0].EndTime.Time) {
		t.Errorf("task not round-tripped: %+v", task)
	}
	if len(got.Schedule.Breaks) != 1 || got.Schedule.Breaks[0].Duration != 15 {
		t.Errorf("breaks not round-tripped: %+v", got.Schedule.Breaks)
	}
	if len(got.ConversationHistory) != 1 || got.ConversationHistory[0].Content != "hi" {
		t.Errorf("history not round-tripped: %+v", got.ConversationHistory)
	}
}

func TestSaveState_Overwrites(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	r.SaveState(ctx, model.UserState{UserID: "u1", Schedule: sampleSchedule(), ConversationHistory: []model.ConversationTurn{{Role: model.RoleUser, Content: "old"}}})
	if err := r.SaveState(ctx, model.UserState{UserID: "u1"}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, _ := r.GetState(ctx, "u1")
	if got.Schedule != nil {
		t.Errorf("expected schedule cleared, got %+v", got.Schedule)
	}
	if got.ConversationHistory == nil || len(got.ConversationHistory) != 0 {
		t.Errorf("expected empty history, got %+v", got.ConversationHistory)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	r.SaveState(ctx, model.UserState{UserID: "a", Schedule: sampleSchedule()})
	r.SaveState(ctx, model.UserState{UserID: "b"})

	a, _ := r.GetState(ctx, "a")
	b, _ := r.GetState(ctx, "b")
	if a.Schedule == nil || b.Schedule != nil {
		t.Errorf("records leaked between users: a=%+v b=%+v", a, b)
	}
}

func TestGetState_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	if _, err := r.db.ExecContext(ctx, `INSERT INTO user_states (user_id, schedule, conversation_history, updated_at) VALUES ('u1', '{bad', '[]', 0)`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := r.GetState(ctx, "u1"); !errors.Is(err, repo.ErrFailedToDecode) {
		t.Errorf("expected ErrFailedToDecode, got %v", err)
	}
}

func TestOpen_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	New(db, log.NewNop()).SaveState(ctx, model.UserState{UserID: "u1", Schedule: sampleSchedule()})
	db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := New(db, log.NewNop()).GetState(ctx, "u1")
	if err != nil || got.Schedule == nil {
		t.Errorf("record not persisted across reopen: %+v %v", got, err)
	}
}
