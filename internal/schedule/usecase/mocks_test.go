package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"daily-planner/internal/assistant"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errDB = errors.New("db error")

// Mock repository keeping records in memory
type mockRepo struct {
	mu       sync.Mutex
	states   map[string]model.UserState
	saves    int
	failGet  bool
	failSave bool

	// failSaveCall fails only the n-th SaveState call (1-based) when set.
	failSaveCall int
	saveCalls    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{states: make(map[string]model.UserState)}
}

func (m *mockRepo) GetState(ctx context.Context, userID string) (model.UserState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return model.UserState{}, errDB
	}
	state := m.states[userID]
	if state.Schedule != nil {
		s := state.Schedule.Clone()
		state.Schedule = &s
	}
	state.ConversationHistory = append([]model.ConversationTurn(nil), state.ConversationHistory...)
	return state, nil
}

func (m *mockRepo) SaveState(ctx context.Context, state model.UserState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.failSave || m.saveCalls == m.failSaveCall {
		return errDB
	}
	if state.Schedule != nil {
		s := state.Schedule.Clone()
		state.Schedule = &s
	}
	m.states[state.UserID] = state
	m.saves++
	return nil
}

func (m *mockRepo) put(state model.UserState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state.UserID] = state
}

func (m *mockRepo) get(userID string) model.UserState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[userID]
}

// Mock assistant recording what it was asked
type mockAssistant struct {
	mu          sync.Mutex
	draft       *assistant.Draft
	reply       string
	draftNames  []string
	commentary  []assistant.CommentaryInput
	lastHistory []model.ConversationTurn
}

func (m *mockAssistant) DraftSchedule(ctx context.Context, names []string) assistant.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draftNames = names
	if m.draft != nil {
		return *m.draft
	}
	return assistant.FallbackDraft(names)
}

func (m *mockAssistant) Commentary(ctx context.Context, in assistant.CommentaryInput) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentary = append(m.commentary, in)
	return assistant.FallbackCommentary(in)
}

func (m *mockAssistant) Reply(ctx context.Context, message string, history []model.ConversationTurn) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastHistory = history
	if m.reply == "" {
		return "ok: " + message
	}
	return m.reply
}

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockRepo, asst *mockAssistant, now time.Time) *implUseCase {
	uc := New(&mockLogger{}, repo, asst, planner.DefaultPolicy())
	uc.now = func() time.Time { return now }
	return uc
}

// seedSchedule stores a two-task schedule [45, 45] starting at t0.
func seedSchedule(repo *mockRepo, userID string) model.Schedule {
	tasks := []model.Task{
		{ID: "a", Name: "Email", Duration: 45},
		{ID: "b", Name: "Code", Duration: 45},
	}
	s := planner.BuildTimeline(tasks, t0, planner.DefaultPolicy())
	repo.put(model.UserState{UserID: userID, Schedule: &s, ConversationHistory: []model.ConversationTurn{}})
	return s
}
