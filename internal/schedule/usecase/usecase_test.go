package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"daily-planner/internal/assistant"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/schedule"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("builds and persists a schedule", func(t *testing.T) {
		repo := newMockRepo()
		asst := &mockAssistant{}
		uc := newTestUseCase(repo, asst, t0.Add(30*time.Second))

		out, err := uc.Initialize(ctx, schedule.InitializeInput{UserID: "u1", Tasks: []string{" Email ", "", "Code"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(asst.draftNames) != 2 || asst.draftNames[0] != "Email" {
			t.Errorf("expected cleaned names, got %v", asst.draftNames)
		}
		wantStart := t0.Add(time.Minute)
		if !out.Schedule.StartTime.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, out.Schedule.StartTime)
		}
		if out.Schedule.Status != model.StatusActive || out.Schedule.CurrentTaskIndex != 0 {
			t.Errorf("unexpected status/index: %s/%d", out.Schedule.Status, out.Schedule.CurrentTaskIndex)
		}
		if len(out.Schedule.Tasks) != 2 || !out.Schedule.Tasks[0].StartTime.Equal(wantStart) {
			t.Fatalf("unexpected tasks: %+v", out.Schedule.Tasks)
		}
		if out.Schedule.Tasks[0].ID == out.Schedule.Tasks[1].ID || out.Schedule.Tasks[0].ID == "" {
			t.Errorf("task ids must be unique and non-empty: %+v", out.Schedule.Tasks)
		}
		if out.Commentary != assistant.MessageDraftFallback {
			t.Errorf("unexpected commentary %q", out.Commentary)
		}

		stored := repo.get("u1")
		if stored.Schedule == nil || len(stored.Schedule.Tasks) != 2 || stored.Schedule.Status != model.StatusActive {
			t.Errorf("schedule not persisted: %+v", stored.Schedule)
		}
		if repo.saves != 2 {
			t.Errorf("expected planning and final saves, got %d", repo.saves)
		}
	})

	t.Run("task ids are deterministic", func(t *testing.T) {
		in := schedule.InitializeInput{UserID: "u1", Tasks: []string{"Email", "Code"}}
		a, _ := newTestUseCase(newMockRepo(), &mockAssistant{}, t0).Initialize(ctx, in)
		b, _ := newTestUseCase(newMockRepo(), &mockAssistant{}, t0).Initialize(ctx, in)
		if a.Schedule.Tasks[1].ID != b.Schedule.Tasks[1].ID {
			t.Errorf("expected same ids for same user/start, got %s and %s", a.Schedule.Tasks[1].ID, b.Schedule.Tasks[1].ID)
		}
	})

	t.Run("resets conversation history", func(t *testing.T) {
		repo := newMockRepo()
		repo.put(model.UserState{UserID: "u1", ConversationHistory: []model.ConversationTurn{{Role: model.RoleUser, Content: "old"}}})
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		if _, err := uc.Initialize(ctx, schedule.InitializeInput{UserID: "u1", Tasks: []string{"Email"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h := repo.get("u1").ConversationHistory; len(h) != 0 {
			t.Errorf("expected empty history, got %+v", h)
		}
	})

	t.Run("uses model draft", func(t *testing.T) {
		asst := &mockAssistant{draft: &assistant.Draft{
			Tasks:      []assistant.DraftTask{{Name: "Code", Duration: 100, Priority: "high"}, {Name: "Email", Duration: 50}},
			Commentary: "Deep work first.",
			Source:     assistant.DraftSourceModel,
		}}
		uc := newTestUseCase(newMockRepo(), asst, t0)

		out, err := uc.Initialize(ctx, schedule.InitializeInput{UserID: "u1", Tasks: []string{"Email", "Code"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Schedule.Tasks[0].Name != "Code" || out.Schedule.Tasks[0].Priority != "high" {
			t.Errorf("expected model order, got %+v", out.Schedule.Tasks)
		}
		if len(out.Schedule.Breaks) != 1 {
			t.Errorf("expected one break after the 100 minute task, got %+v", out.Schedule.Breaks)
		}
		if out.Commentary != "Deep work first." {
			t.Errorf("unexpected commentary %q", out.Commentary)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), &mockAssistant{}, t0)
		tcs := []schedule.InitializeInput{
			{UserID: "", Tasks: []string{"Email"}},
			{UserID: "u1", Tasks: nil},
			{UserID: "u1", Tasks: []string{" ", ""}},
		}
		for _, in := range tcs {
			if _, err := uc.Initialize(ctx, in); !errors.Is(err, schedule.ErrInvalidPayload) {
				t.Errorf("%+v: expected ErrInvalidPayload, got %v", in, err)
			}
		}
	})

	t.Run("save failure", func(t *testing.T) {
		repo := newMockRepo()
		repo.failSave = true
		uc := newTestUseCase(repo, &mockAssistant{}, t0)
		if _, err := uc.Initialize(ctx, schedule.InitializeInput{UserID: "u1", Tasks: []string{"Email"}}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("failed final save leaves the record idle", func(t *testing.T) {
		repo := newMockRepo()
		repo.failSaveCall = 2
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		if _, err := uc.Initialize(ctx, schedule.InitializeInput{UserID: "u1", Tasks: []string{"Email"}}); !errors.Is(err, errDB) {
			t.Fatalf("expected db error, got %v", err)
		}
		stored := repo.get("u1")
		if stored.Schedule == nil || stored.Schedule.Status != model.StatusIdle || len(stored.Schedule.Tasks) != 0 {
			t.Errorf("expected idle record, got %+v", stored.Schedule)
		}
		if _, err := uc.Progress(ctx, "u1"); !errors.Is(err, schedule.ErrNoActiveSchedule) {
			t.Errorf("expected ErrNoActiveSchedule, got %v", err)
		}
	})
}

func TestState(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	seedSchedule(repo, "u1")
	uc := newTestUseCase(repo, &mockAssistant{}, t0)

	out, err := uc.State(ctx, "u1")
	if err != nil || !out.Found || out.State.Schedule == nil {
		t.Errorf("expected stored state, got %+v %v", out, err)
	}

	out, err = uc.State(ctx, "ghost")
	if err != nil || out.Found {
		t.Errorf("expected not found, got %+v %v", out, err)
	}

	repo.failGet = true
	if _, err := uc.State(ctx, "u1"); err == nil {
		t.Error("expected repository error")
	}
}

func TestProgress(t *testing.T) {
	ctx := context.Background()

	tcs := map[string]struct {
		at            time.Duration
		wantIndex     int
		wantRemaining int
		wantWrite     bool
	}{
		"first task mid-way": {
			at:            30 * time.Minute,
			wantIndex:     0,
			wantRemaining: 15,
		},
		"overdue incomplete task holds the pointer": {
			at:        65 * time.Minute,
			wantIndex: 0,
		},
		"before start keeps pointer": {
			at:            -10 * time.Minute,
			wantIndex:     0,
			wantRemaining: 55,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := newMockRepo()
			seedSchedule(repo, "u1")
			uc := newTestUseCase(repo, &mockAssistant{}, t0.Add(tc.at))

			out, err := uc.Progress(ctx, "u1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Schedule.CurrentTaskIndex != tc.wantIndex || out.CurrentTask.Task.ID != out.Schedule.Tasks[tc.wantIndex].ID {
				t.Errorf("expected index %d, got %d (%s)", tc.wantIndex, out.Schedule.CurrentTaskIndex, out.CurrentTask.Task.ID)
			}
			if out.CurrentTask.TimeRemaining != tc.wantRemaining {
				t.Errorf("expected %d minutes remaining, got %d", tc.wantRemaining, out.CurrentTask.TimeRemaining)
			}
			if out.Total != 2 || out.Completed != 0 {
				t.Errorf("unexpected counts %d/%d", out.Completed, out.Total)
			}
			if out.Commentary == "" {
				t.Error("expected commentary")
			}
			if repo.saves != 0 {
				t.Errorf("expected no write-through, got %d saves", repo.saves)
			}
		})
	}

	t.Run("completed task moves pointer and writes through", func(t *testing.T) {
		repo := newMockRepo()
		s := seedSchedule(repo, "u1")
		s.Tasks[0].Completed = true
		repo.put(model.UserState{UserID: "u1", Schedule: &s})
		uc := newTestUseCase(repo, &mockAssistant{}, t0.Add(50*time.Minute))

		out, err := uc.Progress(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentTask.Task.ID != "b" || out.CurrentTask.TimeRemaining != 40 {
			t.Errorf("expected task b with 40 minutes, got %s/%d", out.CurrentTask.Task.ID, out.CurrentTask.TimeRemaining)
		}
		if repo.saves != 1 || repo.get("u1").Schedule.CurrentTaskIndex != 1 {
			t.Errorf("expected pointer written through, saves=%d", repo.saves)
		}

		// Resolving again at the same instant is a no-op.
		if _, err := uc.Progress(ctx, "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Errorf("expected idempotent resolve, saves=%d", repo.saves)
		}
	})

	t.Run("break remaining", func(t *testing.T) {
		repo := newMockRepo()
		tasks := []model.Task{{ID: "a", Name: "Deep work", Duration: 100}, {ID: "b", Name: "Email", Duration: 50}}
		sch := planner.BuildTimeline(tasks, t0, planner.DefaultPolicy())
		repo.put(model.UserState{UserID: "u1", Schedule: &sch})
		uc := newTestUseCase(repo, &mockAssistant{}, t0.Add(40*time.Minute))

		out, err := uc.Progress(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentTask.BreakTimeRemaining == nil || *out.CurrentTask.BreakTimeRemaining != 60 {
			t.Errorf("expected break in 60 minutes, got %v", out.CurrentTask.BreakTimeRemaining)
		}
	})

	t.Run("no active schedule", func(t *testing.T) {
		repo := newMockRepo()
		repo.put(model.UserState{UserID: "planning", Schedule: &model.Schedule{Status: model.StatusPlanning}})
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		for _, id := range []string{"ghost", "planning"} {
			if _, err := uc.Progress(ctx, id); !errors.Is(err, schedule.ErrNoActiveSchedule) {
				t.Errorf("%s: expected ErrNoActiveSchedule, got %v", id, err)
			}
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("completing advances the pointer", func(t *testing.T) {
		repo := newMockRepo()
		seedSchedule(repo, "u1")
		asst := &mockAssistant{}
		uc := newTestUseCase(repo, asst, t0.Add(10*time.Minute))

		out, err := uc.UpdateTask(ctx, schedule.UpdateTaskInput{UserID: "u1", TaskID: "a", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Schedule.Tasks[0].Completed || out.Schedule.CurrentTaskIndex != 1 {
			t.Errorf("unexpected schedule %+v", out.Schedule)
		}
		if len(asst.commentary) != 1 || asst.commentary[0].Task.ID != "b" || asst.commentary[0].Completed != 1 {
			t.Errorf("expected commentary about task b, got %+v", asst.commentary)
		}
		if !repo.get("u1").Schedule.Tasks[0].Completed {
			t.Error("completion not persisted")
		}
	})

	t.Run("completing every task completes the schedule", func(t *testing.T) {
		repo := newMockRepo()
		seedSchedule(repo, "u1")
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		uc.UpdateTask(ctx, schedule.UpdateTaskInput{UserID: "u1", TaskID: "a", Completed: true})
		out, err := uc.UpdateTask(ctx, schedule.UpdateTaskInput{UserID: "u1", TaskID: "b", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Schedule.Status != model.StatusCompleted || out.Schedule.CurrentTaskIndex != 1 {
			t.Errorf("expected completed schedule at last index, got %s/%d", out.Schedule.Status, out.Schedule.CurrentTaskIndex)
		}

		out, _ = uc.UpdateTask(ctx, schedule.UpdateTaskInput{UserID: "u1", TaskID: "b", Completed: false})
		if out.Schedule.Status != model.StatusActive {
			t.Errorf("expected active after un-completing, got %s", out.Schedule.Status)
		}
	})

	t.Run("errors", func(t *testing.T) {
		repo := newMockRepo()
		seedSchedule(repo, "u1")
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		tcs := map[string]struct {
			input   schedule.UpdateTaskInput
			wantErr error
		}{
			"unknown task":     {schedule.UpdateTaskInput{UserID: "u1", TaskID: "zzz", Completed: true}, schedule.ErrTaskNotFound},
			"unknown schedule": {schedule.UpdateTaskInput{UserID: "ghost", TaskID: "a", Completed: true}, schedule.ErrScheduleNotFound},
			"missing task id":  {schedule.UpdateTaskInput{UserID: "u1"}, schedule.ErrInvalidPayload},
		}
		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				if _, err := uc.UpdateTask(ctx, tc.input); !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
		if repo.saves != 0 {
			t.Errorf("failed updates must not write, saves=%d", repo.saves)
		}
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("appends both turns", func(t *testing.T) {
		repo := newMockRepo()
		seedSchedule(repo, "u1")
		asst := &mockAssistant{reply: "Sure."}
		uc := newTestUseCase(repo, asst, t0)

		out, err := uc.Chat(ctx, schedule.ChatInput{UserID: "u1", Message: " hello "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Sure." {
			t.Errorf("unexpected reply %q", out.Response)
		}

		h := repo.get("u1").ConversationHistory
		if len(h) != 2 || h[0].Role != model.RoleUser || h[0].Content != "hello" || h[1].Role != model.RoleAssistant || h[1].Content != "Sure." {
			t.Errorf("unexpected history %+v", h)
		}
		if repo.get("u1").Schedule == nil {
			t.Error("schedule must survive a chat append")
		}

		uc.Chat(ctx, schedule.ChatInput{UserID: "u1", Message: "again"})
		if len(asst.lastHistory) != 2 {
			t.Errorf("expected previous turns as context, got %d", len(asst.lastHistory))
		}
	})

	t.Run("creates record for unknown user", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		if _, err := uc.Chat(ctx, schedule.ChatInput{UserID: "new", Message: "hi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state := repo.get("new")
		if state.UserID != "new" || state.Schedule != nil || len(state.ConversationHistory) != 2 {
			t.Errorf("unexpected record %+v", state)
		}
	})

	t.Run("storage failure does not fail the reply", func(t *testing.T) {
		repo := newMockRepo()
		repo.failGet = true
		repo.failSave = true
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		out, err := uc.Chat(ctx, schedule.ChatInput{UserID: "u1", Message: "hi"})
		if err != nil || out.Response == "" {
			t.Errorf("expected reply despite storage failure, got %+v %v", out, err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), &mockAssistant{}, t0)
		if _, err := uc.Chat(ctx, schedule.ChatInput{UserID: "u1", Message: "  "}); !errors.Is(err, schedule.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("concurrent appends keep every turn", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, &mockAssistant{}, t0)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				uc.Chat(ctx, schedule.ChatInput{UserID: "u1", Message: "hi"})
			}()
		}
		wg.Wait()

		if got := len(repo.get("u1").ConversationHistory); got != 40 {
			t.Errorf("expected 40 turns, got %d", got)
		}
		if uc.locks.size() != 0 {
			t.Errorf("expected lock table drained, got %d", uc.locks.size())
		}
	})
}
