package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"
)

type progressFixture struct {
	store       *memStore
	tasks       *memTaskRepo
	completions *memCompletionRepo
	focus       *memFocusRepo
	svc         *ProgressService
	task        dom.Task
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	store, tasks, completions, focus := newMemRepos()
	svc := NewProgressService(tasks, completions, focus, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	task, err := tasks.Create(context.Background(), dom.Task{
		UserID: 1, Title: "write report", Priority: dom.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return &progressFixture{store: store, tasks: tasks, completions: completions, focus: focus, svc: svc, task: task}
}

func TestToggleCreatesThenDeletes(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	res, err := f.svc.Toggle(ctx, 1, f.task.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !res.Completed {
		t.Fatal("first toggle should mark complete")
	}
	if res.Completion == nil || !res.Completion.Completed {
		t.Fatalf("expected a completion record, got %+v", res.Completion)
	}
	if res.Day != "2026-08-28" {
		t.Fatalf("expected day 2026-08-28, got %s", res.Day)
	}
	if len(f.store.completions) != 1 {
		t.Fatalf("expected 1 stored completion, got %d", len(f.store.completions))
	}

	res, err = f.svc.Toggle(ctx, 1, f.task.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if res.Completed {
		t.Fatal("second toggle should mark incomplete")
	}
	if res.Completion != nil {
		t.Fatal("unmarking must not return a record")
	}
	if len(f.store.completions) != 0 {
		t.Fatalf("record must be deleted, got %d left", len(f.store.completions))
	}
}

func TestToggleParityRestoresState(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	// The record exists iff an odd number of toggles happened today.
	for i := 0; i < 5; i++ {
		if _, err := f.svc.Toggle(ctx, 1, f.task.ID); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
	if len(f.store.completions) != 1 {
		t.Fatalf("after 5 toggles expected 1 record, got %d", len(f.store.completions))
	}
	if _, err := f.svc.Toggle(ctx, 1, f.task.ID); err != nil {
		t.Fatalf("toggle 6: %v", err)
	}
	if len(f.store.completions) != 0 {
		t.Fatalf("after 6 toggles expected 0 records, got %d", len(f.store.completions))
	}
}

func TestToggleUnknownTaskNotFound(t *testing.T) {
	f := newProgressFixture(t)
	if _, err := f.svc.Toggle(context.Background(), 1, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleOtherOwnersTaskNotFound(t *testing.T) {
	f := newProgressFixture(t)
	if _, err := f.svc.Toggle(context.Background(), 2, f.task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign task, got %v", err)
	}
}

// blindDeleteRepo simulates the race window: the losing request's delete sees
// nothing (the winner hasn't committed yet), then its create hits the unique
// index.
type blindDeleteRepo struct {
	*memCompletionRepo
}

func (r *blindDeleteRepo) DeleteByTaskDay(context.Context, int64, int64, string) (bool, error) {
	return false, nil
}

func TestToggleLosingConcurrentCreateIsSuccess(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	// Winner's record is already in place.
	winner, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-28", time.Now())
	if err != nil {
		t.Fatalf("seed winner: %v", err)
	}

	svc := NewProgressService(f.tasks, &blindDeleteRepo{f.completions}, f.focus, nil)
	svc.now = f.svc.now

	res, err := svc.Toggle(ctx, 1, f.task.ID)
	if err != nil {
		t.Fatalf("losing toggle must not error: %v", err)
	}
	if !res.Completed {
		t.Fatal("losing create must be reported as marked complete")
	}
	if res.Completion == nil || res.Completion.ID != winner.ID {
		t.Fatalf("expected the winner's record, got %+v", res.Completion)
	}
	if len(f.store.completions) != 1 {
		t.Fatalf("no second record may exist, got %d", len(f.store.completions))
	}
}

func TestDirectDuplicateCreateRejected(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	if _, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-28", time.Now()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-28", time.Now()); !errors.Is(err, repo.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestTodayListsOnlyTodaysRecords(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	if _, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-28", time.Now()); err != nil {
		t.Fatalf("create today: %v", err)
	}
	if _, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-27", time.Now()); err != nil {
		t.Fatalf("create yesterday: %v", err)
	}

	list, err := f.svc.Today(ctx, 1)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 completion today, got %d", len(list))
	}
	if list[0].Task.ID != f.task.ID {
		t.Fatalf("expected populated task %d, got %d", f.task.ID, list[0].Task.ID)
	}
	if list[0].DayKey() != "2026-08-28" {
		t.Fatalf("expected today's key, got %s", list[0].DayKey())
	}
}

func TestCleanupPrunesOrphans(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	if _, err := f.completions.Create(ctx, 1, f.task.ID, "2026-08-27", time.Now()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.Toggle(ctx, 1, f.task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// Simulate an interrupted cascade: the task row vanished but its records
	// survived.
	delete(f.store.tasks, f.task.ID)

	res, err := f.svc.Cleanup(ctx, 1)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if res.Completions != 2 {
		t.Fatalf("expected 2 pruned completions, got %d", res.Completions)
	}
	if len(f.store.completions) != 0 {
		t.Fatalf("orphans left behind: %d", len(f.store.completions))
	}

	res, err = f.svc.Cleanup(ctx, 1)
	if err != nil {
		t.Fatalf("second cleanup: %v", err)
	}
	if res.Completions != 0 || res.FocusEntries != 0 {
		t.Fatalf("expected zero orphans on second pass, got %+v", res)
	}
}

func TestCleanupScopedToOwner(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	// Another user's orphan must survive user 1's cleanup.
	if _, err := f.completions.Create(ctx, 2, 999, "2026-08-28", time.Now()); err != nil {
		t.Fatalf("create foreign orphan: %v", err)
	}
	res, err := f.svc.Cleanup(ctx, 1)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if res.Completions != 0 {
		t.Fatalf("cleanup crossed owners: %+v", res)
	}
	if len(f.store.completions) != 1 {
		t.Fatal("foreign orphan must remain")
	}
}

func TestToggleDayKeyUsesReferenceZone(t *testing.T) {
	ctx := context.Background()
	f := newProgressFixture(t)

	// 18:30:01 UTC is already the next reference day.
	f.svc.now = func() time.Time { return time.Date(2026, 8, 28, 18, 30, 1, 0, time.UTC) }
	res, err := f.svc.Toggle(ctx, 1, f.task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.Day != "2026-08-29" {
		t.Fatalf("expected reference day 2026-08-29, got %s", res.Day)
	}
	if res.Day != clock.DayKey(f.svc.now()) {
		t.Fatal("day must match clock.DayKey")
	}
}
