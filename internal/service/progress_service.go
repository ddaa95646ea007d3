package service

import (
	"context"
	"errors"
	"time"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/cache"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

// ToggleResult tells the caller what state the toggle left today in.
// Completion is set only when the task was just marked complete.
type ToggleResult struct {
	Completed  bool
	Day        string
	Completion *dom.DailyCompletion
}

// CleanupResult counts orphan rows pruned per entity.
type CleanupResult struct {
	Completions  int64
	FocusEntries int64
}

// ProgressService flips and reads per-day completion state. A day's state is
// the presence or absence of a DailyCompletion row, never a mutable flag.
type ProgressService struct {
	tasks       repo.TaskRepo
	completions repo.CompletionRepo
	focus       repo.FocusRepo
	stats       *cache.StatsCache
	now         func() time.Time
}

// NewProgressService creates a ProgressService. If c is nil, analytics cache
// invalidation is skipped.
func NewProgressService(tasks repo.TaskRepo, completions repo.CompletionRepo, focus repo.FocusRepo, c *cache.StatsCache) *ProgressService {
	return &ProgressService{tasks: tasks, completions: completions, focus: focus, stats: c, now: time.Now}
}

// Toggle flips the task's completion for today (reference timezone).
// Absent -> create ("marked complete"); present -> delete ("marked
// incomplete"). A concurrent create losing to the uniqueness constraint is
// reported as success: the other writer already reached the complete state.
func (s *ProgressService) Toggle(ctx context.Context, userID, taskID int64) (ToggleResult, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ToggleResult{}, ErrNotFound
		}
		return ToggleResult{}, err
	}

	now := s.now()
	day := clock.DayKey(now)

	deleted, err := s.completions.DeleteByTaskDay(ctx, userID, taskID, day)
	if err != nil {
		return ToggleResult{}, err
	}
	if deleted {
		s.invalidateStats(ctx, userID)
		return ToggleResult{Completed: false, Day: day}, nil
	}

	c, err := s.completions.Create(ctx, userID, taskID, day, now.UTC())
	if errors.Is(err, repo.ErrConstraint) {
		existing, getErr := s.completions.GetByTaskDay(ctx, userID, taskID, day)
		if getErr == nil {
			c, err = existing, nil
		} else {
			// The winner's row is already gone again; today still counts as
			// marked complete from this request's point of view.
			s.invalidateStats(ctx, userID)
			return ToggleResult{Completed: true, Day: day}, nil
		}
	}
	if err != nil {
		return ToggleResult{}, err
	}
	s.invalidateStats(ctx, userID)
	return ToggleResult{Completed: true, Day: day, Completion: &c}, nil
}

// Today lists today's completions joined with their tasks.
func (s *ProgressService) Today(ctx context.Context, userID int64) ([]dom.CompletionWithTask, error) {
	return s.completions.ListDay(ctx, userID, clock.DayKey(s.now()))
}

// Cleanup prunes completion and focus rows whose task no longer exists.
// Best-effort: a failure on the second prune still reports the first count.
func (s *ProgressService) Cleanup(ctx context.Context, userID int64) (CleanupResult, error) {
	var res CleanupResult
	n, err := s.completions.DeleteOrphans(ctx, userID)
	res.Completions = n
	if err != nil {
		return res, err
	}
	n, err = s.focus.DeleteOrphans(ctx, userID)
	res.FocusEntries = n
	if err != nil {
		return res, err
	}
	if res.Completions > 0 {
		s.invalidateStats(ctx, userID)
	}
	return res, nil
}

func (s *ProgressService) invalidateStats(ctx context.Context, userID int64) {
	if s.stats != nil {
		_ = s.stats.Invalidate(ctx, userID)
	}
}
