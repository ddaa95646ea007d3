package service

import (
	"context"
	"errors"
	"strings"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/cache"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)

// TaskService handles task CRUD. Deleting a task cascades over its
// completion and focus rows; a failure mid-cascade leaves orphans that the
// cleanup operation prunes later.
type TaskService struct {
	tasks       repo.TaskRepo
	completions repo.CompletionRepo
	focus       repo.FocusRepo
	stats       *cache.StatsCache
}

// NewTaskService creates a TaskService. If c is nil, analytics cache
// invalidation is skipped.
func NewTaskService(tasks repo.TaskRepo, completions repo.CompletionRepo, focus repo.FocusRepo, c *cache.StatsCache) *TaskService {
	return &TaskService{tasks: tasks, completions: completions, focus: focus, stats: c}
}

func (s *TaskService) Create(ctx context.Context, userID int64, title, desc string, priority dom.Priority) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Task{}, ErrEmptyTitle
	}
	if priority == "" {
		priority = dom.PriorityMedium
	}
	if !priority.Valid() {
		return dom.Task{}, ErrInvalidPriority
	}
	t, err := s.tasks.Create(ctx, dom.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(desc),
		Priority:    priority,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateStats(ctx, userID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	return s.tasks.List(ctx, userID)
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, title, desc *string, priority *dom.Priority, completed *bool) (dom.Task, error) {
	existing, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return dom.Task{}, ErrEmptyTitle
		}
		patch.Title = trimmed
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if priority != nil {
		if !priority.Valid() {
			return dom.Task{}, ErrInvalidPriority
		}
		patch.Priority = *priority
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.tasks.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateStats(ctx, userID)
	return t, nil
}

// Delete hard-deletes the task, then its completion and focus rows. The task
// row goes first so that a mid-cascade failure leaves only prunable orphans,
// never a task whose history has silently vanished.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.tasks.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if _, err := s.completions.DeleteByTask(ctx, userID, id); err != nil {
		return err
	}
	if _, err := s.focus.DeleteByTask(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

func (s *TaskService) invalidateStats(ctx context.Context, userID int64) {
	if s.stats != nil {
		_ = s.stats.Invalidate(ctx, userID)
	}
}
