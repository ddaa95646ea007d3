package service

import (
	"context"
	"errors"

	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrAlreadyInFocus = errors.New("task already in focus")

// FocusState is the focus list plus the derived enabled flag.
type FocusState struct {
	Enabled bool
	Entries []dom.FocusEntryWithTask
}

// FocusService maintains the ordered focus subset. "Enabled" is never
// stored: focus mode is on iff at least one entry exists.
type FocusService struct {
	tasks repo.TaskRepo
	focus repo.FocusRepo
}

func NewFocusService(tasks repo.TaskRepo, focus repo.FocusRepo) *FocusService {
	return &FocusService{tasks: tasks, focus: focus}
}

// State returns the current focus list and whether focus mode is active.
func (s *FocusService) State(ctx context.Context, userID int64) (FocusState, error) {
	entries, err := s.focus.List(ctx, userID)
	if err != nil {
		return FocusState{}, err
	}
	return FocusState{Enabled: len(entries) > 0, Entries: entries}, nil
}

// Enable resets focus mode to an empty active state by clearing the set.
func (s *FocusService) Enable(ctx context.Context, userID int64) error {
	_, err := s.focus.DeleteAll(ctx, userID)
	return err
}

// Disable exits focus mode entirely. Same mutation as Enable; kept separate
// because the endpoints document different intents.
func (s *FocusService) Disable(ctx context.Context, userID int64) error {
	_, err := s.focus.DeleteAll(ctx, userID)
	return err
}

// Add appends the task to the focus list at the next order. ErrNotFound if
// the task doesn't exist or isn't the caller's; ErrAlreadyInFocus if an entry
// for it already exists.
func (s *FocusService) Add(ctx context.Context, userID, taskID int64) (dom.FocusEntry, error) {
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.FocusEntry{}, ErrNotFound
		}
		return dom.FocusEntry{}, err
	}
	e, err := s.focus.Add(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrConstraint) {
			return dom.FocusEntry{}, ErrAlreadyInFocus
		}
		return dom.FocusEntry{}, err
	}
	return e, nil
}

// Remove deletes the entry and renumbers survivors to a dense 1..M sequence
// preserving their relative order.
func (s *FocusService) Remove(ctx context.Context, userID, entryID int64) error {
	deleted, err := s.focus.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return s.focus.Renumber(ctx, userID)
}

// Reorder applies the submitted order values. Entries not owned by the
// caller are skipped silently. Submitted orders are taken as-is: duplicates
// and gaps are allowed here; only Remove renumbers.
func (s *FocusService) Reorder(ctx context.Context, userID int64, orders []repo.FocusOrder) error {
	return s.focus.SetOrders(ctx, userID, orders)
}

// Available lists the user's tasks not currently in the focus set.
func (s *FocusService) Available(ctx context.Context, userID int64) ([]dom.Task, error) {
	return s.focus.AvailableTasks(ctx, userID)
}
