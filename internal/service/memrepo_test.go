package service

// In-memory repo implementations for service tests. They enforce the same
// invariants as the Postgres repos: pgx.ErrNoRows for missing rows,
// repo.ErrConstraint for uniqueness breaches, joins dropping orphans.

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"

	"github.com/jackc/pgx/v5"
)

type memStore struct {
	mu          sync.Mutex
	nextID      int64
	tasks       map[int64]dom.Task
	completions map[int64]dom.DailyCompletion
	focus       map[int64]dom.FocusEntry
}

func newMemStore() *memStore {
	return &memStore{
		tasks:       make(map[int64]dom.Task),
		completions: make(map[int64]dom.DailyCompletion),
		focus:       make(map[int64]dom.FocusEntry),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memTaskRepo struct{ s *memStore }
type memCompletionRepo struct{ s *memStore }
type memFocusRepo struct{ s *memStore }

func newMemRepos() (*memStore, *memTaskRepo, *memCompletionRepo, *memFocusRepo) {
	s := newMemStore()
	return s, &memTaskRepo{s}, &memCompletionRepo{s}, &memFocusRepo{s}
}

func (r *memTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.id()
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	r.s.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, userID, id int64) (dom.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTaskRepo) List(_ context.Context, userID int64) ([]dom.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.Task
	for _, t := range r.s.tasks {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memTaskRepo) Update(_ context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Title = patch.Title
	t.Description = patch.Description
	t.Priority = patch.Priority
	t.Completed = patch.Completed
	t.UpdatedAt = time.Now()
	r.s.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) Delete(_ context.Context, userID, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(r.s.tasks, id)
	return true, nil
}

func (r *memCompletionRepo) Create(_ context.Context, userID, taskID int64, day string, completedAt time.Time) (dom.DailyCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.completions {
		if c.UserID == userID && c.TaskID == taskID && c.DayKey() == day {
			return dom.DailyCompletion{}, repo.ErrConstraint
		}
	}
	d, err := clock.ParseDayKey(day)
	if err != nil {
		return dom.DailyCompletion{}, err
	}
	c := dom.DailyCompletion{
		ID:          r.s.id(),
		UserID:      userID,
		TaskID:      taskID,
		Day:         d,
		Completed:   true,
		CompletedAt: completedAt,
	}
	r.s.completions[c.ID] = c
	return c, nil
}

func (r *memCompletionRepo) DeleteByTaskDay(_ context.Context, userID, taskID int64, day string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.completions {
		if c.UserID == userID && c.TaskID == taskID && c.DayKey() == day {
			delete(r.s.completions, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *memCompletionRepo) GetByTaskDay(_ context.Context, userID, taskID int64, day string) (dom.DailyCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.completions {
		if c.UserID == userID && c.TaskID == taskID && c.DayKey() == day {
			return c, nil
		}
	}
	return dom.DailyCompletion{}, pgx.ErrNoRows
}

func (r *memCompletionRepo) ListDay(_ context.Context, userID int64, day string) ([]dom.CompletionWithTask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.CompletionWithTask
	for _, c := range r.s.completions {
		if c.UserID != userID || c.DayKey() != day {
			continue
		}
		t, ok := r.s.tasks[c.TaskID]
		if !ok || t.UserID != userID {
			continue
		}
		list = append(list, dom.CompletionWithTask{DailyCompletion: c, Task: t})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CompletedAt.After(list[j].CompletedAt) })
	return list, nil
}

func (r *memCompletionRepo) ListRange(_ context.Context, userID int64, startDay, endDay string) ([]dom.DailyCompletion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.DailyCompletion
	for _, c := range r.s.completions {
		key := c.DayKey()
		if c.UserID == userID && key >= startDay && key <= endDay {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DayKey() < list[j].DayKey() })
	return list, nil
}

func (r *memCompletionRepo) DeleteByTask(_ context.Context, userID, taskID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.completions {
		if c.UserID == userID && c.TaskID == taskID {
			delete(r.s.completions, id)
			n++
		}
	}
	return n, nil
}

func (r *memCompletionRepo) DeleteOrphans(_ context.Context, userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.completions {
		if c.UserID != userID {
			continue
		}
		if t, ok := r.s.tasks[c.TaskID]; !ok || t.UserID != userID {
			delete(r.s.completions, id)
			n++
		}
	}
	return n, nil
}

func (r *memFocusRepo) Add(_ context.Context, userID, taskID int64) (dom.FocusEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maxOrder := 0
	for _, e := range r.s.focus {
		if e.UserID != userID {
			continue
		}
		if e.TaskID == taskID {
			return dom.FocusEntry{}, repo.ErrConstraint
		}
		if e.SortOrder > maxOrder {
			maxOrder = e.SortOrder
		}
	}
	e := dom.FocusEntry{
		ID:        r.s.id(),
		UserID:    userID,
		TaskID:    taskID,
		SortOrder: maxOrder + 1,
		AddedAt:   time.Now(),
	}
	r.s.focus[e.ID] = e
	return e, nil
}

func (r *memFocusRepo) GetByID(_ context.Context, userID, id int64) (dom.FocusEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.focus[id]
	if !ok || e.UserID != userID {
		return dom.FocusEntry{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r *memFocusRepo) List(_ context.Context, userID int64) ([]dom.FocusEntryWithTask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.FocusEntryWithTask
	for _, e := range r.s.focus {
		if e.UserID != userID {
			continue
		}
		t, ok := r.s.tasks[e.TaskID]
		if !ok || t.UserID != userID {
			continue
		}
		list = append(list, dom.FocusEntryWithTask{FocusEntry: e, Task: t})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].AddedAt.Before(list[j].AddedAt)
	})
	return list, nil
}

func (r *memFocusRepo) Delete(_ context.Context, userID, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.focus[id]
	if !ok || e.UserID != userID {
		return false, nil
	}
	delete(r.s.focus, id)
	return true, nil
}

func (r *memFocusRepo) DeleteAll(_ context.Context, userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.focus {
		if e.UserID == userID {
			delete(r.s.focus, id)
			n++
		}
	}
	return n, nil
}

func (r *memFocusRepo) Renumber(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var entries []dom.FocusEntry
	for _, e := range r.s.focus {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SortOrder != entries[j].SortOrder {
			return entries[i].SortOrder < entries[j].SortOrder
		}
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})
	for i, e := range entries {
		e.SortOrder = i + 1
		r.s.focus[e.ID] = e
	}
	return nil
}

func (r *memFocusRepo) SetOrders(_ context.Context, userID int64, orders []repo.FocusOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range orders {
		e, ok := r.s.focus[o.EntryID]
		if !ok || e.UserID != userID {
			continue
		}
		e.SortOrder = o.Order
		r.s.focus[e.ID] = e
	}
	return nil
}

func (r *memFocusRepo) AvailableTasks(_ context.Context, userID int64) ([]dom.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inFocus := make(map[int64]bool)
	for _, e := range r.s.focus {
		if e.UserID == userID {
			inFocus[e.TaskID] = true
		}
	}
	var list []dom.Task
	for _, t := range r.s.tasks {
		if t.UserID == userID && !inFocus[t.ID] {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memFocusRepo) DeleteByTask(_ context.Context, userID, taskID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.focus {
		if e.UserID == userID && e.TaskID == taskID {
			delete(r.s.focus, id)
			n++
		}
	}
	return n, nil
}

func (r *memFocusRepo) DeleteOrphans(_ context.Context, userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.focus {
		if e.UserID != userID {
			continue
		}
		if t, ok := r.s.tasks[e.TaskID]; !ok || t.UserID != userID {
			delete(r.s.focus, id)
			n++
		}
	}
	return n, nil
}

var (
	_ repo.TaskRepo       = (*memTaskRepo)(nil)
	_ repo.CompletionRepo = (*memCompletionRepo)(nil)
	_ repo.FocusRepo      = (*memFocusRepo)(nil)
)
