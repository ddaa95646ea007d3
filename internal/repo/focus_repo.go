package repo

import (
	"context"

	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FocusOrder names a new sort order for one focus entry (reorder payload).
type FocusOrder struct {
	EntryID int64
	Order   int
}

// FocusRepo persists the ordered focus set. At most one entry per
// (user, task); the unique index rejects duplicates with ErrConstraint.
type FocusRepo interface {
	// Add appends the task at (max order)+1, or 1 for an empty set.
	Add(ctx context.Context, userID, taskID int64) (dom.FocusEntry, error)
	GetByID(ctx context.Context, userID, id int64) (dom.FocusEntry, error)
	// List returns the set ordered by sort order, joined with tasks.
	List(ctx context.Context, userID int64) ([]dom.FocusEntryWithTask, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
	DeleteAll(ctx context.Context, userID int64) (int64, error)
	// Renumber rewrites sort orders to dense 1..N preserving relative order.
	Renumber(ctx context.Context, userID int64) error
	// SetOrders applies the given orders; entries not owned by userID are
	// skipped. No contiguity or uniqueness check is performed.
	SetOrders(ctx context.Context, userID int64, orders []FocusOrder) error
	// AvailableTasks returns the user's tasks not currently in the set.
	AvailableTasks(ctx context.Context, userID int64) ([]dom.Task, error)
	DeleteByTask(ctx context.Context, userID, taskID int64) (int64, error)
	DeleteOrphans(ctx context.Context, userID int64) (int64, error)
}

type PGFocusRepo struct {
	db *pgxpool.Pool
}

func NewPGFocusRepo(db *pgxpool.Pool) *PGFocusRepo {
	return &PGFocusRepo{db: db}
}

const focusColumns = `id, user_id, task_id, sort_order, added_at`

func scanFocus(row interface{ Scan(...any) error }) (dom.FocusEntry, error) {
	var e dom.FocusEntry
	err := row.Scan(&e.ID, &e.UserID, &e.TaskID, &e.SortOrder, &e.AddedAt)
	return e, err
}

func (r *PGFocusRepo) Add(ctx context.Context, userID, taskID int64) (dom.FocusEntry, error) {
	// MAX+1 in the same statement; the unique index on (user_id, task_id)
	// still guards against concurrent duplicates.
	query := `
		INSERT INTO focus_entries (user_id, task_id, sort_order)
		VALUES ($1, $2, COALESCE((SELECT MAX(sort_order) FROM focus_entries WHERE user_id = $1), 0) + 1)
		RETURNING ` + focusColumns
	e, err := scanFocus(r.db.QueryRow(ctx, query, userID, taskID))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.FocusEntry{}, ErrConstraint
		}
		return dom.FocusEntry{}, err
	}
	return e, nil
}

func (r *PGFocusRepo) GetByID(ctx context.Context, userID, id int64) (dom.FocusEntry, error) {
	query := `SELECT ` + focusColumns + ` FROM focus_entries WHERE user_id = $1 AND id = $2`
	return scanFocus(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGFocusRepo) List(ctx context.Context, userID int64) ([]dom.FocusEntryWithTask, error) {
	query := `
		SELECT f.id, f.user_id, f.task_id, f.sort_order, f.added_at,
		       t.id, t.user_id, t.title, t.description, t.priority, t.completed, t.created_at, t.updated_at
		FROM focus_entries f
		JOIN tasks t ON t.id = f.task_id AND t.user_id = f.user_id
		WHERE f.user_id = $1
		ORDER BY f.sort_order ASC, f.added_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.FocusEntryWithTask
	for rows.Next() {
		var fw dom.FocusEntryWithTask
		if err := rows.Scan(
			&fw.ID, &fw.UserID, &fw.TaskID, &fw.SortOrder, &fw.AddedAt,
			&fw.Task.ID, &fw.Task.UserID, &fw.Task.Title, &fw.Task.Description,
			&fw.Task.Priority, &fw.Task.Completed, &fw.Task.CreatedAt, &fw.Task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, fw)
	}
	return list, rows.Err()
}

func (r *PGFocusRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM focus_entries WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGFocusRepo) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM focus_entries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGFocusRepo) Renumber(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		WITH ranked AS (
			SELECT id, ROW_NUMBER() OVER (ORDER BY sort_order ASC, added_at ASC) AS rn
			FROM focus_entries WHERE user_id = $1
		)
		UPDATE focus_entries f SET sort_order = ranked.rn
		FROM ranked WHERE f.id = ranked.id`,
		userID)
	return err
}

func (r *PGFocusRepo) SetOrders(ctx context.Context, userID int64, orders []FocusOrder) error {
	for _, o := range orders {
		// Ownership filter makes foreign entry IDs a no-op, not an error.
		if _, err := r.db.Exec(ctx,
			`UPDATE focus_entries SET sort_order = $3 WHERE user_id = $1 AND id = $2`,
			userID, o.EntryID, o.Order); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGFocusRepo) AvailableTasks(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM focus_entries f WHERE f.user_id = tasks.user_id AND f.task_id = tasks.id)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGFocusRepo) DeleteByTask(ctx context.Context, userID, taskID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM focus_entries WHERE user_id = $1 AND task_id = $2`, userID, taskID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGFocusRepo) DeleteOrphans(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM focus_entries f
		WHERE f.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM tasks t WHERE t.id = f.task_id AND t.user_id = f.user_id)`,
		userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
