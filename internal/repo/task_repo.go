package repo

import (
	"context"

	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. All reads and writes are scoped to a
// single user; a query for another user's row behaves as if it doesn't exist.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, user_id, title, description, priority, completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, priority)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.Priority))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 AND id = $2`
	return scanTask(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
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

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $3, description = $4, priority = $5, completed = $6, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, userID, id,
		patch.Title, patch.Description, patch.Priority, patch.Completed))
}

// Delete hard-deletes the task row. Associated completion and focus rows are
// removed separately by the caller (no FK cascade, see migrations).
func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
