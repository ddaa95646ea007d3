package repo

import (
	"context"
	"time"

	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompletionRepo persists per-task-per-day completion records. Day values are
// passed as YYYY-MM-DD keys (reference timezone) and stored as SQL dates, so
// comparisons never touch timestamps.
type CompletionRepo interface {
	// Create inserts the record; ErrConstraint if one already exists for the
	// same (user, task, day).
	Create(ctx context.Context, userID, taskID int64, day string, completedAt time.Time) (dom.DailyCompletion, error)
	// DeleteByTaskDay removes the record for (user, task, day); reports
	// whether a row existed.
	DeleteByTaskDay(ctx context.Context, userID, taskID int64, day string) (bool, error)
	GetByTaskDay(ctx context.Context, userID, taskID int64, day string) (dom.DailyCompletion, error)
	// ListDay returns the day's completions joined with their tasks.
	ListDay(ctx context.Context, userID int64, day string) ([]dom.CompletionWithTask, error)
	// ListRange returns completions with startDay <= day <= endDay.
	ListRange(ctx context.Context, userID int64, startDay, endDay string) ([]dom.DailyCompletion, error)
	// DeleteByTask removes all of one task's records (cascade on task delete).
	DeleteByTask(ctx context.Context, userID, taskID int64) (int64, error)
	// DeleteOrphans prunes records whose task no longer exists.
	DeleteOrphans(ctx context.Context, userID int64) (int64, error)
}

type PGCompletionRepo struct {
	db *pgxpool.Pool
}

func NewPGCompletionRepo(db *pgxpool.Pool) *PGCompletionRepo {
	return &PGCompletionRepo{db: db}
}

const completionColumns = `id, user_id, task_id, day, completed, completed_at`

func scanCompletion(row interface{ Scan(...any) error }) (dom.DailyCompletion, error) {
	var c dom.DailyCompletion
	err := row.Scan(&c.ID, &c.UserID, &c.TaskID, &c.Day, &c.Completed, &c.CompletedAt)
	return c, err
}

func (r *PGCompletionRepo) Create(ctx context.Context, userID, taskID int64, day string, completedAt time.Time) (dom.DailyCompletion, error) {
	query := `
		INSERT INTO daily_completions (user_id, task_id, day, completed, completed_at)
		VALUES ($1, $2, $3::date, TRUE, $4)
		RETURNING ` + completionColumns
	c, err := scanCompletion(r.db.QueryRow(ctx, query, userID, taskID, day, completedAt))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.DailyCompletion{}, ErrConstraint
		}
		return dom.DailyCompletion{}, err
	}
	return c, nil
}

func (r *PGCompletionRepo) DeleteByTaskDay(ctx context.Context, userID, taskID int64, day string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM daily_completions WHERE user_id = $1 AND task_id = $2 AND day = $3::date`,
		userID, taskID, day)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGCompletionRepo) GetByTaskDay(ctx context.Context, userID, taskID int64, day string) (dom.DailyCompletion, error) {
	query := `SELECT ` + completionColumns + `
		FROM daily_completions WHERE user_id = $1 AND task_id = $2 AND day = $3::date`
	return scanCompletion(r.db.QueryRow(ctx, query, userID, taskID, day))
}

func (r *PGCompletionRepo) ListDay(ctx context.Context, userID int64, day string) ([]dom.CompletionWithTask, error) {
	query := `
		SELECT c.id, c.user_id, c.task_id, c.day, c.completed, c.completed_at,
		       t.id, t.user_id, t.title, t.description, t.priority, t.completed, t.created_at, t.updated_at
		FROM daily_completions c
		JOIN tasks t ON t.id = c.task_id AND t.user_id = c.user_id
		WHERE c.user_id = $1 AND c.day = $2::date
		ORDER BY c.completed_at DESC`
	rows, err := r.db.Query(ctx, query, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.CompletionWithTask
	for rows.Next() {
		var cw dom.CompletionWithTask
		if err := rows.Scan(
			&cw.ID, &cw.UserID, &cw.TaskID, &cw.Day, &cw.Completed, &cw.CompletedAt,
			&cw.Task.ID, &cw.Task.UserID, &cw.Task.Title, &cw.Task.Description,
			&cw.Task.Priority, &cw.Task.Completed, &cw.Task.CreatedAt, &cw.Task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, cw)
	}
	return list, rows.Err()
}

func (r *PGCompletionRepo) ListRange(ctx context.Context, userID int64, startDay, endDay string) ([]dom.DailyCompletion, error) {
	query := `SELECT ` + completionColumns + `
		FROM daily_completions
		WHERE user_id = $1 AND day BETWEEN $2::date AND $3::date
		ORDER BY day ASC`
	rows, err := r.db.Query(ctx, query, userID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.DailyCompletion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCompletionRepo) DeleteByTask(ctx context.Context, userID, taskID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM daily_completions WHERE user_id = $1 AND task_id = $2`, userID, taskID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGCompletionRepo) DeleteOrphans(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM daily_completions c
		WHERE c.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM tasks t WHERE t.id = c.task_id AND t.user_id = c.user_id)`,
		userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
