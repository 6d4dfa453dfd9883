package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
	"github.com/oksasatya/peopledesk/internal/domain/repository"
)

type LeaveRepository struct {
	pool *pgxpool.Pool
}

func NewLeaveRepository(pool *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{pool: pool}
}

func (r *LeaveRepository) Create(l *entity.Leave) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leaves (user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, l.UserID, l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.Status)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LeaveRepository) GetByID(id, userID string) (*entity.Leave, error) {
	ctx := context.Background()
	l := &entity.Leave{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, leave_type, start_date, end_date, reason, status,
		       COALESCE(approved_by::text, ''), COALESCE(rejection_reason, ''),
		       created_at, updated_at
		FROM leaves
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := scanLeave(row, l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *LeaveRepository) ListByUser(userID string, f repository.LeaveFilter) ([]*entity.Leave, int, error) {
	ctx := context.Background()

	where := `WHERE user_id = $1`
	args := []any{userID}
	if f.LeaveType != "" {
		where += ` AND leave_type = $2`
		args = append(args, f.LeaveType)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM leaves `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	args = append(args, f.Limit, offset)
	n := len(args)
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, leave_type, start_date, end_date, reason, status,
		       COALESCE(approved_by::text, ''), COALESCE(rejection_reason, ''),
		       created_at, updated_at
		FROM leaves
	`+where+` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leaves := make([]*entity.Leave, 0, f.Limit)
	for rows.Next() {
		l := &entity.Leave{}
		if err := scanLeave(rows, l); err != nil {
			return nil, 0, err
		}
		leaves = append(leaves, l)
	}
	return leaves, total, rows.Err()
}

func (r *LeaveRepository) HasOverlap(userID string, start, end time.Time) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leaves
			WHERE user_id = $1
			  AND start_date <= $3
			  AND end_date >= $2
			  AND status <> $4
		)
	`, userID, start, end, entity.LeaveRejected).Scan(&exists)
	return exists, err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanLeave(row scannable, l *entity.Leave) error {
	return row.Scan(&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt)
}

var _ repository.LeaveRepository = (*LeaveRepository)(nil)
