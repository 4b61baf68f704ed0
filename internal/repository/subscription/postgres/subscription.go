package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ghost_protocol/internal/entity"
	"ghost_protocol/internal/usecase"
)

// SubRepository persists subscriptions in PostgreSQL. Every method is a
// single statement or one short transaction; store errors propagate to the
// caller untouched.
type SubRepository struct {
	pool *pgxpool.Pool
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{pool: pool}
}

const subColumns = `id, name, amount_cents, frequency, merchant, status, cancelled_at, cancel_tx`

func (r *SubRepository) CountSubs(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subs: %w", err)
	}
	return count, nil
}

func (r *SubRepository) InsertSubs(ctx context.Context, subs []*entity.Subscription) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("insert subs: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, sub := range subs {
		err := tx.QueryRow(ctx, `
			INSERT INTO subscriptions (name, amount_cents, frequency, merchant, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			sub.Name, sub.AmountCents, sub.Frequency, sub.Merchant, sub.Status,
		).Scan(&sub.ID)
		if err != nil {
			return fmt.Errorf("insert sub %q: %w", sub.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("insert subs: commit: %w", err)
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+subColumns+`
		FROM subscriptions
		WHERE id = $1`, id)

	sub, err := scanSub(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%d: %w", id, err)
	}
	return sub, nil
}

func (r *SubRepository) ListSubs(ctx context.Context, f usecase.ListFilter) ([]*entity.Subscription, error) {
	query := `SELECT ` + subColumns + ` FROM subscriptions ORDER BY id`
	if f == usecase.FilterActive {
		query = `SELECT ` + subColumns + ` FROM subscriptions WHERE status = 'active' ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subs: %w", err)
	}
	defer rows.Close()

	return collectSubs(rows)
}

func (r *SubRepository) ListCancelledSubs(ctx context.Context) ([]*entity.Subscription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+subColumns+`
		FROM subscriptions
		WHERE status = 'cancelled'
		ORDER BY cancelled_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cancelled subs: %w", err)
	}
	defer rows.Close()

	return collectSubs(rows)
}

func (r *SubRepository) MarkCancelled(ctx context.Context, id int64, at time.Time, txRef *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions
		SET status = 'cancelled', cancelled_at = $2, cancel_tx = $3
		WHERE id = $1`,
		id, at, txRef)
	if err != nil {
		return fmt.Errorf("mark cancelled id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by status %s: %w", status, err)
	}
	return count, nil
}

func (r *SubRepository) SumAmountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM subscriptions WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum amount by status %s: %w", status, err)
	}
	return total, nil
}

func (r *SubRepository) SumAmountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM subscriptions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum amount all: %w", err)
	}
	return total, nil
}

func (r *SubRepository) CountWithCancelTx(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE cancel_tx IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count with cancel tx: %w", err)
	}
	return count, nil
}

func scanSub(row pgx.Row) (*entity.Subscription, error) {
	var sub entity.Subscription
	err := row.Scan(
		&sub.ID, &sub.Name, &sub.AmountCents, &sub.Frequency,
		&sub.Merchant, &sub.Status, &sub.CancelledAt, &sub.CancelTx,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func collectSubs(rows pgx.Rows) ([]*entity.Subscription, error) {
	out := make([]*entity.Subscription, 0)
	for rows.Next() {
		sub, err := scanSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subs: %w", err)
	}
	return out, nil
}
