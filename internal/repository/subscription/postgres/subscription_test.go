package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"ghost_protocol/internal/entity"
	"ghost_protocol/internal/usecase"
)

var pgContainer *postgres.PostgresContainer

func cleanup() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	c, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ghost_db"),
		postgres.WithUsername("ghost_user"),
		postgres.WithPassword("ghost_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run container: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	pgContainer = c

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "conn string: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	migDir, err := filepath.Abs("../../../../migrations")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrations path: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	if err := runMigrations(connStr, "file://"+migDir); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func runMigrations(connStr, srcURL string) error {
	m, err := migrate.New(srcURL, connStr)
	if err != nil {
		return err
	}
	defer func(m *migrate.Migrate) {
		_, _ = m.Close()
	}(m)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func freshRepo(t *testing.T) (*SubRepository, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE TABLE subscriptions RESTART IDENTITY`)
	require.NoError(t, err)
	return NewSubRepository(pool), pool
}

func seedThree(t *testing.T, r *SubRepository) []*entity.Subscription {
	t.Helper()
	subs := []*entity.Subscription{
		{Name: "Netflix Premium", AmountCents: 2299, Frequency: "monthly", Merchant: "Netflix Inc.", Status: entity.StatusActive},
		{Name: "Spotify Family", AmountCents: 1699, Frequency: "monthly", Merchant: "Spotify AB", Status: entity.StatusActive},
		{Name: "Gym Membership", AmountCents: 4999, Frequency: "monthly", Merchant: "Planet Fitness", Status: entity.StatusActive},
	}
	require.NoError(t, r.InsertSubs(context.Background(), subs))
	return subs
}

func TestSubRepository_InsertSubs(t *testing.T) {
	ctx := context.Background()
	r, pool := freshRepo(t)

	subs := seedThree(t, r)

	for i, sub := range subs {
		assert.Equal(t, int64(i+1), sub.ID, "ids assigned in insertion order")
	}

	var count int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&count))
	assert.Equal(t, int64(3), count)
}

func TestSubRepository_CountSubs(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)

	count, err := r.CountSubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedThree(t, r)

	count, err = r.CountSubs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSubRepository_GetSubByID(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)
	subs := seedThree(t, r)

	t.Run("ok", func(t *testing.T) {
		got, err := r.GetSubByID(ctx, subs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Netflix Premium", got.Name)
		assert.Equal(t, int64(2299), got.AmountCents)
		assert.Equal(t, entity.StatusActive, got.Status)
		assert.Nil(t, got.CancelledAt)
		assert.Nil(t, got.CancelTx)
	})

	t.Run("err, not found", func(t *testing.T) {
		_, err := r.GetSubByID(ctx, 999)
		assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)
	})
}

func TestSubRepository_MarkCancelled(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)
	subs := seedThree(t, r)

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	txRef := "abc123"

	t.Run("ok, timestamp and tx recorded", func(t *testing.T) {
		require.NoError(t, r.MarkCancelled(ctx, subs[0].ID, at, &txRef))

		got, err := r.GetSubByID(ctx, subs[0].ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, got.Status)
		require.NotNil(t, got.CancelledAt)
		assert.True(t, got.CancelledAt.Equal(at))
		require.NotNil(t, got.CancelTx)
		assert.Equal(t, txRef, *got.CancelTx)
	})

	t.Run("ok, repeat update overwrites", func(t *testing.T) {
		later := at.Add(time.Hour)
		require.NoError(t, r.MarkCancelled(ctx, subs[0].ID, later, nil))

		got, err := r.GetSubByID(ctx, subs[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got.CancelledAt)
		assert.True(t, got.CancelledAt.Equal(later))
		assert.Nil(t, got.CancelTx)
	})

	t.Run("err, not found", func(t *testing.T) {
		err := r.MarkCancelled(ctx, 999, at, nil)
		assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)
	})
}

func TestSubRepository_ListSubs(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)
	subs := seedThree(t, r)

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.MarkCancelled(ctx, subs[1].ID, at, nil))

	t.Run("all returns every row in id order", func(t *testing.T) {
		got, err := r.ListSubs(ctx, usecase.FilterAll)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, subs[0].ID, got[0].ID)
		assert.Equal(t, subs[2].ID, got[2].ID)
	})

	t.Run("active excludes the cancelled row", func(t *testing.T) {
		got, err := r.ListSubs(ctx, usecase.FilterActive)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, sub := range got {
			assert.Equal(t, entity.StatusActive, sub.Status)
		}
	})
}

func TestSubRepository_ListCancelledSubs(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)
	subs := seedThree(t, r)

	earlier := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(2 * time.Hour)
	require.NoError(t, r.MarkCancelled(ctx, subs[0].ID, earlier, nil))
	require.NoError(t, r.MarkCancelled(ctx, subs[2].ID, later, nil))

	got, err := r.ListCancelledSubs(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, subs[2].ID, got[0].ID, "newest cancellation first")
	assert.Equal(t, subs[0].ID, got[1].ID)
}

func TestSubRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	r, _ := freshRepo(t)
	subs := seedThree(t, r)

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	txRef := "abc123"
	require.NoError(t, r.MarkCancelled(ctx, subs[1].ID, at, &txRef))

	t.Run("count by status", func(t *testing.T) {
		active, err := r.CountByStatus(ctx, entity.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, int64(2), active)

		cancelled, err := r.CountByStatus(ctx, entity.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, int64(1), cancelled)
	})

	t.Run("sum by status", func(t *testing.T) {
		active, err := r.SumAmountByStatus(ctx, entity.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, int64(2299+4999), active)

		cancelled, err := r.SumAmountByStatus(ctx, entity.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, int64(1699), cancelled)
	})

	t.Run("sum all", func(t *testing.T) {
		total, err := r.SumAmountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2299+1699+4999), total)
	})

	t.Run("count with cancel tx", func(t *testing.T) {
		proofs, err := r.CountWithCancelTx(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), proofs)
	})

	t.Run("empty store sums to zero", func(t *testing.T) {
		r2, _ := freshRepo(t)
		total, err := r2.SumAmountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}
