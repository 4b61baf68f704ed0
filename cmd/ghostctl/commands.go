package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"ghost_protocol/internal/config"
	"ghost_protocol/internal/detector"
	"ghost_protocol/internal/proof"
	subsRepository "ghost_protocol/internal/repository/subscription/postgres"
	"ghost_protocol/internal/usecase"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ghostctl",
		Short:         "Operational tooling for the ghost protocol store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newStatsCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := migrate.New(src, databaseURL())
			if err != nil {
				return fmt.Errorf("init migrate: %w", err)
			}
			defer func() { _, _ = m.Close() }()

			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migrate up: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "source", "file://migrations", "migration source URL")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty store with the simulated detection set",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, pool, err := subscriptionUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := uc.EnsureSeeded(cmd.Context()); err != nil {
				return err
			}
			status, err := uc.DBStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate spend counters as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, pool, err := subscriptionUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			stats, err := uc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}
}

func subscriptionUseCase(ctx context.Context) (*usecase.Subscription, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("connect storage: %w", err)
	}
	sr := subsRepository.NewSubRepository(pool)
	return usecase.NewSubscription(sr, detector.NewSimulated(), proof.NewSimulated()), pool, nil
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	pg := config.LoadConfig().Pg
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		pg.User, pg.Password, pg.Host, pg.Port, pg.Db)
}
