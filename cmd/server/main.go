package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"ghost_protocol/internal/config"
	"ghost_protocol/internal/detector"
	httpGateway "ghost_protocol/internal/gateways/http"
	"ghost_protocol/internal/proof"
	keyRepository "ghost_protocol/internal/repository/apikey/postgres"
	subsRepository "ghost_protocol/internal/repository/subscription/postgres"
	"ghost_protocol/internal/secrets"
	usecaseInternal "ghost_protocol/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	pgCfg := cfg.Pg
	log := setupLogger(cfg.Env)

	log.Info("starting ghost protocol", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	databaseUrl := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		pgCfg.User,
		pgCfg.Password,
		pgCfg.Host,
		pgCfg.Port,
		pgCfg.Db)

	pool, err := pgxpool.New(ctx, databaseUrl)
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Debug("init database")

	cipher, err := secrets.NewCipher(cfg.Vault.Key)
	if err != nil {
		log.Error("failed to init vault cipher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sr := subsRepository.NewSubRepository(pool)
	kr := keyRepository.NewKeyRepository(pool)

	subUC := usecaseInternal.NewSubscription(sr, detector.NewSimulated(), proof.NewSimulated())

	// First-run seeding; a populated store makes this a no-op.
	if err := subUC.EnsureSeeded(ctx); err != nil {
		log.Error("failed to seed subscriptions", slog.String("error", err.Error()))
		os.Exit(1)
	}

	useCases := httpGateway.UseCases{
		Sub:  subUC,
		Keys: usecaseInternal.NewApiKeys(kr, cipher),
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	if err := server.Run(ctx); err != nil {
		log.Error(err.Error())
		return
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
