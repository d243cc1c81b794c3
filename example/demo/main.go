// Package main runs the example services end to end: the dispatch mode is
// selected from the environment, doubles live in a per-context store, and -
// in production mode - every call site resolves to its real implementation.
//
// Set FNMOCK_MODE=test to see configured doubles take over the call paths.
package main

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // database driver for the sqlx-backed example
	"github.com/rs/zerolog"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
	"github.com/jakob-rzeppa/fnmock/double/zerologadapter"
	"github.com/jakob-rzeppa/fnmock/example/appconfig"
	"github.com/jakob-rzeppa/fnmock/example/calc"
	"github.com/jakob-rzeppa/fnmock/example/reporting"
	"github.com/jakob-rzeppa/fnmock/example/userservice"
)

type demoConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN"`
	UserID      int    `env:"DEMO_USER_ID" envDefault:"42"`
}

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)

	cfg := demoConfig{}
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("parsing demo config failed")
	}

	mode, err := double.ModeFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("selecting dispatch mode failed")
	}

	logger.Info().Str("mode", mode.String()).Msg("dispatch mode selected")

	reg := registry.NewRegistry()
	store := reg.Context("demo")

	if mode == double.ModeTest {
		if err := configureDoubles(store, logger); err != nil {
			logger.Fatal().Err(err).Msg("configuring doubles failed")
		}
	}

	runCalc(logger, mode, store)
	runAppConfig(logger, mode, store)

	if cfg.PostgresDSN == "" {
		logger.Info().Msg("POSTGRES_DSN not set, skipping the database-backed examples")
		return
	}

	runUserService(logger, mode, store, cfg)
	runReporting(logger, mode, store, cfg)
}

func runCalc(logger zerolog.Logger, mode double.Mode, store *registry.Store) {
	calculator, err := calc.NewCalculator(mode, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("wiring the calculator failed")
	}

	logger.Info().Int("result", calculator.Calc(2)).Msg("calc example")
}

func runAppConfig(logger zerolog.Logger, mode double.Mode, store *registry.Store) {
	loader, err := appconfig.NewLoader(mode, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("wiring the config loader failed")
	}

	logger.Info().
		Str("config", loader.Config()).
		Int("port", loader.Port()).
		Msg("appconfig example")
}

func runUserService(logger zerolog.Logger, mode double.Mode, store *registry.Store, cfg demoConfig) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to postgres failed")
	}
	defer pool.Close()

	service, err := userservice.NewUserService(mode, store, pool)
	if err != nil {
		logger.Fatal().Err(err).Msg("wiring the user service failed")
	}

	name, err := service.FetchUserName(ctx, cfg.UserID)
	if err != nil {
		logger.Error().Err(err).Int("user_id", cfg.UserID).Msg("user lookup failed")
		return
	}

	logger.Info().Str("name", name).Msg("userservice example")
}

func runReporting(logger zerolog.Logger, mode double.Mode, store *registry.Store, cfg demoConfig) {
	db, err := sqlx.Connect("postgres", cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to postgres failed")
	}
	defer func() {
		_ = db.Close()
	}()

	reportStore, err := reporting.NewReportStore(mode, store, db)
	if err != nil {
		logger.Fatal().Err(err).Msg("wiring the report store failed")
	}

	totals, err := reportStore.DailyTotals(context.Background(), "2026-01-01")
	if err != nil {
		logger.Error().Err(err).Msg("daily totals query failed")
		return
	}

	logger.Info().Int("days", len(totals)).Msg("reporting example")
}

// configureDoubles substitutes the pure-function call paths so a test-mode
// run shows the doubles taking over, with their lifecycle logged.
func configureDoubles(store *registry.Store, logger zerolog.Logger) error {
	addTwoFake, err := registry.FakeFor[calc.AddTwoFunc](
		store,
		"calc.addTwo",
		double.WithLogger(zerologadapter.NewLogger(logger)),
	)
	if err != nil {
		return err
	}
	addTwoFake.Setup(func(int) int { return 8 })

	configStub, err := registry.StubFor[string](
		store,
		"appconfig.getConfig",
		double.WithLogger(zerologadapter.NewLogger(logger)),
	)
	if err != nil {
		return err
	}
	configStub.Setup("test_config")

	return nil
}
