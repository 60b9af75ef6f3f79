package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/battleship-hotseat/api"
	"github.com/saeidalz13/battleship-hotseat/db"
	"github.com/saeidalz13/battleship-hotseat/db/sqlc"
	"github.com/saeidalz13/battleship-hotseat/internal/config"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	// stdout belongs to the game; logs go to stderr
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Str("stage", cfg.Stage).
		Logger()

	opts := []api.Option{
		api.WithInput(os.Stdin),
		api.WithOutput(os.Stdout),
		api.WithLogger(log.Logger),
		api.WithExtraTurnOnHit(cfg.ExtraTurnOnHit),
	}
	if cfg.RandSeed != 0 {
		opts = append(opts, api.WithRandSeed(cfg.RandSeed))
	}

	if cfg.DatabaseUrl != "" {
		conn := db.MustConnectToDb(cfg.DatabaseUrl)
		defer conn.Close()

		dbManager := sqlc.NewDbManager(sqlc.New(conn), api.HostIpNet())
		opts = append(opts, api.WithAnalytics(dbManager.Analytics))
		log.Info().Msg("match analytics enabled")
	}

	rp, err := api.NewRequestProcessor(mb.NewBattleshipGameManager(), opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create request processor")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rp.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game loop stopped")
	}
	log.Info().Msg("bye")
}
