package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage          = "STAGE"
	EnvLogLevel       = "LOG_LEVEL"
	EnvDatabaseUrl    = "DATABASE_URL"
	EnvExtraTurnOnHit = "EXTRA_TURN_ON_HIT"
	EnvRandSeed       = "RAND_SEED"
)

type Config struct {
	Stage          string
	LogLevel       zerolog.Level
	DatabaseUrl    string
	ExtraTurnOnHit bool

	// Zero means seed from the clock.
	RandSeed uint64
}

// Load reads the configuration from the environment. Outside of prod
// the variables in envFile are loaded first; a missing file is fine.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:          os.Getenv(EnvStage),
		LogLevel:       zerolog.InfoLevel,
		DatabaseUrl:    os.Getenv(EnvDatabaseUrl),
		ExtraTurnOnHit: true,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	if levelEnv := os.Getenv(EnvLogLevel); levelEnv != "" {
		level, err := zerolog.ParseLevel(levelEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if extraTurnEnv := os.Getenv(EnvExtraTurnOnHit); extraTurnEnv != "" {
		extraTurn, err := strconv.ParseBool(extraTurnEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvExtraTurnOnHit, err)
		}
		cfg.ExtraTurnOnHit = extraTurn
	}

	if seedEnv := os.Getenv(EnvRandSeed); seedEnv != "" {
		seed, err := strconv.ParseUint(seedEnv, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvRandSeed, err)
		}
		cfg.RandSeed = seed
	}

	return cfg, nil
}
