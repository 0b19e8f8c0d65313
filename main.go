package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/financa-pro/backend/internal/config"
	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/router"
	"github.com/financa-pro/backend/internal/storage"
	"github.com/financa-pro/backend/internal/store"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()

	persister, err := newPersister(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := store.New(persister)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(cfg, v1.New(s, cfg.NotifyNumbers))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func newPersister(cfg *config.Config) (store.Persister, error) {
	switch cfg.Backend {
	case "file":
		log.Info().Str("path", cfg.SnapshotFile).Msg("using file snapshot storage")
		return storage.NewFile(cfg.SnapshotFile)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLiteDBPath), os.ModePerm); err != nil {
			return nil, err
		}

		log.Info().Str("path", cfg.SQLiteDBPath).Msg("using sqlite snapshot storage")
		return storage.NewSQLite(cfg.SQLiteDBPath)
	}
}
