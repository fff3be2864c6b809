package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/tilegrid/internal/config"
)

func main() {
	// A .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env")
	}

	flags := pflag.NewFlagSet("gridinspect", pflag.ExitOnError)
	opts := registerFlags(flags)
	_ = flags.Parse(os.Args[1:])

	// Initialize configuration
	if err := config.Init(opts.configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(opts.env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	if err := config.BindFlags(flags); err != nil {
		log.Fatal().Err(err).Msg("Invalid flag value")
	}

	cfg := config.Get()
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	log.Debug().
		Str("config_file", config.ConfigFilePath()).
		Str("overlay_file", config.OverlayFilePath()).
		Bool("diagonal", cfg.Grid.AllowDiagonal).
		Bool("no_corner_cutting", cfg.Grid.NoCornerCutting).
		Msg("Starting grid inspection")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	if err := inspect(ctx, os.Stdout, opts, cfg); err != nil {
		log.Fatal().Err(err).Msg("Inspection failed")
	}

	if !opts.watch {
		return
	}

	config.WatchConfig(func(e fsnotify.Event, err error) {
		if err != nil {
			log.Error().Err(err).Str("file", e.Name).Msg("Config reload rejected")
			return
		}
		mu.Lock()
		defer mu.Unlock()

		cfg := config.Get()
		setupLogging(cfg.Logging.Level, cfg.Logging.Format)
		log.Info().Str("file", e.Name).Msg("Config changed, re-inspecting")
		if err := inspect(ctx, os.Stdout, opts, cfg); err != nil {
			log.Error().Err(err).Msg("Inspection failed")
		}
	})
	log.Info().Str("config_file", config.ConfigFilePath()).Msg("Watching config for changes")

	<-ctx.Done()
	log.Info().Msg("Stopped watching")
}
