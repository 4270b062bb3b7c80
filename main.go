package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
	"github.com/iburimskiy/galaxy-visualization/internal/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = zenity.Error(err.Error(), zenity.Title("Galaxy"))
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		watch      = flag.Bool("watch", false, "reload parameters when the config file changes")
		sound      = flag.Bool("sound", false, "play a chime after each regeneration")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides the config file)")
	)
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
	}
	settings.Watch = settings.Watch || *watch
	settings.Sound = settings.Sound || *sound

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))
	slog.SetDefault(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates chan galaxy.Parameters
	if settings.Watch {
		if *configPath == "" {
			return errors.New("-watch needs -config")
		}
		updates = make(chan galaxy.Parameters, 1)
		go func() {
			err := config.Watch(ctx, *configPath, log, func(s config.Settings) {
				// Keep only the newest set if the game has not caught up.
				select {
				case <-updates:
				default:
				}
				updates <- s.Params
			})
			if err != nil {
				log.Error("config watcher stopped", "err", err)
			}
		}()
	}

	var chime *audio.Chime
	if settings.Sound {
		chime, err = audio.NewChime()
		if err != nil {
			log.Warn("sound disabled", "err", err)
		}
	}

	g, err := game.New(game.Options{
		Params:  settings.Params,
		Logger:  log,
		Chime:   chime,
		Updates: updates,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting", "count", settings.Params.Count, "watch", settings.Watch, "sound", chime != nil)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
