package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"Sketchpad/internal/config"
	"Sketchpad/internal/ui"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	cfg := config.NewDefaultConfig()
	found, err := config.Load(configPath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if t := cmd.String("theme"); t != "" {
		cfg.Window.Theme = t
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --theme: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	if found {
		logger.Debug("config loaded", slog.String("path", configPath))
	} else {
		logger.Debug("config file not found, using defaults", slog.String("path", configPath))
	}

	if err := ui.RunApp(ctx, cfg, logger); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "sketchpad",
		Usage:  "Freehand drawing canvas",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "sketchpad.yaml",
				Value:       "sketchpad.yaml",
				Sources:     cli.EnvVars("SKETCHPAD_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Window theme (light or dark)",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
