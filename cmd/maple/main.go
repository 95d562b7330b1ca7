package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"maple/internal/adapters/cli"
	"maple/internal/adapters/pacman"
	"maple/internal/config"
	"maple/internal/domain"
	"maple/internal/infrastructure/i18n"
	"maple/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel)

	loader, err := i18n.Load(cfg.Language)
	if err != nil {
		slog.Error("loading translations", "error", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(pacman.New())
	if err := root.Execute(); err != nil {
		// The technical detail goes to the log; the user sees the
		// localized form when the error carries one.
		slog.Debug("command failed", "error", err)

		var localised domain.Localised
		if errors.As(err, &localised) {
			fmt.Fprintln(os.Stderr, localised.Localise(loader))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
