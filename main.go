// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// vex is a terminal chat client for OpenAI-compatible completion APIs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vexlabs/vex-tui/internal/applog"
	"github.com/vexlabs/vex-tui/internal/config"
	"github.com/vexlabs/vex-tui/internal/llm"
	"github.com/vexlabs/vex-tui/internal/storage"
	"github.com/vexlabs/vex-tui/internal/store"
	"github.com/vexlabs/vex-tui/internal/toast"
	"github.com/vexlabs/vex-tui/internal/ui/chat"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vex:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, used for VEX_API_KEY during development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir, err := storage.DefaultDir()
	if err != nil {
		return err
	}
	logger, cleanup, err := applog.New(dataDir, cfg.Log.Level)
	if err != nil {
		logger = applog.Nop()
		cleanup = func() {}
	}
	defer cleanup()
	logger.Info("starting vex", zap.String("version", version), zap.String("model", cfg.API.Model))

	files := storage.NewFileStore(dataDir)

	st := store.New(store.WithSaver(files.Save))

	snap, err := files.Load()
	switch {
	case err == nil:
		st.Restore(snap)
		logger.Info("state restored", zap.Int("chats", len(snap.Chats)))
	case errors.Is(err, storage.ErrStateNotFound):
		logger.Info("no saved state, starting fresh")
	default:
		// Unreadable state is not fatal: start empty and leave the file
		// alone until the first successful interaction overwrites it.
		logger.Error("state load failed", zap.Error(err))
	}

	client := llm.NewClientWithConfig(&llm.ClientConfig{
		BaseURL:           cfg.API.BaseURL,
		APIKey:            cfg.API.Key,
		Model:             cfg.API.Model,
		Temperature:       cfg.API.Temperature,
		MaxTokens:         cfg.API.MaxTokens,
		Timeout:           cfg.API.Timeout(),
		RequestsPerMinute: cfg.API.RequestsPerMinute,
	})

	toasts := toast.NewManager()

	m := chat.New(chat.Options{
		Store:     st,
		Toasts:    toasts,
		Completer: client,
		Config:    cfg,
		Logger:    logger,
		Version:   version,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Background saves report into the event loop, which exists only now.
	st.SetSaveErrorHandler(func(err error) {
		p.Send(chat.SaveErrorMsg{Err: err})
	})

	// Hot-reload the config file for the lifetime of the program.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path, err := config.Path(); err == nil {
		go func() {
			_ = config.Watch(ctx, path,
				func(c *config.Config) { p.Send(chat.ConfigReloadedMsg{Config: c}) },
				func(err error) { logger.Warn("config reload failed", zap.Error(err)) },
			)
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	logger.Info("shutting down")
	return nil
}
