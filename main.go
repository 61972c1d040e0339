package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/game-wheel/cliparse"
	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/picker"
	"github.com/danielhkuo/game-wheel/router"
	"github.com/danielhkuo/game-wheel/store"
)

func main() {
	var err error

	// .env is optional; real env vars win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := context.Background()

	// Open document backend
	backend, err := store.OpenBackend(ctx, store.Options{
		Type:        cfg.StoreType,
		DataDir:     cfg.DataDir,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
	})
	if err != nil {
		slog.Error("store connection failed", "type", cfg.StoreType, "error", err)
		os.Exit(1)
	}

	st := store.New(backend)
	defer st.Close()

	// Create missing documents
	if err := st.Bootstrap(ctx, models.DefaultGameList()); err != nil {
		slog.Error("store bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Store ready", "type", cfg.StoreType)

	rules, err := picker.NewRules(models.DefaultTriggers())
	if err != nil {
		slog.Error("invalid trigger table", "error", err)
		os.Exit(1)
	}

	// Create router
	handler := router.NewRouter(st, rules, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
