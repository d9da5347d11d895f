package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/config"
	"github.com/sweetpencilbd/api/handlers"
	"github.com/sweetpencilbd/api/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Open(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		cancel()
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		slog.Error("Failed to ensure indexes", "error", err)
		os.Exit(1)
	}
	cancel()

	gin.SetMode(gin.ReleaseMode)
	r := SetupRouter(handlers.New(db))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "db", cfg.DBName)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		slog.Error("Database disconnect failed", "error", err)
	}
	slog.Info("Server exited gracefully.")
}
