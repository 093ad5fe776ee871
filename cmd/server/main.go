package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill-swap/internal/app"
	"skill-swap/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(zap.NewExample(), "failed to load config", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		fatal(zap.NewExample(), "failed to bootstrap app", err)
	}
	l := bootstrap.Logger
	defer func() {
		if err := cleanup(); err != nil {
			l.Error("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		l.Error("invalid HTTP port", zap.Error(err))
		return
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("http server listening", zap.String("addr", addr))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		l.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			l.Error("shutdown error", zap.Error(err))
		}
	}
}

func fatal(l *zap.Logger, msg string, err error) {
	l.Error(msg, zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
