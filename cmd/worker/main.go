package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/docuchain/docworker/pkg/config"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	logrus.Info("🚀 Starting document worker...")

	container := NewContainer(cfg)
	defer container.Cleanup()

	// Cancellation replaces the usual stop flag: the worker observes it at
	// its dequeue suspension point and finishes any in-flight job first.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ops := newOpsServer(container)
	go func() {
		if err := ops.Listen(cfg.Ops.Addr); err != nil {
			logrus.WithError(err).Error("ops server stopped")
		}
	}()

	if err := container.Worker.Run(ctx); err != nil {
		logrus.WithError(err).Error("worker loop exited with error")
	}

	if err := ops.Shutdown(); err != nil {
		logrus.WithError(err).Error("ops server shutdown failed")
	}

	logrus.Info("👋 Worker exited")
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
