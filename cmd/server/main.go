package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PeterJCLaw/sb-vision/internal/app"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApp(ctx)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := application.Server.Start(ctx); err != nil {
		panic(err)
	}
	application.StartWorker(ctx)

	logger.Info("Pipeline service running. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	cancel()
}
