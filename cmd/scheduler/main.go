package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/scheduler"
	"plaza_storefront_backend/platform/config"
	"plaza_storefront_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender, emailEnabled, err := email.NewSender(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	if !emailEnabled {
		log.Warn("no email provider configured; confirmation jobs will only be logged")
	}

	worker, err := scheduler.NewWorker(cfg, sender, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}
