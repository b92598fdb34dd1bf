package scheduler

import (
	"context"
	"fmt"
	"time"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/platform/config"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/metrics"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sender email.Sender
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := newWorker(sender, log)
	w.server = server
	return w, nil
}

func newWorker(sender email.Sender, log *logger.Logger) *Worker {
	w := &Worker{
		mux:    asynq.NewServeMux(),
		sender: sender,
		log:    log,
	}
	w.mux.HandleFunc(TaskLeadConfirmationEmail, w.handleLeadConfirmation)
	return w
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleLeadConfirmation(ctx context.Context, task *asynq.Task) error {
	start := time.Now()
	defer func() {
		metrics.JobDuration.WithLabelValues(TaskLeadConfirmationEmail).Observe(time.Since(start).Seconds())
	}()

	payload, err := ParseLeadConfirmationPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	lead, err := payload.Lead()
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if err := w.sender.SendLeadConfirmation(ctx, payload.ToEmail, lead); err != nil {
		metrics.EmailsSent.WithLabelValues("lead_confirmation", "failed").Inc()
		w.log.EmailFailure("lead_confirmation", payload.ToEmail, err)
		return err
	}

	metrics.EmailsSent.WithLabelValues("lead_confirmation", "sent").Inc()
	w.log.Info("lead confirmation sent", "leadId", payload.LeadID, "to", payload.ToEmail)
	return nil
}
