package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"plaza_storefront_backend/platform/logger"
)

type pingEvent struct {
	BaseEvent
	N int
}

func (pingEvent) EventName() string { return "test.ping" }

func TestPublishSyncRunsHandlersInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	var order []int
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 1)
		return nil
	}))
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 2)
		return errors.New("second failed")
	}))
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 3)
		return nil
	}))

	err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent(), N: 1})
	if err == nil || err.Error() != "second failed" {
		t.Fatalf("expected joined handler error, got %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("unexpected handler order %v", order)
	}
}

func TestPublishIsAsyncAndSurvivesCancellation(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	release := make(chan struct{})
	var handled atomic.Int32
	var ctxErr atomic.Value

	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		<-release
		if ctx.Err() != nil {
			ctxErr.Store(ctx.Err())
		}
		handled.Add(1)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, pingEvent{BaseEvent: NewBaseEvent()})
	cancel()

	if handled.Load() != 0 {
		t.Fatal("expected Publish to return before the handler ran")
	}
	close(release)

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	if err := bus.Wait(waitCtx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if handled.Load() != 1 {
		t.Fatalf("expected handler to run once, ran %d times", handled.Load())
	}
	if ctxErr.Load() != nil {
		t.Fatalf("handler saw cancelled context: %v", ctxErr.Load())
	}
}

func TestPublishRecoversPanics(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		panic("boom")
	}))

	if err := bus.PublishSync(context.Background(), pingEvent{}); err == nil {
		t.Fatal("expected panic to surface as an error")
	}

	bus.Publish(context.Background(), pingEvent{})
	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := bus.Wait(waitCtx); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	bus.Publish(context.Background(), pingEvent{})
	if err := bus.PublishSync(context.Background(), pingEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
