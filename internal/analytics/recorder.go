// Package analytics records the storefront conversion funnel.
// Recording is best effort and never gates a request.
package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/metrics"

	"github.com/redis/go-redis/v9"
)

// Funnel event names, in funnel order.
const (
	EventTourClick         = "tour_click"
	EventPhoneClick        = "phone_click"
	EventInquiryFormOpen   = "inquiry_form_open"
	EventInquiryFormStart  = "inquiry_form_start"
	EventInquiryFormStep   = "inquiry_form_step"
	EventInquiryFormSubmit = "inquiry_form_submit"
)

// EventNames lists every accepted event.
var EventNames = []string{
	EventTourClick,
	EventPhoneClick,
	EventInquiryFormOpen,
	EventInquiryFormStart,
	EventInquiryFormStep,
	EventInquiryFormSubmit,
}

const (
	dayLayout = "2006-01-02"
	keyTTL    = 400 * 24 * time.Hour
)

// Event is one funnel interaction.
type Event struct {
	Name         string
	PropertySlug string
	Step         int    // wizard step, 0 when not applicable
	Score        *int   // lead score on submit
	Priority     string // lead priority on submit
	At           time.Time
}

// Recorder stores funnel events.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// FunnelKey is the Redis hash holding one property's counters for one day.
func FunnelKey(propertySlug string, day time.Time) string {
	return fmt.Sprintf("funnel:%s:%s", propertySlug, day.Format(dayLayout))
}

// counterFields lists the hash fields an event increments.
func counterFields(e Event) []string {
	fields := []string{e.Name}
	if e.Step > 0 {
		fields = append(fields, e.Name+":step:"+strconv.Itoa(e.Step))
	}
	if e.Priority != "" {
		fields = append(fields, e.Name+":priority:"+e.Priority)
	}
	return fields
}

// RedisRecorder keeps per-day hash counters in Redis.
type RedisRecorder struct {
	client redis.UniversalClient
	loc    *time.Location
	log    *logger.Logger
}

// NewRedisRecorder buckets days in loc.
func NewRedisRecorder(client redis.UniversalClient, loc *time.Location, log *logger.Logger) *RedisRecorder {
	if loc == nil {
		loc = time.UTC
	}
	return &RedisRecorder{client: client, loc: loc, log: log}
}

func (r *RedisRecorder) Record(ctx context.Context, e Event) error {
	metrics.FunnelEvents.WithLabelValues(e.PropertySlug, e.Name).Inc()

	key := FunnelKey(e.PropertySlug, e.At.In(r.loc))
	pipe := r.client.TxPipeline()
	for _, field := range counterFields(e) {
		pipe.HIncrBy(ctx, key, field, 1)
	}
	if e.Score != nil {
		pipe.HIncrBy(ctx, key, e.Name+":score_total", int64(*e.Score))
	}
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record funnel event %s: %w", e.Name, err)
	}
	return nil
}

// Counts returns the counters for a property on the calendar date of day,
// taken as is without converting to the recorder's location.
func (r *RedisRecorder) Counts(ctx context.Context, propertySlug string, day time.Time) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, FunnelKey(propertySlug, day)).Result()
	if err != nil {
		return nil, fmt.Errorf("read funnel counters: %w", err)
	}
	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

// LogRecorder only logs and counts in Prometheus. It is used without Redis.
type LogRecorder struct {
	Log *logger.Logger
}

func (r LogRecorder) Record(ctx context.Context, e Event) error {
	metrics.FunnelEvents.WithLabelValues(e.PropertySlug, e.Name).Inc()
	r.Log.WithContext(ctx).Debug("funnel event",
		"event", e.Name,
		"property", e.PropertySlug,
		"step", e.Step,
		"priority", e.Priority,
	)
	return nil
}
