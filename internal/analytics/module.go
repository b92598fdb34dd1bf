package analytics

import (
	"time"

	"plaza_storefront_backend/internal/events"
	apphttp "plaza_storefront_backend/internal/http"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module wires the funnel endpoints and the inquiry subscriber.
type Module struct {
	svc     *Service
	handler *Handler
}

// NewModule records into Redis when client is non-nil, otherwise to the log.
func NewModule(client redis.UniversalClient, loc *time.Location, properties PropertyLookup, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	var (
		recorder Recorder = LogRecorder{Log: log}
		counts   CountReader
	)
	if client != nil {
		rr := NewRedisRecorder(client, loc, log)
		recorder, counts = rr, rr
	}

	svc := NewService(recorder, log)
	if loc != nil {
		svc.now = func() time.Time { return time.Now().In(loc) }
	}
	svc.RegisterHandlers(bus)

	return &Module{svc: svc, handler: NewHandler(svc, properties, counts, val)}
}

func (m *Module) Name() string {
	return "analytics"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Public.POST("/analytics/events", m.handler.Track)
	if ctx.Admin != nil {
		ctx.Admin.GET("/analytics/funnel", m.handler.Funnel)
	}
}

var _ apphttp.Module = (*Module)(nil)
