// Package leads provides the lead qualification bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"fmt"
	"time"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/events"
	apphttp "plaza_storefront_backend/internal/http"
	"plaza_storefront_backend/internal/leads/handler"
	"plaza_storefront_backend/internal/leads/repository"
	"plaza_storefront_backend/internal/leads/scheduling"
	"plaza_storefront_backend/internal/leads/scoring"
	"plaza_storefront_backend/internal/leads/service"
	"plaza_storefront_backend/platform/config"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the slice of configuration the leads module reads.
type Config interface {
	config.ScoringConfig
	config.CalendarConfig
	config.EmailConfig
}

// Deps are the shared collaborators handed to the module.
type Deps struct {
	// Pool is nil when DATABASE_URL is unset; leads are then only logged.
	Pool         *pgxpool.Pool
	Properties   service.PropertyLookup
	Sender       email.Sender
	EmailEnabled bool
	Bus          events.Bus
	Validator    *validator.Validator
	Log          *logger.Logger
}

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(cfg Config, deps Deps) (*Module, error) {
	policy := scoring.DefaultPolicy().WithThresholds(cfg.GetLeadScoreHighThreshold(), cfg.GetLeadScoreMediumThreshold())
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("scoring policy: %w", err)
	}

	calendar, err := loadCalendar(cfg.GetHolidaysFile())
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.GetTimezone())
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.GetTimezone(), err)
	}

	var repo repository.LeadStore = repository.NoopRepository{Log: deps.Log}
	if deps.Pool != nil {
		repo = repository.New(deps.Pool)
	}

	svc := service.New(service.Deps{
		Repo:         repo,
		Properties:   deps.Properties,
		Calendar:     calendar,
		Policy:       policy,
		Sender:       deps.Sender,
		EmailEnabled: deps.EmailEnabled,
		OwnerEmail:   OwnerEmail(cfg),
		Bus:          deps.Bus,
		Location:     loc,
		Log:          deps.Log,
	})

	return &Module{
		handler: handler.New(svc, deps.Validator),
		service: svc,
	}, nil
}

// OwnerEmail is where lead alerts go: LEAD_NOTIFICATION_EMAIL, else the sender address.
func OwnerEmail(cfg config.EmailConfig) string {
	if addr := cfg.GetLeadNotificationEmail(); addr != "" {
		return addr
	}
	return cfg.GetEmailFromAddress()
}

func loadCalendar(path string) (*scheduling.Calendar, error) {
	if path == "" {
		return scheduling.DefaultCalendar()
	}
	calendar, err := scheduling.LoadCalendar(path)
	if err != nil {
		return nil, fmt.Errorf("load holidays from %s: %w", path, err)
	}
	return calendar, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the public wizard routes and, when admin auth is configured, the inbox.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/leads"))
	if ctx.Admin != nil {
		m.handler.RegisterAdminRoutes(ctx.Admin.Group("/leads"))
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
