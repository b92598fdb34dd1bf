package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaza_storefront_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusNew = "new"

	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Lead is one stored inquiry.
type Lead struct {
	ID            uuid.UUID
	PropertySlug  string
	PropertyName  string
	BusinessType  string
	SpaceNeeded   string
	Timeline      string
	Budget        string
	Name          string
	Phone         string
	Email         string
	BusinessName  string
	Message       string
	ScheduledDate *time.Time
	ScheduledTime *string
	LeadScore     int
	LeadPriority  string
	Status        string
	CreatedAt     time.Time
}

// ListParams filters the lead inbox. Empty strings match everything.
type ListParams struct {
	PropertySlug string
	Priority     string
	Limit        int
}

// LeadStore persists inquiries.
type LeadStore interface {
	Create(ctx context.Context, lead Lead) (Lead, error)
	List(ctx context.Context, params ListParams) ([]Lead, error)
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, lead Lead) (Lead, error) {
	if lead.Status == "" {
		lead.Status = StatusNew
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO plaza_leads (
			id, property_slug, property_name, business_type, space_needed, timeline, budget,
			name, phone, email, business_name, message, scheduled_date, scheduled_time,
			lead_score, lead_priority, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at
	`,
		lead.ID, lead.PropertySlug, lead.PropertyName, lead.BusinessType, lead.SpaceNeeded, lead.Timeline, lead.Budget,
		lead.Name, lead.Phone, lead.Email, lead.BusinessName, lead.Message, lead.ScheduledDate, lead.ScheduledTime,
		lead.LeadScore, lead.LeadPriority, lead.Status,
	).Scan(&lead.CreatedAt)
	if err != nil {
		return Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return lead, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Lead, error) {
	query, args := buildListQuery(params)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanLead)
	if err != nil {
		return nil, fmt.Errorf("scan leads: %w", err)
	}
	return items, nil
}

func buildListQuery(params ListParams) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	if params.PropertySlug != "" {
		args = append(args, params.PropertySlug)
		where = append(where, fmt.Sprintf("property_slug = $%d", len(args)))
	}
	if params.Priority != "" {
		args = append(args, params.Priority)
		where = append(where, fmt.Sprintf("lead_priority = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT id, property_slug, property_name, business_type, space_needed, timeline, budget,
		name, phone, email, business_name, message, scheduled_date, scheduled_time,
		lead_score, lead_priority, status, created_at
		FROM plaza_leads`)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	args = append(args, clampLimit(params.Limit))
	fmt.Fprintf(&b, " ORDER BY created_at DESC LIMIT $%d", len(args))
	return b.String(), args
}

func scanLead(row pgx.CollectableRow) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.PropertySlug, &lead.PropertyName, &lead.BusinessType, &lead.SpaceNeeded, &lead.Timeline, &lead.Budget,
		&lead.Name, &lead.Phone, &lead.Email, &lead.BusinessName, &lead.Message, &lead.ScheduledDate, &lead.ScheduledTime,
		&lead.LeadScore, &lead.LeadPriority, &lead.Status, &lead.CreatedAt,
	)
	return lead, err
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// NoopRepository is used when no database is configured.
// Create logs the lead and hands it back; List is always empty.
type NoopRepository struct {
	Log *logger.Logger
}

func (n NoopRepository) Create(_ context.Context, lead Lead) (Lead, error) {
	if lead.Status == "" {
		lead.Status = StatusNew
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	if n.Log != nil {
		n.Log.Info("lead not persisted, database disabled",
			"leadId", lead.ID,
			"property", lead.PropertySlug,
			"priority", lead.LeadPriority,
		)
	}
	return lead, nil
}

func (NoopRepository) List(context.Context, ListParams) ([]Lead, error) {
	return []Lead{}, nil
}

var (
	_ LeadStore = (*Repository)(nil)
	_ LeadStore = NoopRepository{}
)
