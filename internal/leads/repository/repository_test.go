package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildListQuery(t *testing.T) {
	cases := []struct {
		name      string
		params    ListParams
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:     "no filters",
			params:   ListParams{},
			wantArgs: []interface{}{DefaultListLimit},
		},
		{
			name:      "property only",
			params:    ListParams{PropertySlug: "corallandings", Limit: 10},
			wantWhere: "WHERE property_slug = $1",
			wantArgs:  []interface{}{"corallandings", 10},
		},
		{
			name:      "both filters, limit clamped",
			params:    ListParams{PropertySlug: "corallandings", Priority: "high", Limit: 1000},
			wantWhere: "WHERE property_slug = $1 AND lead_priority = $2",
			wantArgs:  []interface{}{"corallandings", "high", MaxListLimit},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildListQuery(tc.params)
			if tc.wantWhere == "" && strings.Contains(query, "WHERE") {
				t.Fatalf("unexpected WHERE clause in %q", query)
			}
			if tc.wantWhere != "" && !strings.Contains(query, tc.wantWhere) {
				t.Fatalf("expected %q in %q", tc.wantWhere, query)
			}
			wantLimit := "LIMIT $" + string(rune('0'+len(tc.wantArgs)))
			if !strings.HasSuffix(query, wantLimit) {
				t.Fatalf("expected query to end with %q, got %q", wantLimit, query)
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("expected %d args, got %v", len(tc.wantArgs), args)
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Fatalf("arg %d: expected %v, got %v", i, tc.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestNoopRepository(t *testing.T) {
	repo := NoopRepository{}
	lead := Lead{ID: uuid.New(), PropertySlug: "palmharborplaza", LeadScore: 60, LeadPriority: "medium"}

	got, err := repo.Create(context.Background(), lead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != lead.ID || got.Status != StatusNew || got.CreatedAt.IsZero() {
		t.Fatalf("unexpected lead %+v", got)
	}

	items, err := repo.List(context.Background(), ListParams{})
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty list, got %v, %v", items, err)
	}
}
