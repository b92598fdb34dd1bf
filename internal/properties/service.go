package properties

import (
	"plaza_storefront_backend/platform/apperr"
)

const msgPropertyNotFound = "property not found"

// Service answers catalog queries.
type Service struct {
	catalog *Catalog
}

func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// List returns a summary per plaza in catalog order.
func (s *Service) List() []Summary {
	all := s.catalog.All()
	out := make([]Summary, 0, len(all))
	for _, p := range all {
		out = append(out, Summary{
			Slug:        p.Slug,
			Name:        p.Name,
			Tagline:     p.Tagline,
			Address:     p.Address,
			City:        p.City,
			State:       p.State,
			Zip:         p.Zip,
			AccentColor: p.AccentColor,
			TenantCount: len(p.Tenants),
		})
	}
	return out
}

// Get returns the full page payload for a plaza.
func (s *Service) Get(slug string) (Detail, error) {
	p, ok := s.catalog.Get(slug)
	if !ok {
		return Detail{}, apperr.NotFound(msgPropertyNotFound)
	}

	tenants := make([]TenantView, 0, len(p.Tenants))
	for _, t := range p.Tenants {
		tenants = append(tenants, TenantView{Tenant: t, MapURL: TenantMapURL(t, p)})
	}

	return Detail{
		Property:   p,
		Tenants:    tenants,
		Insights:   CalculateStats(p.Tenants),
		Categories: BusinessCategories(p.Tenants),
		Display:    displayDemographics(p),
		MapURL:     PropertyMapURL(p),
	}, nil
}

// BySubdomain resolves the plaza served on a subdomain.
func (s *Service) BySubdomain(subdomain string) (Detail, error) {
	if subdomain == "" {
		return Detail{}, apperr.NotFound("no property for this host")
	}
	return s.Get(subdomain)
}
