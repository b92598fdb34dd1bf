// Package properties serves the plaza catalog: listing, per-plaza pages and
// the subdomain lookup used by the storefront.
package properties

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/properties.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Properties []Property `yaml:"properties"`
}

// Catalog is an immutable, ordered set of plazas keyed by slug.
type Catalog struct {
	order  []string
	bySlug map[string]Property
}

// NewCatalog validates and indexes the given plazas. Slugs must be unique
// lowercase DNS labels because they double as subdomains.
func NewCatalog(items []Property) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(items)),
		bySlug: make(map[string]Property, len(items)),
	}
	for _, p := range items {
		slug := strings.TrimSpace(p.Slug)
		if slug == "" || slug != strings.ToLower(slug) || strings.ContainsAny(slug, ". /") {
			return nil, fmt.Errorf("property %q: invalid slug", p.Slug)
		}
		if _, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("property %q: duplicate slug", slug)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("property %q: name is required", slug)
		}
		p.Slug = slug
		c.order = append(c.order, slug)
		c.bySlug[slug] = p
	}
	return c, nil
}

// DefaultCatalog returns the embedded plaza catalog.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog file. An empty path means the embedded one.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read property catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse property catalog: %w", err)
	}
	return NewCatalog(file.Properties)
}

// Get returns the plaza with the given slug.
func (c *Catalog) Get(slug string) (Property, bool) {
	p, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	return p, ok
}

// All returns the plazas in catalog order.
func (c *Catalog) All() []Property {
	out := make([]Property, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.bySlug[slug])
	}
	return out
}

// PropertyName resolves a slug to the plaza's display name.
func (c *Catalog) PropertyName(slug string) (string, bool) {
	p, ok := c.Get(slug)
	if !ok {
		return "", false
	}
	return p.Name, true
}
