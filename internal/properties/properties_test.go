package properties

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalog(t)

	all := c.All()
	if len(all) != 5 {
		t.Fatalf("expected 5 plazas, got %d", len(all))
	}
	if all[0].Slug != "palmharborplaza" {
		t.Fatalf("expected catalog order to be kept, first is %q", all[0].Slug)
	}
	for _, slug := range []string{"palmharborplaza", "corallandings", "highlandlakes"} {
		if _, ok := c.Get(slug); !ok {
			t.Fatalf("expected %s in catalog", slug)
		}
	}

	name, ok := c.PropertyName(" CoralLandings ")
	if !ok || name != "Coral Landings Shopping Plaza" {
		t.Fatalf("unexpected name lookup %q %v", name, ok)
	}
	if _, ok := c.Get("nowhere"); ok {
		t.Fatal("unexpected plaza")
	}

	trader := all[2].Tenants[0]
	if trader.Name != "Trader Joe's" || trader.Rating != nil || trader.Reviews != nil || trader.Badge != "Opening Soon" {
		t.Fatalf("unexpected unrated tenant %+v", trader)
	}
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	cases := map[string][]Property{
		"empty slug":     {{Name: "A"}},
		"uppercase slug": {{Slug: "Palm", Name: "A"}},
		"dotted slug":    {{Slug: "a.b", Name: "A"}},
		"duplicate":      {{Slug: "a", Name: "A"}, {Slug: "a", Name: "B"}},
		"missing name":   {{Slug: "a"}},
	}
	for name, items := range cases {
		if _, err := NewCatalog(items); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plazas.yaml")
	content := "properties:\n  - slug: testplaza\n    name: Test Plaza\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.All()) != 1 {
		t.Fatalf("expected one plaza, got %d", len(c.All()))
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestCalculateStats(t *testing.T) {
	c := defaultCatalog(t)

	palm, _ := c.Get("palmharborplaza")
	stats := CalculateStats(palm.Tenants)
	if stats.AvgRating != 4.3 || stats.TotalReviews != 2664 || stats.BusinessCount != 11 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.TopRated == nil || stats.TopRated.Name != "Starlight Ballroom Dance Club" {
		t.Fatalf("unexpected top rated %+v", stats.TopRated)
	}
	if stats.MostReviewed == nil || stats.MostReviewed.Name != "Chicken Salad Chick" {
		t.Fatalf("unexpected most reviewed %+v", stats.MostReviewed)
	}

	highland, _ := c.Get("highlandlakes")
	stats = CalculateStats(highland.Tenants)
	if stats.AvgRating != 4.4 || stats.TotalReviews != 2174 || stats.BusinessCount != 7 {
		t.Fatalf("unrated tenants must not skew the average, got %+v", stats)
	}

	empty := CalculateStats(nil)
	if empty.AvgRating != 0 || empty.TopRated != nil || empty.MostReviewed != nil {
		t.Fatalf("unexpected empty stats %+v", empty)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"🍳 Breakfast":           categoryDining,
		"🛒 Grocery":             categoryDining,
		"🏥 Health Services":     categoryHealth,
		"🦷 Dental":              categoryHealth,
		"⚽ Sports & Recreation": categoryFitness,
		"👟 Retail":              categoryRetail,
		"📚 Education":           categoryServices,
		"🏠 Home Improvement":    categoryHome,
		"🎭 Arts & Entertainment": categoryEntertainment,
		"👶 Kids & Family":       categoryKids,
		"🐾 Pets":                categoryOther,
		"Technology":            categoryServices,
		"":                      categoryOther,
	}
	for raw, want := range cases {
		if got := NormalizeCategory(raw); got != want {
			t.Fatalf("%q: expected %q, got %q", raw, want, got)
		}
	}
}

func TestBusinessCategoriesOrder(t *testing.T) {
	c := defaultCatalog(t)
	palm, _ := c.Get("palmharborplaza")

	got := BusinessCategories(palm.Tenants)
	want := []CategoryCount{
		{categoryHome, "🏠", 3},
		{categoryEntertainment, "🎭", 3},
		{categoryHealth, "💇", 2},
		{categoryDining, "🍽️", 1},
		{categoryFitness, "💪", 1},
		{categoryKids, "👶", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTenantMapURL(t *testing.T) {
	c := defaultCatalog(t)
	highland, _ := c.Get("highlandlakes")

	got := TenantMapURL(highland.Tenants[0], highland)
	want := "https://www.google.com/maps/search/Trader%20Joe's%2033561%20US%20Hwy%2019%20N%20Palm%20Harbor%20FL"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if PropertyMapURL(highland) != "https://www.google.com/maps/place/33561+US+Hwy+19+N,+Palm+Harbor,+FL+34684" {
		t.Fatalf("unexpected place url %s", PropertyMapURL(highland))
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatNumber(153801); got != "153,801" {
		t.Fatalf("unexpected number %q", got)
	}
	if got := FormatCurrency(87983); got != "$87,983" {
		t.Fatalf("unexpected currency %q", got)
	}
	if got := FormatNumber(45); got != "45" {
		t.Fatalf("unexpected small number %q", got)
	}
}
