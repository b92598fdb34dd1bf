package properties

// Property is one plaza in the catalog.
type Property struct {
	Slug         string        `yaml:"slug" json:"slug"`
	Name         string        `yaml:"name" json:"name"`
	Tagline      string        `yaml:"tagline" json:"tagline"`
	Description  string        `yaml:"description" json:"description"`
	Address      string        `yaml:"address" json:"address"`
	City         string        `yaml:"city" json:"city"`
	State        string        `yaml:"state" json:"state"`
	Zip          string        `yaml:"zip" json:"zip"`
	AccentColor  string        `yaml:"accentColor" json:"accentColor"`
	Hours        string        `yaml:"hours" json:"hours,omitempty"`
	Phone        string        `yaml:"phone" json:"phone,omitempty"`
	Features     []Feature     `yaml:"features" json:"features"`
	Stats        []Stat        `yaml:"stats" json:"stats"`
	Tenants      []Tenant      `yaml:"tenants" json:"tenants"`
	MapQuery     string        `yaml:"mapQuery" json:"mapQuery"`
	Demographics Demographics  `yaml:"demographics" json:"demographics"`
	Details      Details       `yaml:"propertyDetails" json:"propertyDetails"`
	Nearby       []NearbyPlace `yaml:"nearby" json:"nearby,omitempty"`
}

type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Tenant is a business in the plaza. Rating and Reviews are nil when the
// business has no public reviews yet.
type Tenant struct {
	Name        string   `yaml:"name" json:"name"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Rating      *float64 `yaml:"rating" json:"rating,omitempty"`
	Reviews     *int     `yaml:"reviews" json:"reviews,omitempty"`
	Badge       string   `yaml:"badge" json:"badge,omitempty"`
	Website     string   `yaml:"website" json:"website,omitempty"`
	Phone       string   `yaml:"phone" json:"phone,omitempty"`
	Hours       string   `yaml:"hours" json:"hours,omitempty"`
}

type Demographics struct {
	DailyTraffic    int    `yaml:"dailyTraffic" json:"dailyTraffic"`
	TrafficSource   string `yaml:"trafficSource" json:"trafficSource"`
	Population1Mile int    `yaml:"population1Mile" json:"population1Mile"`
	Population3Mile int    `yaml:"population3Mile" json:"population3Mile"`
	Population5Mile int    `yaml:"population5Mile" json:"population5Mile"`
	AvgIncome1Mile  int    `yaml:"avgIncome1Mile" json:"avgIncome1Mile"`
	AvgIncome3Mile  int    `yaml:"avgIncome3Mile" json:"avgIncome3Mile"`
	AvgIncome5Mile  int    `yaml:"avgIncome5Mile" json:"avgIncome5Mile"`
	MedianAge       int    `yaml:"medianAge" json:"medianAge,omitempty"`
	DataSource      string `yaml:"dataSource" json:"dataSource"`
	LastUpdated     string `yaml:"lastUpdated" json:"lastUpdated"`
}

type Details struct {
	TotalSF       int    `yaml:"totalSF" json:"totalSF,omitempty"`
	Occupancy     string `yaml:"occupancy" json:"occupancy,omitempty"`
	ParkingSpaces int    `yaml:"parkingSpaces" json:"parkingSpaces,omitempty"`
	YearBuilt     int    `yaml:"yearBuilt" json:"yearBuilt,omitempty"`
	Anchor        string `yaml:"anchor" json:"anchor,omitempty"`
	Signage       string `yaml:"signage" json:"signage,omitempty"`
}

type NearbyPlace struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Distance string `yaml:"distance" json:"distance"`
}

// Summary is the list view of a plaza.
type Summary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	AccentColor string `json:"accentColor"`
	TenantCount int    `json:"tenantCount"`
}

// TenantView is a tenant with its map link.
type TenantView struct {
	Tenant
	MapURL string `json:"mapUrl"`
}

// DemographicsDisplay holds the trade-area figures preformatted for en-US.
type DemographicsDisplay struct {
	DailyTraffic    string `json:"dailyTraffic"`
	Population1Mile string `json:"population1Mile"`
	Population3Mile string `json:"population3Mile"`
	Population5Mile string `json:"population5Mile"`
	AvgIncome1Mile  string `json:"avgIncome1Mile"`
	AvgIncome3Mile  string `json:"avgIncome3Mile"`
	AvgIncome5Mile  string `json:"avgIncome5Mile"`
	TotalSF         string `json:"totalSF,omitempty"`
}

// Detail is the full plaza page payload.
type Detail struct {
	Property
	Tenants    []TenantView        `json:"tenants"`
	Insights   Stats               `json:"insights"`
	Categories []CategoryCount     `json:"categories"`
	Display    DemographicsDisplay `json:"display"`
	MapURL     string              `json:"mapUrl"`
}
