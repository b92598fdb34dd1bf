package properties

import (
	apphttp "plaza_storefront_backend/internal/http"
)

// Module wires the property catalog HTTP routes.
type Module struct {
	catalog *Catalog
	handler *Handler
}

func NewModule(catalog *Catalog) *Module {
	return &Module{catalog: catalog, handler: NewHandler(NewService(catalog))}
}

func (m *Module) Name() string {
	return "properties"
}

// Catalog returns the catalog for modules that need property lookups.
func (m *Module) Catalog() *Catalog {
	return m.catalog
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Public.Group("/properties")
	group.GET("", m.handler.List)
	group.GET("/:slug", m.handler.Get)
	ctx.Public.GET("/site", m.handler.Site)
}

var _ apphttp.Module = (*Module)(nil)
