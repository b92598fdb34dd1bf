package properties

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plaza_storefront_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(defaultCatalog(t)))
	engine := gin.New()
	engine.Use(httpkit.ResolveSubdomain(""))
	engine.GET("/properties", h.List)
	engine.GET("/properties/:slug", h.Get)
	engine.GET("/site", h.Site)
	return engine
}

func TestHandlerList(t *testing.T) {
	engine := newTestEngine(t)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Properties []Summary `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Properties, 5)
	assert.Equal(t, 11, body.Properties[0].TenantCount)
}

func TestHandlerGet(t *testing.T) {
	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/corallandings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var detail Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Coral Landings Shopping Plaza", detail.Name)
	assert.Equal(t, "91,500", detail.Display.DailyTraffic)
	assert.Equal(t, "102,786", detail.Display.TotalSF)
	assert.Len(t, detail.Tenants, 8)
	assert.Contains(t, detail.Tenants[5].MapURL, "H%26R%20Block")

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerSite(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/site", nil)
	req.Host = "highlandlakes.localhost:3000"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"highlandlakes"`)

	req = httptest.NewRequest(http.MethodGet, "/site", nil)
	req.Host = "localhost:3000"
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
