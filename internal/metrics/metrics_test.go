package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLookup(t *testing.T) {
	before := testutil.ToFloat64(pokemonLookups.WithLabelValues(SourceCatalog, ResultMiss))
	ObserveLookup(SourceCatalog, ResultMiss)
	ObserveLookup(SourceCatalog, ResultMiss)
	after := testutil.ToFloat64(pokemonLookups.WithLabelValues(SourceCatalog, ResultMiss))

	assert.Equal(t, before+2, after)
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware)
	router.GET("/api/teams/:user", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/teams/:user", http.MethodGet, "200"))
	beforeUnmatched := testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", http.MethodGet, "404"))

	for _, path := range []string{"/api/teams/ash", "/api/teams/misty", "/nope"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(httpRequests.WithLabelValues("/api/teams/:user", http.MethodGet, "200")))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", http.MethodGet, "404")))

	ObserveLookup(SourceStore, ResultHit)
	ObserveCatalogRequest(ResultHit, time.Now())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pokemon_lookups_total")
	assert.Contains(t, w.Body.String(), "pokeapi_request_duration_seconds")
}
