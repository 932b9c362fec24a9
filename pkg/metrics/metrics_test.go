package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveComposition(t *testing.T) {
	m := New()

	m.ObserveComposition("CUSTOMER", nil)
	m.ObserveComposition("CUSTOMER", errors.New("boom"))
	m.ObserveComposition("CUSTOMER", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.compositions.WithLabelValues("CUSTOMER", "committed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.compositions.WithLabelValues("CUSTOMER", "rolled_back")))
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/customers/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/customers/7", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/customers/:id", "204")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "freight_admin_http_requests_total")
}
