package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
)

var testCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "rub_converter",
	Subsystem: "test",
	Name:      "hits_total",
})

func Test_OnScrape_ShouldExposeRegisteredMetrics(t *testing.T) {
	testCounter.Inc()
	s := NewServer("127.0.0.1:0")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rub_converter_test_hits_total 1")
}

func Test_OnUnknownPath_ShouldReturnNotFound(t *testing.T) {
	s := NewServer("127.0.0.1:0")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
