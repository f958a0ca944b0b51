package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder(reg)
	server := gin.New()
	server.Use(builder.Build())
	server.POST("/feedback/submit", func(ctx *gin.Context) {
		ctx.Status(http.StatusUnauthorized)
	})

	for i := 0; i < 2; i++ {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/feedback/submit", nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/not/exist/1", nil))
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/not/exist/2", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodPost, "/feedback/submit", "401")))
	assert.Equal(t, float64(2), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, unmatchedPath, "404")))
}
