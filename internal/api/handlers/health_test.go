package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voltflow-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHealthRouter(mongoErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := &HealthHandler{
		checkMongo: func() error { return mongoErr },
		checkRedis: func() redis.HealthStatus { return redis.HealthStatus{IsConnected: true} },
	}

	router := gin.New()
	router.GET("/health", handler.Health)
	return router
}

func TestHealth_AllStoresUp(t *testing.T) {
	router := newHealthRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestHealth_MongoDownFailsEnvelope(t *testing.T) {
	router := newHealthRouter(errors.New("server selection timeout"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
