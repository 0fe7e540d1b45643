package handlers

import (
	"net/http"

	"voltflow-backend/pkg/database"
	"voltflow-backend/pkg/redis"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	checkMongo func() error
	checkRedis func() redis.HealthStatus
}

func NewHealthHandler(db *mongo.Database, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		checkMongo: func() error { return database.Health(db) },
		checkRedis: redisClient.HealthCheck,
	}
}

// Health pings both backing stores. Redis being down degrades the
// credential cache but does not take the service out of rotation; Mongo
// being down does.
func (h *HealthHandler) Health(c *gin.Context) {
	mongoStatus := "up"
	mongoErr := h.checkMongo()
	if mongoErr != nil {
		mongoStatus = mongoErr.Error()
	}

	redisStatus := h.checkRedis()

	details := gin.H{
		"mongo": mongoStatus,
		"redis": redisStatus,
	}

	if mongoErr != nil {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Message: "Health check failed",
			Data:    details,
			Error:   mongoErr.Error(),
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Health check", details)
}
