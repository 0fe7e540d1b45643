package handlers

import (
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EnergyHandler struct {
	energyService *services.EnergyService
}

func NewEnergyHandler(energyService *services.EnergyService) *EnergyHandler {
	return &EnergyHandler{energyService: energyService}
}

func (h *EnergyHandler) GetScore(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Efficiency score retrieved successfully", h.energyService.Score())
}

func (h *EnergyHandler) GetTips(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Driving tips retrieved successfully", h.energyService.Tips())
}

func (h *EnergyHandler) GetSessions(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Driving sessions retrieved successfully", h.energyService.RecentSessions())
}
