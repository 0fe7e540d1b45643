package handlers

import (
	"errors"
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CarHandler struct {
	carService *services.CarService
	validator  *validator.Validate
}

func NewCarHandler(carService *services.CarService) *CarHandler {
	return &CarHandler{
		carService: carService,
		validator:  validator.New(),
	}
}

// GetCars returns every known vehicle.
func (h *CarHandler) GetCars(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Cars retrieved successfully", h.carService.ListCars())
}

// GetCar returns one vehicle by id.
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.GetCar(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to retrieve car", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Car retrieved successfully", car)
}

// StartCharging begins a charging session.
func (h *CarHandler) StartCharging(c *gin.Context) {
	car, err := h.carService.StartCharging(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to start charging", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Charging started", car)
}

// StopCharging ends the charging session.
func (h *CarHandler) StopCharging(c *gin.Context) {
	car, err := h.carService.StopCharging(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to stop charging", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Charging stopped", car)
}

// SetChargingLimit sets the charge target as a battery fraction.
func (h *CarHandler) SetChargingLimit(c *gin.Context) {
	var req struct {
		Limit float64 `json:"limit" validate:"required,gt=0,lte=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	car, err := h.carService.SetChargingLimit(c.Param("id"), req.Limit)
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to set charging limit", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Charging limit updated", car)
}

// SetTemperature sets the interior climate target.
func (h *CarHandler) SetTemperature(c *gin.Context) {
	var req struct {
		Temperature float64 `json:"temperature" validate:"required,gte=-10,lte=40"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	car, err := h.carService.SetTemperature(c.Param("id"), req.Temperature)
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to set temperature", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Temperature updated", car)
}

// UpdateControls applies a partial toggle update.
func (h *CarHandler) UpdateControls(c *gin.Context) {
	var req services.ControlsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	car, err := h.carService.UpdateControls(c.Param("id"), req)
	if err != nil {
		utils.ErrorResponse(c, carStatus(err), "Failed to update controls", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Controls updated", car)
}

func carStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCarNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrChargeState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
