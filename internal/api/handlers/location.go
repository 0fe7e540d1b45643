package handlers

import (
	"errors"
	"net/http"

	"voltflow-backend/internal/location"
	"voltflow-backend/pkg/geo"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type LocationHandler struct {
	provider  *location.Provider
	validator *validator.Validate
}

func NewLocationHandler(provider *location.Provider) *LocationHandler {
	return &LocationHandler{
		provider:  provider,
		validator: validator.New(),
	}
}

// GetLocation returns the authorization status and the last published
// coordinate, when one exists.
func (h *LocationHandler) GetLocation(c *gin.Context) {
	response := gin.H{"status": h.provider.Status()}
	if coord, ok := h.provider.Current(); ok {
		response["latitude"] = coord.Lat
		response["longitude"] = coord.Lon
	}
	utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", response)
}

// UpdatePermission records the outcome of the platform permission prompt
// or an external settings change.
func (h *LocationHandler) UpdatePermission(c *gin.Context) {
	var req struct {
		Decision string `json:"decision" validate:"required,oneof=grant deny revoke"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var err error
	switch req.Decision {
	case "grant":
		err = h.provider.Grant()
	case "deny":
		err = h.provider.Deny()
	case "revoke":
		err = h.provider.Revoke()
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusConflict, "Permission update not allowed in current state", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Permission updated", gin.H{"status": h.provider.Status()})
}

// RequestLocation asks for location updates. Repeating the call while
// already streaming succeeds without re-prompting.
func (h *LocationHandler) RequestLocation(c *gin.Context) {
	err := h.provider.RequestLocation()
	switch {
	case err == nil:
		utils.SuccessResponse(c, http.StatusOK, "Location updates active", gin.H{"status": h.provider.Status()})
	case errors.Is(err, location.ErrDecisionPending):
		utils.SuccessResponse(c, http.StatusAccepted, "Permission decision pending", gin.H{"status": h.provider.Status()})
	case errors.Is(err, location.ErrPermissionDenied):
		utils.ErrorResponse(c, http.StatusForbidden, "Location permission denied", err)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Location request failed", err)
	}
}

// StopLocation pauses streaming while keeping authorization.
func (h *LocationHandler) StopLocation(c *gin.Context) {
	if err := h.provider.Stop(); err != nil {
		utils.ErrorResponse(c, http.StatusConflict, "Not currently streaming", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Location updates stopped", gin.H{"status": h.provider.Status()})
}

// ReportLocation feeds a device coordinate into the provider. Pointer
// fields keep zero coordinates (equator, prime meridian) valid.
func (h *LocationHandler) ReportLocation(c *gin.Context) {
	var req struct {
		Latitude  *float64 `json:"latitude" validate:"required,latitude"`
		Longitude *float64 `json:"longitude" validate:"required,longitude"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	published, err := h.provider.Report(geo.Coordinate{Lat: *req.Latitude, Lon: *req.Longitude})
	if err != nil {
		if errors.Is(err, location.ErrNotStreaming) {
			utils.ErrorResponse(c, http.StatusConflict, "Location updates are not active", err)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to report location", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location reported", gin.H{"published": published})
}
