package handlers

import (
	"errors"
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/internal/tomtom"
	"voltflow-backend/pkg/geo"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type StationHandler struct {
	stationService *services.StationService
	validator      *validator.Validate
}

func NewStationHandler(stationService *services.StationService) *StationHandler {
	return &StationHandler{
		stationService: stationService,
		validator:      validator.New(),
	}
}

// GetStations returns the station list filtered and sorted for display.
// Pass ?raw=true for the unfiltered list.
func (h *StationHandler) GetStations(c *gin.Context) {
	if c.Query("raw") == "true" {
		utils.SuccessResponse(c, http.StatusOK, "Stations retrieved successfully", h.stationService.Stations())
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stations retrieved successfully", h.stationService.Visible())
}

// RefreshStations fetches the directory around the given coordinate.
// Pointer fields keep zero coordinates (equator, prime meridian) valid.
func (h *StationHandler) RefreshStations(c *gin.Context) {
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

	origin := geo.Coordinate{Lat: *req.Latitude, Lon: *req.Longitude}
	if err := h.stationService.Refresh(c.Request.Context(), origin); err != nil {
		utils.ErrorResponse(c, directoryStatus(err), "Station refresh failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stations refreshed successfully", h.stationService.Visible())
}

// GetFilters returns the active filter configuration.
func (h *StationHandler) GetFilters(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Filters retrieved successfully", h.stationService.Criteria())
}

// UpdateFilters applies a partial filter update and returns the result.
func (h *StationHandler) UpdateFilters(c *gin.Context) {
	var req services.FilterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	criteria, err := h.stationService.UpdateCriteria(req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid filter update", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Filters updated successfully", criteria)
}

// SelectStation marks a station from the current list as selected.
func (h *StationHandler) SelectStation(c *gin.Context) {
	station, err := h.stationService.Select(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Station not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Station selected", station)
}

// GetSelectedStation returns the selected station, if any.
func (h *StationHandler) GetSelectedStation(c *gin.Context) {
	station, ok := h.stationService.Selected()
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "No station selected", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Selected station retrieved", station)
}

// ClearSelectedStation drops the current selection.
func (h *StationHandler) ClearSelectedStation(c *gin.Context) {
	h.stationService.ClearSelection()
	utils.SuccessResponse(c, http.StatusOK, "Selection cleared", nil)
}

// directoryStatus distinguishes upstream directory failures from local
// decode problems.
func directoryStatus(err error) int {
	switch {
	case errors.Is(err, tomtom.ErrTransport), errors.Is(err, tomtom.ErrBadStatus):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
