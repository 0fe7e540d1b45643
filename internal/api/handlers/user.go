package handlers

import (
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService *services.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

func (h *UserHandler) currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return "", false
	}
	return userID.(string), true
}

// GetMe returns the authenticated user's document.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to retrieve user", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdatePreferences replaces the user's preference block.
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req services.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := h.userService.UpdatePreferences(userID, &req)
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to update preferences", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preferences updated successfully", user)
}

// AddFavoriteStation links a station id to the user's favorites.
func (h *UserHandler) AddFavoriteStation(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.AddFavoriteStation(userID, c.Param("stationId"))
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to add favorite station", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Favorite station added", user)
}

// RemoveFavoriteStation unlinks a station id from the user's favorites.
func (h *UserHandler) RemoveFavoriteStation(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.RemoveFavoriteStation(userID, c.Param("stationId"))
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to remove favorite station", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Favorite station removed", user)
}

// AddCar links a car id to the user's garage.
func (h *UserHandler) AddCar(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.AddCar(userID, c.Param("carId"))
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to add car", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car added", user)
}

// RemoveCar unlinks a car id from the user's garage.
func (h *UserHandler) RemoveCar(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.RemoveCar(userID, c.Param("carId"))
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to remove car", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car removed", user)
}
