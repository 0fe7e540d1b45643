package handlers

import (
	"errors"
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService *services.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

// SignUp creates a new account and signs the user in.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req services.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	response, err := h.authService.SignUp(&req)
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Sign up failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", response)
}

// SignIn authenticates an existing account.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	response, err := h.authService.SignIn(&req)
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Sign in failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", response)
}

// SignOut clears the current session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.authService.SignOut()
	utils.SuccessResponse(c, http.StatusOK, "Signed out successfully", nil)
}

// GetSession returns the currently published user, if any.
func (h *AuthHandler) GetSession(c *gin.Context) {
	user := h.authService.CurrentUser()
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "No active session", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", user)
}

// GetProfile returns the authenticated user's profile document.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	user, err := h.authService.Profile(userID.(string))
	if err != nil {
		utils.ErrorResponse(c, authStatus(err), "Failed to retrieve profile", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// authStatus maps an auth failure to its HTTP status so every sign-in and
// sign-up reason stays distinguishable on the wire.
func authStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
