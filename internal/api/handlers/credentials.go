package handlers

import (
	"errors"
	"net/http"

	"voltflow-backend/internal/services"
	"voltflow-backend/pkg/biometric"
	"voltflow-backend/pkg/credentials"
	"voltflow-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// biometricProofHeader carries the device attestation for gated reads.
const biometricProofHeader = "X-Biometric-Proof"

type CredentialHandler struct {
	credentialService *services.CredentialService
	validator         *validator.Validate
}

func NewCredentialHandler(credentialService *services.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		credentialService: credentialService,
		validator:         validator.New(),
	}
}

// GetCapability reports the device biometric class.
func (h *CredentialHandler) GetCapability(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Biometric capability retrieved", gin.H{
		"capability": h.credentialService.Capability(),
	})
}

// SaveCredential stores a new account entry. Saving over an existing
// account is rejected; use update instead.
func (h *CredentialHandler) SaveCredential(c *gin.Context) {
	var req struct {
		Account string `json:"account" validate:"required"`
		Secret  string `json:"secret" validate:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := h.credentialService.Save(c.Request.Context(), req.Account, req.Secret); err != nil {
		utils.ErrorResponse(c, credentialStatus(err), "Failed to save credential", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Credential saved", nil)
}

// UpdateCredential overwrites an existing account entry.
func (h *CredentialHandler) UpdateCredential(c *gin.Context) {
	var req struct {
		Secret string `json:"secret" validate:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := h.credentialService.Update(c.Request.Context(), c.Param("account"), req.Secret); err != nil {
		utils.ErrorResponse(c, credentialStatus(err), "Failed to update credential", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Credential updated", nil)
}

// GetCredential returns the stored secret for an account. Password
// accounts require the biometric proof header on capable devices.
func (h *CredentialHandler) GetCredential(c *gin.Context) {
	secret, err := h.credentialService.Retrieve(c.Request.Context(), c.Param("account"), c.GetHeader(biometricProofHeader))
	if err != nil {
		utils.ErrorResponse(c, credentialStatus(err), "Failed to retrieve credential", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Credential retrieved", gin.H{"secret": secret})
}

// DeleteCredential removes an account entry.
func (h *CredentialHandler) DeleteCredential(c *gin.Context) {
	if err := h.credentialService.Delete(c.Request.Context(), c.Param("account")); err != nil {
		utils.ErrorResponse(c, credentialStatus(err), "Failed to delete credential", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Credential deleted", nil)
}

func credentialStatus(err error) int {
	switch {
	case errors.Is(err, credentials.ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, credentials.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, biometric.ErrChallengeFailed):
		return http.StatusUnauthorized
	case errors.Is(err, biometric.ErrNotAvailable):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
