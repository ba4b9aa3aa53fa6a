package admin

import (
	"errors"
	"net/http"

	"portfolio/internal/middleware"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/setup", h.Setup)
		adminGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	adminGroup := protected.Group("/admin")
	{
		adminGroup.GET("/profile", h.Profile)
		adminGroup.PUT("/username", h.UpdateUsername)
		adminGroup.PUT("/password", h.UpdatePassword)
	}
}

// Setup provisions the administrator account once, gated by the setup key.
func (h *Handler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	admin, err := h.service.Setup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSetupKey):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Invalid setup key")
		case errors.Is(err, ErrAdminExists):
			response.Error(c, http.StatusConflict, "ADMIN_EXISTS", "Admin account already exists")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create admin account")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"admin": result.Admin,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	adminID := c.GetInt64(middleware.ContextAdminID)

	admin, err := h.service.Profile(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

func (h *Handler) UpdateUsername(c *gin.Context) {
	var req UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	adminID := c.GetInt64(middleware.ContextAdminID)

	admin, err := h.service.UpdateUsername(c.Request.Context(), adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "This username is already taken")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username must not be empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update username")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	adminID := c.GetInt64(middleware.ContextAdminID)

	if err := h.service.UpdatePassword(c.Request.Context(), adminID, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Current password is incorrect")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
