// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownUser):
			utils.FailureResponse(c, http.StatusBadRequest, "Invalid username")
		case errors.Is(err, services.ErrWrongPassword):
			utils.FailureResponse(c, http.StatusBadRequest, "Invalid password")
		case errors.Is(err, services.ErrInvalidInput):
			utils.FailureResponse(c, http.StatusBadRequest, "Invalid request body")
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status": "Success",
		"token":  token.Key,
	})
}

// POST /users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicate):
			utils.FailureResponse(c, http.StatusBadRequest, "Duplicate username")
		case errors.Is(err, services.ErrInvalidInput):
			utils.FailureResponse(c, http.StatusBadRequest, "Invalid request body")
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	// Echo the accepted fields, never the credential
	utils.SuccessResponse(c, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

// POST /api-token-auth/
func (h *AuthHandler) ObtainAuthToken(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Unable to log in with provided credentials.")
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		utils.BadRequestResponse(c, "Unable to log in with provided credentials.")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": token.Key,
	})
}

// GET /users
func (h *AuthHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.authService.ListUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, users)
}

// GET /users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, user)
}
