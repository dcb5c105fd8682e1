// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetailResponse is the error body every failing endpoint returns.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// StatusDetailResponse is the failure body of the auth endpoints.
type StatusDetailResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, DetailResponse{Detail: detail})
}

func BadRequestResponse(c *gin.Context, detail string) {
	ErrorResponse(c, http.StatusBadRequest, detail)
}

func NotFoundResponse(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Not found."
	}
	ErrorResponse(c, http.StatusNotFound, detail)
}

func ConflictResponse(c *gin.Context, detail string) {
	ErrorResponse(c, http.StatusConflict, detail)
}

func UnauthorizedResponse(c *gin.Context, detail string) {
	ErrorResponse(c, http.StatusUnauthorized, detail)
}

func InternalErrorResponse(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, detail)
}

// FailureResponse emits the {status, detail} body the auth endpoints use.
func FailureResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, StatusDetailResponse{Status: "Failure", Detail: detail})
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}
