// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// parseIDParam reads the :id route parameter as a uuid.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// serviceErrorResponse maps service error kinds onto HTTP statuses.
func serviceErrorResponse(c *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundDetail)
	case errors.Is(err, services.ErrDuplicate):
		utils.ConflictResponse(c, "Duplicate record")
	case errors.Is(err, services.ErrMissingParameter),
		errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, "")
	}
}
