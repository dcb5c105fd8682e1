// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// AuthRequired accepts the standing token from the Authorization header.
// The token must both carry a valid signature and still exist in the store.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := TokenFromHeader(c)
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Missing Authorization Token",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid Authorization Token",
			})
			c.Abort()
			return
		}

		var token models.AuthToken
		if err := db.First(&token, "key = ?", key).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid Authorization Token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// TokenFromHeader extracts the raw token key from the Authorization header,
// tolerating an optional "Bearer" or "Token" prefix.
func TokenFromHeader(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && (parts[0] == "Bearer" || parts[0] == "Token") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
