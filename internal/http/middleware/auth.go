package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urbansathi/backend/internal/auth"
	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/models"
)

// UserKey is the gin context key holding the authenticated user.
const UserKey = "current_user"

// Auth resolves the bearer token to a user row. Token issuance belongs to
// the identity service; this only trusts its HS256 signature and subject.
func Auth(secret string, store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		phone, err := auth.ParsePhone(token, secret)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := store.GetUserByPhone(c.Request.Context(), phone)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "Could not validate credentials",
		},
	})
}
