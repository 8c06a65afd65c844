package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbansathi/backend/internal/http/middleware"
)

func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}
	c.JSON(http.StatusOK, user)
}
