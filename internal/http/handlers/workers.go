package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) WorkersList(c *gin.Context) {
	workers, err := h.Service.ListWorkers(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list workers", err.Error())
		return
	}
	c.JSON(http.StatusOK, workers)
}
