package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/service"
	"github.com/urbansathi/backend/internal/storage"
)

type Handler struct {
	Store          *db.Store
	Service        *service.ComplaintService
	Uploader       storage.Uploader
	Validator      *validator.Validate
	Logger         zerolog.Logger
	MaxUploadBytes int64
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation and state conflicts are 400, duplicate complaints are 409 with
// the blocking id, unknown records are 404, everything else is 500.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var validationErr service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message, nil)
		return
	}

	var conflictErr service.ConflictError
	if errors.As(err, &conflictErr) {
		if conflictErr.Code == service.CodeDuplicateComplaint {
			writeError(c, http.StatusConflict, conflictErr.Code, conflictErr.Message,
				gin.H{"existing_id": conflictErr.ExistingID})
			return
		}
		writeError(c, http.StatusBadRequest, conflictErr.Code, conflictErr.Message, nil)
		return
	}

	var notFoundErr service.NotFoundError
	if errors.As(err, &notFoundErr) {
		writeError(c, http.StatusNotFound, "NOT_FOUND", notFoundErr.Message, nil)
		return
	}

	h.Logger.Error().Err(err).Msg("internal error")
	writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error", nil)
}
