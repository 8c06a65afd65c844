package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urbansathi/backend/internal/http/middleware"
	"github.com/urbansathi/backend/internal/service"
)

type CreateComplaintRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	ImageURL    string   `json:"image_url" validate:"required"`
	VoiceURL    *string  `json:"voice_url"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Department  string   `json:"department" validate:"required"`
	Subcategory string   `json:"subcategory" validate:"required"`
	ForceCreate bool     `json:"force_create"`
}

// @Summary Submit a complaint
// @Description Creates a complaint unless an open duplicate exists within 50 m; force_create overrides the gate
// @Tags complaints
// @Accept json
// @Produce json
// @Success 201 {object} models.Complaint
// @Failure 409 {object} map[string]any
// @Router /complaints/ [post]
func (h *Handler) CreateComplaint(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), user, service.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VoiceURL:    req.VoiceURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Department:  req.Department,
		Subcategory: req.Subcategory,
		ForceCreate: req.ForceCreate,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ComplaintsList(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list complaints", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) MyComplaints(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}
	items, err := h.Service.ListByReporter(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list complaints", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

type UpdateStatusRequest struct {
	Status        *string `json:"status"`
	EstimatedTime *string `json:"estimated_time"`
}

// @Summary Update complaint status
// @Description Administrative status/ETA patch; status gates vote eligibility
// @Tags complaints
// @Accept json
// @Produce json
// @Success 200 {object} models.Complaint
// @Router /complaints/{id}/status [patch]
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	id, err := complaintID(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid complaint id", nil)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), id, req.Status, req.EstimatedTime)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}
	id, err := complaintID(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid complaint id", nil)
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	if err := h.Service.SubmitFeedback(c.Request.Context(), user, id, req.Feedback, req.Rating); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Feedback submitted"})
}

func complaintID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
