package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbansathi/backend/internal/http/middleware"
)

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required"`
}

// @Summary Vote on a complaint
// @Description One vote per user per complaint while the complaint is open
// @Tags votes
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /complaints/{id}/vote [post]
func (h *Handler) CastVote(c *gin.Context) {
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

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	updated, err := h.Service.CastVote(c.Request.Context(), user, id, req.VoteType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"yes_votes": updated.YesVotes,
		"no_votes":  updated.NoVotes,
		"idk_votes": updated.IdkVotes,
	})
}

func (h *Handler) MyVotes(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}
	ids, err := h.Service.VotedComplaintIDs(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list votes", err.Error())
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"voted_complaint_ids": ids})
}
