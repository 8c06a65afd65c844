package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbansathi/backend/internal/storage"
)

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {}, "image/png": {}, "image/webp": {}, "image/gif": {},
	"audio/mpeg": {}, "audio/mp4": {}, "audio/wav": {}, "audio/ogg": {},
	"audio/m4a": {}, "audio/x-m4a": {},
}

// @Summary Upload complaint media
// @Description Proxies the file to blob storage and returns its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]any
// @Router /upload/ [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if _, ok := allowedUploadTypes[contentType]; !ok {
		writeError(c, http.StatusBadRequest, "UNSUPPORTED_TYPE",
			fmt.Sprintf("Unsupported file type: %s", contentType), nil)
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		writeError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File too large. Max allowed: %d bytes", h.MaxUploadBytes), nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read file", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.MaxUploadBytes+1))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read file", err.Error())
		return
	}
	if int64(len(data)) > h.MaxUploadBytes {
		writeError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File too large. Max allowed: %d bytes", h.MaxUploadBytes), nil)
		return
	}

	url, err := h.Uploader.Upload(c.Request.Context(), storage.ObjectPath(fileHeader.Filename), contentType, data)
	if err != nil {
		h.Logger.Error().Err(err).Msg("blob upload failed")
		writeError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Upload failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
