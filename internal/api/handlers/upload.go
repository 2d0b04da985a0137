package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"docquiz/internal/extract"
	"docquiz/internal/models"

	"github.com/gin-gonic/gin"
)

// HandleUploadMaterial stages a material file in object storage and returns
// the key the client later passes to the generate endpoint as file_path.
func (h *Handler) HandleUploadMaterial(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		h.respondError(c, http.StatusUnauthorized, "User not authenticated", errors.New("user id missing from context"))
		return
	}
	if h.Storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "File storage unavailable", errors.New("R2 storage not configured"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}
	if fileHeader.Size == 0 {
		h.respondError(c, http.StatusBadRequest, "Uploaded file is empty", errors.New("zero-length upload"))
		return
	}

	// Reject unsupported types before paying for the upload.
	if !extract.Supported(fileHeader.Filename) {
		h.respondError(c, http.StatusBadRequest, "Unsupported file type",
			fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, filepath.Ext(fileHeader.Filename)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	objectKey, err := h.Storage.Upload(ctx, userID, filepath.Base(fileHeader.Filename), file)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to store file", err)
		return
	}

	log.Printf("INFO: User %s staged material %s", userID, objectKey)
	c.JSON(http.StatusOK, models.UploadResponse{FilePath: objectKey})
}
