package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lushlooksbeauty/studio-api/internal/storage"
)

const maxReferencePhotos = 5

type PhotosHandler struct {
	uploader *storage.Uploader
}

func NewPhotosHandler(uploader *storage.Uploader) *PhotosHandler {
	return &PhotosHandler{uploader: uploader}
}

// Upload accepts up to 5 reference photos from the booking form and
// returns the stored object keys to include in the booking request.
func (h *PhotosHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_multipart_form"})
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_photos"})
		return
	}
	if len(files) > maxReferencePhotos {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too_many_photos"})
		return
	}

	keys := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_photo"})
			return
		}

		key, err := h.uploader.Upload(c.Request.Context(), "photos", f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_photo"})
			return
		}

		keys = append(keys, key)
	}

	c.JSON(http.StatusCreated, gin.H{"photo_keys": keys})
}
