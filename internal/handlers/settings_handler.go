package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	"github.com/lushlooksbeauty/studio-api/internal/middleware"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewSettingsHandler(db *gorm.DB, auditSink audit.Sink) *SettingsHandler {
	return &SettingsHandler{db: db, audit: auditSink}
}

type UpdateSettingsRequest struct {
	StudioName *string `json:"studio_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	HeroText   *string `json:"hero_text,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.StudioName != nil {
		settings.StudioName = *req.StudioName
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.HeroText != nil {
		settings.HeroText = *req.HeroText
	}
	if req.Instagram != nil {
		settings.Instagram = *req.Instagram
	}

	if err := h.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_settings"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "settings_updated",
		Entity:   "site_settings",
		EntityID: &settings.ID,
	})

	c.JSON(http.StatusOK, settings)
}
