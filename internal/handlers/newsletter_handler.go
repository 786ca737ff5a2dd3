package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lushlooksbeauty/studio-api/internal/config"
	"github.com/lushlooksbeauty/studio-api/internal/httpresp"
	"github.com/lushlooksbeauty/studio-api/internal/mailer"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type NewsletterHandler struct {
	db     *gorm.DB
	mailer mailer.Mailer
	config *config.Config
	log    zerolog.Logger
}

func NewNewsletterHandler(
	db *gorm.DB,
	m mailer.Mailer,
	cfg *config.Config,
	log zerolog.Logger,
) *NewsletterHandler {
	return &NewsletterHandler{
		db:     db,
		mailer: m,
		config: cfg,
		log:    log,
	}
}

// --------- Requests ---------

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SendCampaignRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// --------- Public ---------

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	sub := models.NewsletterSubscription{
		Email:            email,
		UnsubscribeToken: uuid.NewString(),
		Active:           true,
	}

	// Re-subscribing reactivates the existing row; the token is kept
	// so previously sent unsubscribe links stay valid.
	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{"active": true}),
		}).
		Create(&sub).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "subscribed"})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_token"})
		return
	}

	res := h.db.
		Model(&models.NewsletterSubscription{}).
		Where("unsubscribe_token = ?", token).
		Update("active", false)

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_unsubscribe"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unsubscribed"})
}

// --------- Admin ---------

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	var subs []models.NewsletterSubscription
	if err := h.db.
		Where("active = true").
		Order("created_at DESC").
		Find(&subs).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_subscribers"})
		return
	}

	httpresp.List(c, subs)
}

// SendCampaign delivers one message to every active subscriber.
// Failures are counted and logged per recipient, not retried.
func (h *NewsletterHandler) SendCampaign(c *gin.Context) {
	var req SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var subs []models.NewsletterSubscription
	if err := h.db.Where("active = true").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_subscribers"})
		return
	}

	sent := 0
	failed := 0

	for _, sub := range subs {
		unsubscribe := fmt.Sprintf(
			"%s/api/public/newsletter/unsubscribe?token=%s",
			h.config.PublicBaseURL,
			sub.UnsubscribeToken,
		)
		body := fmt.Sprintf(
			`%s<br><br><a href="%s">Unsubscribe</a>`,
			req.Body,
			unsubscribe,
		)

		if err := h.mailer.Send(c.Request.Context(), sub.Email, req.Subject, body); err != nil {
			failed++
			continue
		}
		sent++
	}

	h.log.Info().
		Int("sent", sent).
		Int("failed", failed).
		Str("subject", req.Subject).
		Msg("newsletter campaign finished")

	c.JSON(http.StatusOK, gin.H{
		"sent":   sent,
		"failed": failed,
	})
}
