package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/middleware"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type UnavailableDatesHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewUnavailableDatesHandler(db *gorm.DB, auditSink audit.Sink) *UnavailableDatesHandler {
	return &UnavailableDatesHandler{db: db, audit: auditSink}
}

type UpsertUnavailableDateRequest struct {
	Date      string   `json:"date" binding:"required"` // YYYY-MM-DD
	TimeSlots []string `json:"time_slots"`
}

func (h *UnavailableDatesHandler) List(c *gin.Context) {
	from := c.DefaultQuery("from", time.Now().Format(domain.DateLayout))
	to := c.DefaultQuery("to", time.Now().AddDate(0, 3, 0).Format(domain.DateLayout))

	var dates []models.UnavailableDate
	if err := h.db.
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&dates).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_unavailable_dates"})
		return
	}

	c.JSON(http.StatusOK, dates)
}

// Upsert replaces the blocked-slot set for one date. An empty slot
// list clears the override.
func (h *UnavailableDatesHandler) Upsert(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertUnavailableDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	// Only slots the template offers for this weekday can be blocked.
	template := make(map[string]struct{})
	for _, s := range domain.SlotsForWeekday(date) {
		template[s] = struct{}{}
	}
	for _, s := range req.TimeSlots {
		if _, ok := template[s]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "slot_not_in_template",
				"slot":  s,
			})
			return
		}
	}

	if len(req.TimeSlots) == 0 {
		if err := h.db.Where("date = ?", req.Date).
			Delete(&models.UnavailableDate{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_unavailable_date"})
			return
		}

		h.audit.Dispatch(audit.Event{
			UserID: &adminID,
			Action: "unavailable_date_cleared",
			Entity: "unavailable_date",
			Metadata: map[string]any{
				"date": req.Date,
			},
		})

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	record := models.UnavailableDate{
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"time_slots", "updated_at"}),
		}).
		Create(&record).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_unavailable_date"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "unavailable_date_upserted",
		Entity:   "unavailable_date",
		EntityID: &record.ID,
		Metadata: map[string]any{
			"date":       req.Date,
			"time_slots": req.TimeSlots,
		},
	})

	c.JSON(http.StatusOK, record)
}
