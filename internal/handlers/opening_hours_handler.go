package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type OpeningHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewOpeningHoursHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	availCache *cache.Availability,
) *OpeningHoursHandler {
	return &OpeningHoursHandler{
		db:    db,
		audit: dispatcher,
		cache: availCache,
	}
}

// --------------------------------------------------
// Salão
// --------------------------------------------------

func (h *OpeningHoursHandler) GetSalonHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var hours models.OpeningHours
	err := h.db.
		Where("salon_id = ? AND artist_id IS NULL", salonID).
		First(&hours).Error

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"hours": gin.H{}})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": json.RawMessage(hours.Hours)})
}

func (h *OpeningHoursHandler) UpdateSalonHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	h.putHours(c, salonID, userID, nil)
}

// --------------------------------------------------
// Profissional
// --------------------------------------------------

func (h *OpeningHoursHandler) GetArtistHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	artist, ok := h.loadArtist(c, salonID)
	if !ok {
		return
	}

	var hours models.OpeningHours
	err := h.db.
		Where("artist_id = ?", artist.ID).
		First(&hours).Error

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"hours": gin.H{}})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": json.RawMessage(hours.Hours)})
}

func (h *OpeningHoursHandler) UpdateArtistHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	artist, ok := h.loadArtist(c, salonID)
	if !ok {
		return
	}

	h.putHours(c, salonID, userID, &artist.ID)
}

// --------------------------------------------------
// Internos
// --------------------------------------------------

func (h *OpeningHoursHandler) loadArtist(c *gin.Context, salonID uint) (*models.User, bool) {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_artist_id", "Profissional inválido.")
		return nil, false
	}

	var artist models.User
	if err := h.db.
		Where("id = ? AND salon_id = ?", artistID, salonID).
		First(&artist).Error; err != nil {

		httperr.NotFound(c, "artist_not_found", "Profissional não encontrado.")
		return nil, false
	}

	return &artist, true
}

// putHours valida o documento semanal e faz upsert da linha do recurso.
func (h *OpeningHoursHandler) putHours(c *gin.Context, salonID, userID uint, artistID *uint) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição ilegível.")
		return
	}

	if err := schedule.ValidateWeek(raw); err != nil {
		httperr.BadRequest(c, "invalid_schedule", err.Error())
		return
	}

	q := h.db.Where("salon_id = ?", salonID)
	if artistID == nil {
		q = q.Where("artist_id IS NULL")
	} else {
		q = q.Where("artist_id = ?", *artistID)
	}

	var hours models.OpeningHours
	switch err := q.First(&hours).Error; err {
	case nil:
		hours.Hours = string(raw)
		if err := h.db.Save(&hours).Error; err != nil {
			httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar expediente.")
			return
		}
	case gorm.ErrRecordNotFound:
		hours = models.OpeningHours{
			SalonID:  salonID,
			ArtistID: artistID,
			Hours:    string(raw),
		}
		if err := h.db.Create(&hours).Error; err != nil {
			httperr.Internal(c, "failed_to_save_hours", "Erro ao salvar expediente.")
			return
		}
	default:
		httperr.Internal(c, "failed_to_get_hours", "Erro ao buscar expediente.")
		return
	}

	h.cache.InvalidateSalon(c.Request.Context(), salonID)

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "opening_hours_updated",
		Entity:   "opening_hours",
		EntityID: &hours.ID,
	})

	c.JSON(http.StatusOK, gin.H{"hours": json.RawMessage(hours.Hours)})
}
