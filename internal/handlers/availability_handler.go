package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	db *gorm.DB

	salonUC  *ucAvailability.GetSalonSlots
	artistUC *ucAvailability.GetArtistSlots

	cache *cache.Availability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	salonUC *ucAvailability.GetSalonSlots,
	artistUC *ucAvailability.GetArtistSlots,
	availCache *cache.Availability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:       db,
		salonUC:  salonUC,
		artistUC: artistUC,
		cache:    availCache,
	}
}

// ForClient atende a página pública de agendamento do salão.
func (h *AvailabilityHandler) ForClient(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	h.respond(c, salon.ID)
}

// ForOwner atende a agenda autenticada do próprio salão.
func (h *AvailabilityHandler) ForOwner(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	h.respond(c, salonID)
}

func (h *AvailabilityHandler) respond(c *gin.Context, salonID uint) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	artistID, ok := optionalArtistID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// -------- Visão por profissional --------
	if artistID != nil {
		var artist models.User
		if err := h.db.
			Where("id = ? AND salon_id = ?", *artistID, salonID).
			First(&artist).Error; err != nil {

			httperr.NotFound(c, "artist_not_found", "Profissional não encontrado.")
			return
		}

		key := cache.ArtistKey(salonID, *artistID, dateStr)
		if slots, hit := h.cache.Get(ctx, key); hit {
			c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
			return
		}

		slots := h.artistUC.Execute(ctx, *artistID, date)
		h.cache.Set(ctx, key, slots)

		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	// -------- Visão do salão --------
	key := cache.SalonKey(salonID, dateStr)
	if slots, hit := h.cache.Get(ctx, key); hit {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	slots := h.salonUC.Execute(ctx, salonID, date)
	h.cache.Set(ctx, key, slots)

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}
