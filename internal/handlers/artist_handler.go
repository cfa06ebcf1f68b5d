package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ArtistHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewArtistHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ArtistHandler {
	return &ArtistHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateArtistRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// --------- Handlers ---------

func (h *ArtistHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var artists []models.User
	if err := h.db.
		Where("salon_id = ? AND role = ?", salonID, "artist").
		Order("id ASC").
		Find(&artists).Error; err != nil {

		httperr.Internal(c, "failed_to_list_artists", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Já existe um usuário com esse e-mail.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	artist := models.User{
		SalonID:      salonID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "artist",
	}

	if err := h.db.Create(&artist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_artist", "Erro ao criar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "artist_created",
		Entity:   "user",
		EntityID: &artist.ID,
	})

	c.JSON(http.StatusCreated, artist)
}
