package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
	ucBlock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/block"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BlockHandler struct {
	createUC *ucBlock.CreateBlock
	updateUC *ucBlock.UpdateBlock
	deleteUC *ucBlock.DeleteBlock
	listUC   *ucBlock.ListBlocks
	checkUC  *ucAvailability.CheckRange

	cache *cache.Availability
}

func NewBlockHandler(
	createUC *ucBlock.CreateBlock,
	updateUC *ucBlock.UpdateBlock,
	deleteUC *ucBlock.DeleteBlock,
	listUC *ucBlock.ListBlocks,
	checkUC *ucAvailability.CheckRange,
	availCache *cache.Availability,
) *BlockHandler {
	return &BlockHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		checkUC:  checkUC,
		cache:    availCache,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBlockRequest struct {
	ArtistID *uint   `json:"artist_id"`
	Start    string  `json:"start" binding:"required"`
	End      string  `json:"end" binding:"required"`
	Reason   *string `json:"reason"`
}

type UpdateBlockRequest struct {
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

////////////////////////////////////////////////////////
// CRUD
////////////////////////////////////////////////////////

func (h *BlockHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	artistID, ok := optionalArtistID(c)
	if !ok {
		return
	}

	blocks, err := h.listUC.Execute(c.Request.Context(), salonID, artistID)
	if err != nil {
		h.mapErrors(c, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	// artist_id ausente ou zero = bloqueio do salão inteiro
	artistID := req.ArtistID
	if artistID != nil && *artistID == 0 {
		artistID = nil
	}

	blk, err := h.createUC.Execute(c.Request.Context(), ucBlock.CreateBlockInput{
		SalonID:  salonID,
		UserID:   userID,
		ArtistID: artistID,
		Start:    req.Start,
		End:      req.End,
		Reason:   req.Reason,
	})
	if err != nil {
		h.mapErrors(c, err)
		return
	}

	h.cache.InvalidateSalon(c.Request.Context(), salonID)

	httpresp.Created(c, blk)
}

func (h *BlockHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Bloqueio inválido.")
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	in := ucBlock.UpdateBlockInput{
		Start: req.Start,
		End:   req.End,
	}

	// reason vazio limpa o motivo; reason preenchido substitui
	if req.Reason != nil {
		if *req.Reason == "" {
			in.ClearReason = true
		} else {
			in.Reason = req.Reason
		}
	}

	blk, err := h.updateUC.Execute(
		c.Request.Context(),
		salonID,
		userID,
		uint(blockID),
		in,
	)
	if err != nil {
		h.mapErrors(c, err)
		return
	}

	h.cache.InvalidateSalon(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, blk)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	blockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Bloqueio inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), salonID, userID, uint(blockID)); err != nil {
		h.mapErrors(c, err)
		return
	}

	h.cache.InvalidateSalon(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

////////////////////////////////////////////////////////
// CHECK (intervalo bloqueado?)
////////////////////////////////////////////////////////

func (h *BlockHandler) Check(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "Início e fim são obrigatórios.")
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Início inválido.")
		return
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "Fim inválido.")
		return
	}

	artistID, ok := optionalArtistID(c)
	if !ok {
		return
	}

	blocked, err := h.checkUC.Execute(c.Request.Context(), ucAvailability.CheckRangeInput{
		SalonID:  salonID,
		ArtistID: artistID,
		Start:    start,
		End:      end,
	})
	if err != nil {
		httperr.Internal(c, "check_failed", "Erro ao consultar bloqueios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked": blocked})
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

func optionalArtistID(c *gin.Context) (*uint, bool) {
	raw := c.Query("artist_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_artist_id", "Profissional inválido.")
		return nil, false
	}

	v := uint(id)
	return &v, true
}

func (h *BlockHandler) mapErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "block_not_found":
		httperr.NotFound(c, code, "Bloqueio não encontrado.")
	case "artist_not_found":
		httperr.BadRequest(c, code, "Profissional inválido.")
	case "missing_range":
		httperr.BadRequest(c, code, "Início e fim são obrigatórios.")
	case "invalid_start":
		httperr.BadRequest(c, code, "Início inválido.")
	case "invalid_end":
		httperr.BadRequest(c, code, "Fim inválido.")
	case "invalid_range":
		httperr.BadRequest(c, code, "Início deve ser estritamente antes do fim.")
	default:
		httperr.Internal(c, code, "Erro interno.")
	}
}
