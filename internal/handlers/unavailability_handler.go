package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/middleware"
	"github.com/navalha-studio/booking-api/internal/models"
	ucschedule "github.com/navalha-studio/booking-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type UnavailabilityHandler struct {
	db          *gorm.DB
	create      *ucschedule.CreateUnavailability
	updateGroup *ucschedule.UpdateUnavailabilityGroup
	repo        domain.Repository
}

func NewUnavailabilityHandler(
	db *gorm.DB,
	create *ucschedule.CreateUnavailability,
	updateGroup *ucschedule.UpdateUnavailabilityGroup,
	repo domain.Repository,
) *UnavailabilityHandler {
	return &UnavailabilityHandler{
		db:          db,
		create:      create,
		updateGroup: updateGroup,
		repo:        repo,
	}
}

// ======================================================
// REQUESTS — datas no formato "YYYY-MM-DD HH:MM:SS"
// ======================================================

type CreateUnavailabilityRequest struct {
	BarberID uint   `json:"barbeiro_id" binding:"required"`
	Start    string `json:"inicio" binding:"required"`
	End      string `json:"fim" binding:"required"`
	Type     string `json:"tipo"`
	Reason   string `json:"motivo"`
	AllDay   bool   `json:"dia_inteiro"`
	Repeat   string `json:"repetir"`
	Until    string `json:"repetir_ate"`
}

type UpdateUnavailabilityGroupRequest struct {
	BarberID uint   `json:"barbeiro_id" binding:"required"`
	Start    string `json:"inicio" binding:"required"`
	End      string `json:"fim" binding:"required"`
	Type     string `json:"tipo"`
	Reason   string `json:"motivo"`
	AllDay   bool   `json:"dia_inteiro"`
	Repeat   string `json:"repetir"`
	Until    string `json:"repetir_ate"`
}

// ======================================================
// CREATE — regra única ou recorrente
// ======================================================

func (h *UnavailabilityHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	shop, err := h.getShop(c)
	if err != nil {
		return
	}

	rule, ok := h.buildRule(c, shop, req.BarberID, req.Start, req.End, req.Type, req.Reason, req.AllDay, req.Repeat, req.Until)
	if !ok {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), &userID, rule)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_unavailability", "Erro ao criar indisponibilidade.")
		return
	}

	c.JSON(http.StatusCreated, out)
}

// ======================================================
// LIST — ?barbeiro=&de=&ate= (datas YYYY-MM-DD)
// ======================================================

func (h *UnavailabilityHandler) List(c *gin.Context) {
	barberID, ok := parseOptionalUint(c.Query("barbeiro"))
	if !ok {
		httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
		return
	}

	shop, err := h.getShop(c)
	if err != nil {
		return
	}

	var from, to time.Time
	if s := c.Query("de"); s != "" {
		if from, err = parseDateInShop(shop, s); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
	}
	if s := c.Query("ate"); s != "" {
		if to, err = parseDateInShop(shop, s); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		to = to.Add(24 * time.Hour)
	}

	blocks, err := h.repo.ListBlocks(c.Request.Context(), barberID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_unavailability", "Erro ao listar indisponibilidades.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// UPDATE GROUP — reescreve todas as linhas do grupo
// ======================================================

func (h *UnavailabilityHandler) UpdateGroup(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	groupID := c.Param("groupId")

	var req UpdateUnavailabilityGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	shop, err := h.getShop(c)
	if err != nil {
		return
	}

	start, err := parseDateTimeInShop(shop, req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	end, err := parseDateTimeInShop(shop, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	until, ok := h.parseUntil(c, shop, req.Until)
	if !ok {
		return
	}

	fields := domain.BlockGroupFields{
		BarberID:          req.BarberID,
		Type:              req.Type,
		Reason:            req.Reason,
		AllDay:            req.AllDay,
		StartTime:         start,
		EndTime:           end,
		Recurrence:        normalizeRepeat(req.Repeat),
		RecurrenceEndDate: until,
	}

	block, err := h.updateGroup.Execute(c.Request.Context(), &userID, groupID, fields)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_group", "Erro ao atualizar grupo.")
		return
	}

	c.JSON(http.StatusOK, block)
}

// ======================================================
// DELETE — remove uma ocorrência
// ======================================================

func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.repo.DeleteBlock(c.Request.Context(), id); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_unavailability", "Erro ao remover indisponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func (h *UnavailabilityHandler) getShop(c *gin.Context) (*models.Shop, error) {
	var shop models.Shop
	if err := h.db.Order("id ASC").First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configuração da barbearia não encontrada.")
		return nil, err
	}
	return &shop, nil
}

func (h *UnavailabilityHandler) buildRule(
	c *gin.Context,
	shop *models.Shop,
	barberID uint,
	startStr, endStr, blockType, reason string,
	allDay bool,
	repeat, untilStr string,
) (domain.Rule, bool) {

	start, err := parseDateTimeInShop(shop, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return domain.Rule{}, false
	}

	end, err := parseDateTimeInShop(shop, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return domain.Rule{}, false
	}

	until, ok := h.parseUntil(c, shop, untilStr)
	if !ok {
		return domain.Rule{}, false
	}

	if blockType == "" {
		blockType = models.BlockTypeOther
	}

	return domain.Rule{
		BarberID:    barberID,
		Start:       start,
		End:         end,
		Type:        blockType,
		Reason:      reason,
		AllDay:      allDay,
		Repeat:      normalizeRepeat(repeat),
		RepeatUntil: until,
	}, true
}

func (h *UnavailabilityHandler) parseUntil(
	c *gin.Context,
	shop *models.Shop,
	untilStr string,
) (*time.Time, bool) {

	if untilStr == "" {
		return nil, true
	}

	until, err := parseDateInShop(shop, untilStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_until", "Data final de repetição inválida.")
		return nil, false
	}

	return &until, true
}

func normalizeRepeat(repeat string) string {
	if repeat == "" {
		return domain.RepeatNone
	}
	return repeat
}
