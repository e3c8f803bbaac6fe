package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/middleware"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/payment"
	ucschedule "github.com/navalha-studio/booking-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db       *gorm.DB
	create   *ucschedule.CreateReservation
	cancel   *ucschedule.CancelReservation
	complete *ucschedule.CompleteReservation
	list     *ucschedule.ListReservations
	deposits *payment.DepositClient
}

func NewReservationHandler(
	db *gorm.DB,
	create *ucschedule.CreateReservation,
	cancel *ucschedule.CancelReservation,
	complete *ucschedule.CompleteReservation,
	list *ucschedule.ListReservations,
	deposits *payment.DepositClient,
) *ReservationHandler {
	return &ReservationHandler{
		db:       db,
		create:   create,
		cancel:   cancel,
		complete: complete,
		list:     list,
		deposits: deposits,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	BarberID    uint   `json:"barbeiro_id" binding:"required"`
	ServiceID   uint   `json:"servico_id" binding:"required"`
	ClientName  string `json:"cliente_nome" binding:"required"`
	ClientPhone string `json:"cliente_telefone" binding:"required"`
	ClientEmail string `json:"cliente_email"`
	Date        string `json:"data" binding:"required"` // YYYY-MM-DD
	Time        string `json:"hora" binding:"required"` // HH:mm
	Comment     string `json:"comentario"`
	PrivateNote string `json:"observacao_interna"`
}

type UpdateReservationRequest struct {
	Status      *string `json:"status"`
	PrivateNote *string `json:"observacao_interna"`
}

// ======================================================
// CREATE (público e painel)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucschedule.CreateReservationInput{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
		Comment:     req.Comment,
	}

	// Observação interna só entra quando criado pelo painel.
	if userIDVal, ok := c.Get(middleware.ContextUserID); ok {
		userID := userIDVal.(uint)
		in.AdminUserID = &userID
		in.PrivateNote = req.PrivateNote
	}

	res, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// LIST (painel): ?data=YYYY-MM-DD ou ?ano=&mes=
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	barberID, ok := parseOptionalUint(c.Query("barbeiro"))
	if !ok {
		httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
		return
	}

	if dateStr := c.Query("data"); dateStr != "" {
		h.listByDate(c, barberID, dateStr)
		return
	}

	yearStr := c.Query("ano")
	monthStr := c.Query("mes")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_params", "Informe data ou ano e mês.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	reservations, err := h.list.ByMonth(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) listByDate(c *gin.Context, barberID uint, dateStr string) {
	var shop models.Shop
	if err := h.db.Order("id ASC").First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configuração da barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	reservations, err := h.list.ByDate(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// CONSULTA DO CLIENTE (público): ?telefone=
// ======================================================

func (h *ReservationHandler) Consult(c *gin.Context) {
	phone := c.Query("telefone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	var client models.Client
	if err := h.db.Where("telefone = ?", phone).First(&client).Error; err != nil {
		// Sem cadastro ainda: lista vazia, não erro.
		httpresp.List(c, []models.Reservation{})
		return
	}

	var reservations []models.Reservation
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Where("cliente_id = ?", client.ID).
		Order("start_time DESC").
		Limit(20).
		Find(&reservations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// UPDATE (painel): transição de status e observação
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != nil {
		h.transition(c, userID, id, *req.Status, req.PrivateNote)
		return
	}

	if req.PrivateNote == nil {
		httperr.BadRequest(c, "empty_update", "Nada para atualizar.")
		return
	}

	var res models.Reservation
	if err := h.db.First(&res, id).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return
	}

	res.PrivateNote = *req.PrivateNote
	if err := h.db.Save(&res).Error; err != nil {
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar reserva.")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) transition(
	c *gin.Context,
	userID uint,
	id uint,
	status string,
	note *string,
) {
	var (
		res *models.Reservation
		err error
	)

	switch status {
	case "cancelada":
		res, err = h.cancel.Execute(c.Request.Context(), userID, id)
	case "concluida":
		res, err = h.complete.Execute(c.Request.Context(), userID, id)
	default:
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar reserva.")
		return
	}

	if note != nil {
		res.PrivateNote = *note
		h.db.Save(res)
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// DELETE (painel) — reservas nunca são apagadas, só canceladas
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_reservation", "Erro ao cancelar reserva.")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// SINAL (painel): link de pagamento do depósito
// ======================================================

func (h *ReservationHandler) CreateDeposit(c *gin.Context) {
	if !h.deposits.Enabled() {
		httperr.BadRequest(c, "payments_disabled", "Pagamentos não configurados.")
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var res models.Reservation
	if err := h.db.Preload("Service").First(&res, id).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return
	}

	link, err := h.deposits.CreateDepositPreference(c.Request.Context(), &res, &res.Service)
	if err != nil {
		httperr.Internal(c, "failed_to_create_deposit", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reserva_id":   res.ID,
		"payment_link": link,
	})
}

// ======================================================
// HELPERS
// ======================================================

func parsePathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func parseOptionalUint(s string) (uint, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
