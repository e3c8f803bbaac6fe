package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// ListPublic devolve só os barbeiros ativos, para a vitrine.
func (h *BarberHandler) ListPublic(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Where("ativo = ?", true).Order("nome ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

// ListAdmin inclui os inativos.
func (h *BarberHandler) ListAdmin(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("nome ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

type BarberRequest struct {
	Name        string `json:"nome" binding:"required"`
	Specialties string `json:"especialidades"`
	AvatarURL   string `json:"avatar_url"`
	Active      *bool  `json:"ativo"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		Name:        req.Name,
		Specialties: req.Specialties,
		AvatarURL:   req.AvatarURL,
		Active:      true,
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber.Name = req.Name
	barber.Specialties = req.Specialties
	barber.AvatarURL = req.AvatarURL
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// Delete desativa o barbeiro. Nunca remove a linha: o histórico de
// reservas aponta para ela.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Model(&models.Barber{}).Where("id = ?", id).Update("ativo", false)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_deactivate_barber", "Erro ao desativar barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
