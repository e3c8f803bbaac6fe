package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/middleware"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

// Me devolve o usuário autenticado, sem o hash de senha.
func (h *ShopHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ShopHandler) Get(c *gin.Context) {
	var shop models.Shop
	if err := h.db.Order("id ASC").First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configuração da barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

type UpdateShopRequest struct {
	Name              *string `json:"nome"`
	Phone             *string `json:"telefone"`
	Address           *string `json:"endereco"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *ShopHandler) Update(c *gin.Context) {
	var shop models.Shop
	if err := h.db.Order("id ASC").First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configuração da barbearia não encontrada.")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima inválida.")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Erro ao atualizar a barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
