package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List suporta busca por nome ou telefone via ?q=.
func (h *ClientHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Client{}).Order("nome ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("nome ILIKE ? OR telefone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Limit(200).Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}
