package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List pagina os registros mais recentes, com filtros opcionais por
// ação e entidade.
func (h *AuditLogsHandler) List(c *gin.Context) {
	query := h.db.Model(&models.AuditLog{}).Order("id DESC")

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	var logs []models.AuditLog
	err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar registros de auditoria.")
		return
	}

	httpresp.List(c, logs)
}
