package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/httpresp"
	"github.com/navalha-studio/booking-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Notification{}).Order("id DESC").Limit(100)

	if c.Query("lida") == "false" {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_mark_read", "Erro ao marcar notificação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Stream mantém uma conexão SSE aberta e empurra notificações novas
// conforme elas aparecem na tabela. O cursor avança pelo id, então um
// cliente que reconecta recebe só o que foi criado depois da conexão.
func (h *NotificationHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		httperr.Internal(c, "streaming_unsupported", "Streaming não suportado.")
		return
	}

	var lastID uint
	h.db.Model(&models.Notification{}).Select("COALESCE(MAX(id), 0)").Scan(&lastID)

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	fmt.Fprint(c.Writer, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			var pending []models.Notification
			err := h.db.Where("id > ?", lastID).Order("id ASC").Limit(50).Find(&pending).Error
			if err != nil {
				continue
			}

			for _, n := range pending {
				payload, err := json.Marshal(n)
				if err != nil {
					continue
				}
				fmt.Fprintf(c.Writer, "event: notification\ndata: %s\n\n", payload)
				lastID = n.ID
			}

			if len(pending) > 0 {
				flusher.Flush()
			}
		}
	}
}
