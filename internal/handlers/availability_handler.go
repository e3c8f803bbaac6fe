package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
	ucschedule "github.com/navalha-studio/booking-api/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	slots *ucschedule.GetAvailableSlots
}

func NewAvailabilityHandler(
	db *gorm.DB,
	slots *ucschedule.GetAvailableSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:    db,
		slots: slots,
	}
}

// GET /horarios-disponiveis?data=YYYY-MM-DD&barbeiro=ID
func (h *AvailabilityHandler) Get(c *gin.Context) {
	dateStr := c.Query("data")
	barberStr := c.Query("barbeiro")

	if dateStr == "" || barberStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e barbeiro obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
		return
	}

	var shop models.Shop
	if err := h.db.Order("id ASC").First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configuração da barbearia não encontrada.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     dateStr,
		"barbeiro": barberID,
		"horarios": slots,
	})
}
