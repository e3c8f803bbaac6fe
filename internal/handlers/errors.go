package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/navalha-studio/booking-api/internal/httperr"
)

// Mensagens padrão (PT-BR) para os códigos de negócio dos use cases.
var businessMessages = map[string]string{
	"invalid_date_or_time":      "Data ou hora inválida.",
	"invalid_interval":          "Intervalo inválido.",
	"invalid_repeat":            "Tipo de repetição inválido.",
	"too_soon":                  "Horário inválido.",
	"barber_not_found":          "Barbeiro não encontrado.",
	"service_not_found":         "Serviço não encontrado.",
	"student_service_wrong_day": "Serviço de estudante não disponível neste dia.",
	"time_conflict":             "Conflito de horário.",
	"reservation_not_found":     "Reserva não encontrada.",
	"invalid_state":             "Reserva não permite esta operação.",
	"group_not_found":           "Grupo de recorrência não encontrado.",
	"block_not_found":           "Bloqueio não encontrado.",
}

func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.IsAnyBusiness(err)
	if !ok {
		return false
	}

	msg, known := businessMessages[code]
	if !known {
		msg = "Operação inválida."
	}

	switch code {
	case "reservation_not_found", "group_not_found", "block_not_found":
		httperr.NotFound(c, code, msg)
	case "time_conflict":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}

	return true
}
