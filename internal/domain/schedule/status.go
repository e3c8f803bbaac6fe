package schedule

import "github.com/navalha-studio/booking-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
	StatusCompleted Status = "concluida"
)

// ===============================
// Validations
// ===============================

// CanCancel define se uma reserva pode ser cancelada
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se uma reserva pode ser concluída
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
