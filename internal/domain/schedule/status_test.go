package schedule

import (
	"testing"
	"time"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
)

func TestCancelConfirmedReservation(t *testing.T) {
	r := &models.Reservation{Status: string(StatusConfirmed)}
	now := time.Now()

	if err := Cancel(r, now); err != nil {
		t.Fatalf("cancelar reserva confirmada: %v", err)
	}
	if r.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, esperado cancelada", r.Status)
	}
	if r.CancelledAt == nil || !r.CancelledAt.Equal(now) {
		t.Fatalf("cancelled_at não registrado")
	}
}

func TestCancelTwiceFails(t *testing.T) {
	r := &models.Reservation{Status: string(StatusCancelled)}
	err := Cancel(r, time.Now())
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancelamento duplo deveria falhar com invalid_state, veio %v", err)
	}
}

func TestCompleteConfirmedReservation(t *testing.T) {
	r := &models.Reservation{Status: string(StatusConfirmed)}
	now := time.Now()

	if err := Complete(r, now); err != nil {
		t.Fatalf("concluir reserva confirmada: %v", err)
	}
	if r.Status != string(StatusCompleted) {
		t.Fatalf("status = %q, esperado concluida", r.Status)
	}
	if r.CompletedAt == nil {
		t.Fatalf("completed_at não registrado")
	}
}

func TestCompleteCancelledFails(t *testing.T) {
	r := &models.Reservation{Status: string(StatusCancelled)}
	err := Complete(r, time.Now())
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("concluir reserva cancelada deveria falhar, veio %v", err)
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusConfirmed {
		t.Fatalf("status inicial = %q", InitialStatus())
	}
}
