package schedule

import (
	"context"
	"testing"
	"time"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
)

func TestCancelReservation(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()
	id := seedReservation(repo, 1, time.Date(2026, 9, 2, 10, 0, 0, 0, loc))

	uc := NewCancelReservation(repo, nil, nil)

	res, err := uc.Execute(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q", res.Status)
	}

	// A linha continua na base, apenas com status trocado.
	stored, err := repo.GetReservation(context.Background(), id)
	if err != nil {
		t.Fatalf("reserva cancelada sumiu da base: %v", err)
	}
	if stored.Status != string(domain.StatusCancelled) || stored.CancelledAt == nil {
		t.Fatalf("persistência do cancelamento: %+v", stored)
	}
}

func TestCancelReservationTwice(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()
	id := seedReservation(repo, 1, time.Date(2026, 9, 2, 10, 0, 0, 0, loc))

	uc := NewCancelReservation(repo, nil, nil)
	if _, err := uc.Execute(context.Background(), 1, id); err != nil {
		t.Fatalf("primeiro cancelamento: %v", err)
	}

	_, err := uc.Execute(context.Background(), 1, id)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("segundo cancelamento deveria falhar com invalid_state, veio %v", err)
	}
}

func TestCompleteReservation(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()
	id := seedReservation(repo, 1, time.Date(2026, 9, 2, 10, 0, 0, 0, loc))

	uc := NewCompleteReservation(repo, nil)

	res, err := uc.Execute(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Status != string(domain.StatusCompleted) || res.CompletedAt == nil {
		t.Fatalf("conclusão: %+v", res)
	}
}

func TestCompleteCancelledReservation(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()
	id := seedReservation(repo, 1, time.Date(2026, 9, 2, 10, 0, 0, 0, loc))

	cancel := NewCancelReservation(repo, nil, nil)
	if _, err := cancel.Execute(context.Background(), 1, id); err != nil {
		t.Fatalf("cancelamento: %v", err)
	}

	complete := NewCompleteReservation(repo, nil)
	_, err := complete.Execute(context.Background(), 1, id)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("concluir reserva cancelada deveria falhar, veio %v", err)
	}
}
