package schedule

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/navalha-studio/booking-api/internal/httperr"
)

func TestGetAvailableSlotsSundayEmpty(t *testing.T) {
	loc := saoPaulo(t)
	uc := NewGetAvailableSlots(newFakeRepo(), nil)

	slots, err := uc.Execute(context.Background(), 1, time.Date(2026, 9, 6, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("domingo deveria ser vazio, veio %v", slots)
	}
}

func TestGetAvailableSlotsFiltersExactStartsOnly(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()

	// 10:00 reservada; 09:30 não coincide com slot algum e não bloqueia nada.
	seedReservation(repo, 1, time.Date(2026, 9, 2, 10, 0, 0, 0, loc))
	seedReservation(repo, 1, time.Date(2026, 9, 2, 9, 30, 0, 0, loc))

	uc := NewGetAvailableSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), 1, time.Date(2026, 9, 2, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []string{"09:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots = %v, esperado %v", slots, want)
	}
}

// Leituras chegam do driver no fuso do servidor; o slot reservado tem de
// sumir mesmo quando o banco devolve o início em UTC.
func TestGetAvailableSlotsFiltersUTCStoredStarts(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()

	// 09:00 em São Paulo, armazenada/lida como 12:00Z.
	seedReservation(repo, 1, time.Date(2026, 9, 2, 9, 0, 0, 0, loc).UTC())

	uc := NewGetAvailableSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), 1, time.Date(2026, 9, 2, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range slots {
		if s == "09:00" {
			t.Fatalf("slot 09:00 continua livre com reserva lida em UTC: %v", slots)
		}
	}
}

func TestGetAvailableSlotsInactiveBarber(t *testing.T) {
	loc := saoPaulo(t)
	repo := newFakeRepo()
	b := repo.barbers[1]
	b.Active = false
	repo.barbers[1] = b

	uc := NewGetAvailableSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), 1, time.Date(2026, 9, 2, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("barbeiro inativo deveria devolver vazio, veio %v", slots)
	}
}

func TestGetAvailableSlotsUnknownBarber(t *testing.T) {
	loc := saoPaulo(t)
	uc := NewGetAvailableSlots(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 99, time.Date(2026, 9, 2, 0, 0, 0, 0, loc))
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("barbeiro inexistente deveria falhar, veio %v", err)
	}
}
