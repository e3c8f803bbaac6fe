package schedule

import (
	"context"
	"testing"
	"time"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
)

func newCreateReservation(repo *fakeRepo) *CreateReservation {
	return NewCreateReservation(repo, nil, nil, nil, nil, time.Wednesday)
}

func baseInput() CreateReservationInput {
	return CreateReservationInput{
		BarberID:    1,
		ServiceID:   1,
		ClientName:  "João",
		ClientPhone: "11999990000",
		Date:        "2027-09-01", // quarta-feira, bem no futuro
		Time:        "09:00",
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	res, err := uc.Execute(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, esperado confirmada", res.Status)
	}
	if res.StartTime.Hour() != 9 || res.StartTime.Minute() != 0 {
		t.Fatalf("início = %v", res.StartTime)
	}
	if res.Client.Phone != "11999990000" {
		t.Fatalf("cliente não vinculado: %+v", res.Client)
	}
	if len(repo.reservations) != 1 {
		t.Fatalf("%d reservas gravadas", len(repo.reservations))
	}
}

func TestCreateReservationExactTimeConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("primeira reserva: %v", err)
	}

	in := baseInput()
	in.ClientPhone = "11888880000"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("mesmo horário deveria falhar com time_conflict, veio %v", err)
	}
}

// Horários diferentes no mesmo intervalo de serviço não colidem: o
// conflito é por coincidência exata de início.
func TestCreateReservationOverlapDoesNotConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("primeira reserva: %v", err)
	}

	in := baseInput()
	in.ClientPhone = "11888880000"
	in.Time = "09:30"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("09:30 com serviço de 1h às 09:00 deveria passar, veio %v", err)
	}
}

func TestCreateReservationTooSoon(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	loc := saoPaulo(t)
	soon := time.Now().In(loc).Add(30 * time.Minute)

	in := baseInput()
	in.Date = soon.Format("2006-01-02")
	in.Time = soon.Format("15:04")

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("antecedência de 30min deveria falhar com too_soon, veio %v", err)
	}
}

func TestCreateReservationStudentServiceWrongDay(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	in := baseInput()
	in.ServiceID = 2
	in.Date = "2027-09-02" // quinta-feira
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "student_service_wrong_day") {
		t.Fatalf("serviço de estudante fora da quarta deveria falhar, veio %v", err)
	}

	in.Date = "2027-09-01" // quarta-feira
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("serviço de estudante na quarta: %v", err)
	}
}

func TestCreateReservationInactiveBarber(t *testing.T) {
	repo := newFakeRepo()
	b := repo.barbers[1]
	b.Active = false
	repo.barbers[1] = b

	uc := newCreateReservation(repo)
	_, err := uc.Execute(context.Background(), baseInput())
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("barbeiro inativo deveria falhar, veio %v", err)
	}
}

func TestCreateReservationReusesClientByPhone(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateReservation(repo)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("primeira reserva: %v", err)
	}

	in := baseInput()
	in.ClientName = "João Silva"
	in.Time = "14:00"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("segunda reserva: %v", err)
	}

	if len(repo.clients) != 1 {
		t.Fatalf("%d clientes criados para o mesmo telefone", len(repo.clients))
	}
}
