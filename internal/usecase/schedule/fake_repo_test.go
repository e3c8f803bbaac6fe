package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/models"
)

// fakeRepo guarda tudo em memória, com os mesmos predicados que a
// implementação gorm usa.
type fakeRepo struct {
	shop     models.Shop
	barbers  map[uint]models.Barber
	services map[uint]models.Service
	clients  []models.Client

	reservations []models.Reservation
	blocks       []models.UnavailabilityBlock

	nextID uint

	// Quando > 0, CreateBlock falha na n-ésima chamada.
	failBlockAt int
	blockCalls  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: models.Shop{
			ID:                1,
			Name:              "Navalha Studio",
			Timezone:          "America/Sao_Paulo",
			MinAdvanceMinutes: 120,
		},
		barbers: map[uint]models.Barber{
			1: {ID: 1, Name: "Rafael", Active: true},
		},
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Corte", DurationMin: 60, Price: 50, Active: true},
			2: {ID: 2, Name: "Corte Estudante", DurationMin: 60, Price: 30, Active: true, Student: true},
		},
		nextID: 1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) GetShop(ctx context.Context) (*models.Shop, error) {
	s := f.shop
	return &s, nil
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &b, nil
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &s, nil
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, name, phone, email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].Phone == phone {
			return &f.clients[i], nil
		}
	}
	c := models.Client{ID: f.id(), Name: name, Phone: phone, Email: email}
	f.clients = append(f.clients, c)
	return &c, nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	r.ID = f.id()
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeRepo) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == r.ID {
			f.reservations[i] = *r
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepo) HasConfirmedAt(ctx context.Context, barberID uint, start time.Time) (bool, error) {
	for i := range f.reservations {
		r := &f.reservations[i]
		if r.BarberID == barberID &&
			r.Status == string(domain.StatusConfirmed) &&
			r.StartTime.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListConfirmedStarts(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]time.Time, error) {
	var out []time.Time
	for i := range f.reservations {
		r := &f.reservations[i]
		if r.BarberID == barberID &&
			r.Status == string(domain.StatusConfirmed) &&
			!r.StartTime.Before(dayStart) && r.StartTime.Before(dayEnd) {
			out = append(out, r.StartTime)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListReservationsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for i := range f.reservations {
		r := f.reservations[i]
		if barberID != 0 && r.BarberID != barberID {
			continue
		}
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBlock(ctx context.Context, b *models.UnavailabilityBlock) error {
	f.blockCalls++
	if f.failBlockAt > 0 && f.blockCalls >= f.failBlockAt {
		return errors.New("connection reset")
	}
	b.ID = f.id()
	f.blocks = append(f.blocks, *b)
	return nil
}

func (f *fakeRepo) ListBlocks(ctx context.Context, barberID uint, from, to time.Time) ([]models.UnavailabilityBlock, error) {
	var out []models.UnavailabilityBlock
	for i := range f.blocks {
		b := f.blocks[i]
		if barberID != 0 && b.BarberID != barberID {
			continue
		}
		if !from.IsZero() && b.StartTime.Before(from) {
			continue
		}
		if !to.IsZero() && !b.StartTime.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) DeleteBlock(ctx context.Context, id uint) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepo) UpdateBlockGroup(ctx context.Context, groupID string, fields domain.BlockGroupFields) (*models.UnavailabilityBlock, error) {
	var first *models.UnavailabilityBlock
	for i := range f.blocks {
		b := &f.blocks[i]
		if b.RecurrenceGroupID != groupID {
			continue
		}
		b.BarberID = fields.BarberID
		b.Type = fields.Type
		b.Reason = fields.Reason
		b.AllDay = fields.AllDay
		b.StartTime = fields.StartTime
		b.EndTime = fields.EndTime
		b.Recurrence = fields.Recurrence
		b.RecurrenceEndDate = fields.RecurrenceEndDate
		if first == nil {
			first = b
		}
	}
	if first == nil {
		return nil, errors.New("record not found")
	}
	out := *first
	return &out, nil
}

func (f *fakeRepo) CancelConflicting(ctx context.Context, barberID uint, start, end time.Time) ([]models.Reservation, error) {
	var hit []models.Reservation
	for i := range f.reservations {
		r := &f.reservations[i]
		if r.BarberID != barberID || r.Status != string(domain.StatusConfirmed) {
			continue
		}
		// intervalo meio-aberto: início em [start, end)
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			now := time.Now()
			r.Status = string(domain.StatusCancelled)
			r.CancelledAt = &now
			hit = append(hit, *r)
		}
	}
	return hit, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
