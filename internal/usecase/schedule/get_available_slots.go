package schedule

import (
	"context"
	"time"

	"github.com/navalha-studio/booking-api/internal/cache"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	slots *cache.SlotCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	slots *cache.SlotCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		slots: slots,
	}
}

// Execute devolve os horários livres ("HH:MM", ordem crescente) de um
// barbeiro em uma data. Lista vazia é resultado válido, não erro.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]string, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return []string{}, nil
	}

	if cached, ok := uc.slots.Get(ctx, barberID, date); ok {
		return cached, nil
	}

	grid := domain.DaySlots(date)
	if len(grid) == 0 {
		return []string{}, nil
	}

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	starts, err := uc.repo.ListConfirmedStarts(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	free := domain.FilterBooked(grid, starts, date.Location())

	uc.slots.Set(ctx, barberID, date, free)

	return free, nil
}
