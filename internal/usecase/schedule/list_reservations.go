package schedule

import (
	"context"
	"time"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/dto"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// ByDate lista as reservas de um dia; barberID zero cobre todos os
// barbeiros.
func (uc *ListReservations) ByDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	return uc.list(ctx, barberID, start, end)
}

func (uc *ListReservations) ByMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.list(ctx, barberID, start, end)
}

func (uc *ListReservations) list(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:          res.ID,
			StartTime:   res.StartTime,
			Status:      res.Status,
			ClientName:  res.Client.Name,
			ClientPhone: res.Client.Phone,
			ServiceName: res.Service.Name,
			Comment:     res.Comment,
		})
	}

	return out, nil
}
