package schedule

import (
	"context"

	"github.com/navalha-studio/booking-api/internal/audit"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Complete(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_completed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
