package schedule

import (
	"context"

	"github.com/navalha-studio/booking-api/internal/audit"
	"github.com/navalha-studio/booking-api/internal/cache"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
}

func NewCancelReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.SlotCache,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
	}
}

func (uc *CancelReservation) Execute(
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
	if err := domain.Cancel(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, res.BarberID, res.StartTime)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
