package schedule

import (
	"context"

	"github.com/navalha-studio/booking-api/internal/audit"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
)

type UpdateUnavailabilityGroup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUnavailabilityGroup(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateUnavailabilityGroup {
	return &UpdateUnavailabilityGroup{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute reescreve os campos em todas as linhas do grupo e devolve uma
// linha representativa. Mudar o padrão de repetição ou as datas aqui não
// regenera ocorrências: a quantidade e o espaçamento das linhas
// existentes ficam como estavam na expansão original.
func (uc *UpdateUnavailabilityGroup) Execute(
	ctx context.Context,
	userID *uint,
	groupID string,
	fields domain.BlockGroupFields,
) (*models.UnavailabilityBlock, error) {

	if _, err := uc.repo.GetBarber(ctx, fields.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	block, err := uc.repo.UpdateBlockGroup(ctx, groupID, fields)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "unavailability_group_updated",
		Entity: "unavailability_block",
		Metadata: map[string]any{
			"recurrence_group_id": groupID,
		},
	})

	return block, nil
}
