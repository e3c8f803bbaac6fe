package schedule

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/navalha-studio/booking-api/internal/audit"
	"github.com/navalha-studio/booking-api/internal/cache"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/notify"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateUnavailabilityOutput struct {
	Created           int    `json:"created"`
	RecurrenceGroupID string `json:"recurrence_group_id"`
	CancelledCount    int    `json:"reservas_canceladas"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateUnavailability struct {
	repo     domain.Repository
	notifier *notify.Notifier
	audit    *audit.Dispatcher
	slots    *cache.SlotCache
}

func NewCreateUnavailability(
	repo domain.Repository,
	notifier *notify.Notifier,
	auditDispatcher *audit.Dispatcher,
	slots *cache.SlotCache,
) *CreateUnavailability {
	return &CreateUnavailability{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
		slots:    slots,
	}
}

// Execute materializa a regra em linhas de horarios_indisponiveis e
// cancela reservas conflitantes por ocorrência.
//
// Cada inserção e cada cancelamento é uma operação independente: não há
// transação envolvendo a expansão toda. Uma falha no meio do laço
// devolve o erro mantendo as ocorrências já gravadas.
func (uc *CreateUnavailability) Execute(
	ctx context.Context,
	userID *uint,
	rule domain.Rule,
) (CreateUnavailabilityOutput, error) {

	out := CreateUnavailabilityOutput{}

	if rule.AllDay {
		rule = normalizeAllDay(rule)
	}

	if err := domain.ValidateRule(rule); err != nil {
		return out, err
	}

	barber, err := uc.repo.GetBarber(ctx, rule.BarberID)
	if err != nil {
		return out, httperr.ErrBusiness("barber_not_found")
	}

	groupID := uuid.NewString()
	out.RecurrenceGroupID = groupID

	for _, occ := range domain.Expand(rule) {
		block := &models.UnavailabilityBlock{
			BarberID:          barber.ID,
			StartTime:         occ.Start,
			EndTime:           occ.End,
			Type:              rule.Type,
			Reason:            rule.Reason,
			AllDay:            rule.AllDay,
			Recurrence:        rule.Repeat,
			RecurrenceEndDate: rule.RepeatUntil,
			RecurrenceGroupID: groupID,
		}

		if err := uc.repo.CreateBlock(ctx, block); err != nil {
			return out, err
		}
		out.Created++

		uc.slots.Invalidate(ctx, barber.ID, occ.Start)

		// Cancelamento é efeito colateral best-effort: erro aqui é
		// logado e não derruba a criação.
		cancelled, err := uc.repo.CancelConflicting(ctx, barber.ID, occ.Start, occ.End)
		if err != nil {
			log.Printf("conflict cancellation failed for block %d: %v", block.ID, err)
			continue
		}

		out.CancelledCount += len(cancelled)
		for i := range cancelled {
			uc.notifier.ReservationCancelledByBlock(&cancelled[i])
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "unavailability_created",
		Entity: "unavailability_block",
		Metadata: map[string]any{
			"recurrence_group_id": groupID,
			"repetir":             rule.Repeat,
			"created":             out.Created,
			"cancelled":           out.CancelledCount,
		},
	})

	return out, nil
}

func normalizeAllDay(rule domain.Rule) domain.Rule {
	loc := rule.Start.Location()

	rule.Start = time.Date(
		rule.Start.Year(), rule.Start.Month(), rule.Start.Day(),
		0, 0, 0, 0, loc,
	)
	rule.End = time.Date(
		rule.End.Year(), rule.End.Month(), rule.End.Day(),
		23, 59, 59, 0, loc,
	)

	return rule
}
