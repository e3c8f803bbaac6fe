package schedule

import (
	"context"
	"time"

	"github.com/navalha-studio/booking-api/internal/audit"
	"github.com/navalha-studio/booking-api/internal/cache"
	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/notify"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberID  uint
	ServiceID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date string // 2006-01-02
	Time string // 15:04

	Comment     string
	PrivateNote string

	// Preenchido quando a reserva é criada pelo painel.
	AdminUserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo           domain.Repository
	notifier       *notify.Notifier
	mailer         *notify.Mailer
	audit          *audit.Dispatcher
	slots          *cache.SlotCache
	studentWeekday time.Weekday
}

func NewCreateReservation(
	repo domain.Repository,
	notifier *notify.Notifier,
	mailer *notify.Mailer,
	auditDispatcher *audit.Dispatcher,
	slots *cache.SlotCache,
	studentWeekday time.Weekday,
) *CreateReservation {
	return &CreateReservation{
		repo:           repo,
		notifier:       notifier,
		mailer:         mailer,
		audit:          auditDispatcher,
		slots:          slots,
		studentWeekday: studentWeekday,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if service.Student && start.Weekday() != uc.studentWeekday {
		return nil, httperr.ErrBusiness("student_service_wrong_day")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// Só colisão exata de horário é rejeitada; bloqueios de
	// indisponibilidade existentes não são consultados aqui.
	taken, err := uc.repo.HasConfirmedAt(ctx, in.BarberID, start)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	res := &models.Reservation{
		BarberID:    in.BarberID,
		ServiceID:   service.ID,
		ClientID:    client.ID,
		StartTime:   start,
		Comment:     in.Comment,
		PrivateNote: in.PrivateNote,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	res.Client = *client
	res.Service = *service
	res.Barber = *barber

	uc.slots.Invalidate(ctx, in.BarberID, start)

	uc.notifier.ReservationCreated(res)
	uc.sendConfirmation(res)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.AdminUserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}

func (uc *CreateReservation) sendConfirmation(res *models.Reservation) {
	if !uc.mailer.Enabled() || res.Client.Email == "" {
		return
	}

	body := "<p>Olá " + res.Client.Name + ",</p>" +
		"<p>Sua reserva de <strong>" + res.Service.Name + "</strong> com " +
		res.Barber.Name + " está confirmada para " +
		res.StartTime.Format("02/01/2006 15:04") + ".</p>"

	// Confirmação é best-effort; a reserva já está gravada.
	if err := uc.mailer.Send(res.Client.Email, "Reserva confirmada", body); err != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "confirmation_email_failed",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}
}
