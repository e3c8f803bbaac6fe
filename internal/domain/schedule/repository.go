package schedule

import (
	"context"
	"time"

	"github.com/navalha-studio/booking-api/internal/models"
)

// BlockGroupFields são os campos reescritos em todas as linhas de um
// grupo de recorrência. A atualização nunca regenera ocorrências.
type BlockGroupFields struct {
	BarberID          uint
	Type              string
	Reason            string
	AllDay            bool
	StartTime         time.Time
	EndTime           time.Time
	Recurrence        string
	RecurrenceEndDate *time.Time
}

type Repository interface {
	// -------- Shop --------
	GetShop(ctx context.Context) (*models.Shop, error)

	// -------- Reference data --------
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Reservation --------
	CreateReservation(ctx context.Context, r *models.Reservation) error

	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	UpdateReservation(ctx context.Context, r *models.Reservation) error

	HasConfirmedAt(
		ctx context.Context,
		barberID uint,
		start time.Time,
	) (bool, error)

	ListConfirmedStarts(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)

	ListReservationsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Unavailability --------
	CreateBlock(ctx context.Context, b *models.UnavailabilityBlock) error

	ListBlocks(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.UnavailabilityBlock, error)

	DeleteBlock(ctx context.Context, id uint) error

	UpdateBlockGroup(
		ctx context.Context,
		groupID string,
		fields BlockGroupFields,
	) (*models.UnavailabilityBlock, error)

	// CancelConflicting cancela reservas confirmadas do barbeiro com
	// início em [start, end) e retorna as reservas atingidas.
	CancelConflicting(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}
