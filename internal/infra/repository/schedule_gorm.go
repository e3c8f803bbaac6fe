package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *ScheduleGormRepository) GetShop(ctx context.Context) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).Order("id ASC").First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("telefone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ScheduleGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		First(&res, id).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ScheduleGormRepository) HasConfirmedAt(
	ctx context.Context,
	barberID uint,
	start time.Time,
) (bool, error) {

	// FOR UPDATE não combina com agregados no Postgres; travamos a
	// linha concreta e testamos presença.
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("id").
		Where(
			"barbeiro_id = ? AND status = ? AND start_time = ?",
			barberID,
			string(domain.StatusConfirmed),
			start,
		).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Limit(1).
		Find(&ids).Error; err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

func (r *ScheduleGormRepository) ListConfirmedStarts(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("start_time").
		Where(
			"barbeiro_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			barberID,
			string(domain.StatusConfirmed),
			dayStart,
			dayEnd,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	starts := make([]time.Time, 0, len(reservations))
	for _, res := range reservations {
		starts = append(starts, res.StartTime)
	}

	return starts, nil
}

func (r *ScheduleGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", start, end)

	if barberID != 0 {
		q = q.Where("barbeiro_id = ?", barberID)
	}

	var reservations []models.Reservation
	if err := q.Order("start_time ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Unavailability
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlock(
	ctx context.Context,
	b *models.UnavailabilityBlock,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) ListBlocks(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.UnavailabilityBlock, error) {

	q := r.db.WithContext(ctx).Preload("Barber")

	if barberID != 0 {
		q = q.Where("barbeiro_id = ?", barberID)
	}
	if !from.IsZero() {
		q = q.Where("start_time >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_time < ?", to)
	}

	var blocks []models.UnavailabilityBlock
	if err := q.Order("start_time ASC").Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) DeleteBlock(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UnavailabilityBlock{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrBusiness("block_not_found")
	}
	return nil
}

// UpdateBlockGroup reescreve os campos de todas as linhas do grupo e
// devolve uma linha representativa. Não recalcula ocorrências.
func (r *ScheduleGormRepository) UpdateBlockGroup(
	ctx context.Context,
	groupID string,
	fields domain.BlockGroupFields,
) (*models.UnavailabilityBlock, error) {

	result := r.db.WithContext(ctx).
		Model(&models.UnavailabilityBlock{}).
		Where("recurrence_group_id = ?", groupID).
		Updates(map[string]any{
			"barbeiro_id": fields.BarberID,
			"tipo":        fields.Type,
			"motivo":      fields.Reason,
			"dia_inteiro": fields.AllDay,
			"start_time":  fields.StartTime,
			"end_time":    fields.EndTime,
			"repetir":     fields.Recurrence,
			"repetir_ate": fields.RecurrenceEndDate,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("group_not_found")
	}

	var block models.UnavailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("recurrence_group_id = ?", groupID).
		Order("id ASC").
		First(&block).Error; err != nil {
		return nil, err
	}

	return &block, nil
}

// CancelConflicting marca como canceladas as reservas confirmadas com
// início em [start, end). Intervalo semiaberto: reserva começando
// exatamente em end não é atingida. Reexecutar sobre o mesmo intervalo
// não altera mais nada.
func (r *ScheduleGormRepository) CancelConflicting(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var hits []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"barbeiro_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			barberID,
			string(domain.StatusConfirmed),
			start,
			end,
		).
		Find(&hits).Error; err != nil {
		return nil, err
	}

	if len(hits) == 0 {
		return nil, nil
	}

	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barbeiro_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			barberID,
			string(domain.StatusConfirmed),
			start,
			end,
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": now,
		}).Error; err != nil {
		return nil, err
	}

	return hits, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
