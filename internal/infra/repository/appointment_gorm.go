package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return wrapErr(
		r.db.WithContext(ctx).Omit("Client").Create(ap).Error,
		"appointment_not_found",
	)
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return wrapErr(
		r.db.WithContext(ctx).Omit("Client").Save(ap).Error,
		"appointment_not_found",
	)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	ownerID, appointmentID string,
) error {

	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, appointmentID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return wrapErr(res.Error, "appointment_not_found")
	}
	if res.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	ownerID, appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ? AND id = ?", ownerID, appointmentID).
		First(&ap).Error
	if err != nil {
		return nil, wrapErr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListByDate(
	ctx context.Context,
	ownerID, date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order("time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, wrapErr(err, "appointment_not_found")
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListUpcoming(
	ctx context.Context,
	ownerID, fromDate string,
	includeToday bool,
) ([]models.Appointment, error) {

	cmp := "date > ?"
	if includeToday {
		cmp = "date >= ?"
	}

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ?", ownerID).
		Where(cmp, fromDate).
		Order("date ASC, time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, wrapErr(err, "appointment_not_found")
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CountByDate(
	ctx context.Context,
	ownerID, date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "appointment_not_found")
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountFrom(
	ctx context.Context,
	ownerID, fromDate string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("owner_id = ? AND date >= ?", ownerID, fromDate).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "appointment_not_found")
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountBetween(
	ctx context.Context,
	ownerID, start, end string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, start, end).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "appointment_not_found")
	}
	return count, nil
}

func (r *AppointmentGormRepository) LastBefore(
	ctx context.Context,
	ownerID, date string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ? AND date < ?", ownerID, date).
		Order("date DESC, time DESC").
		First(&ap).Error
	if err != nil {
		return nil, wrapErr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) TouchLastVisit(
	ctx context.Context,
	ownerID, clientID, date string,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("owner_id = ? AND id = ?", ownerID, clientID).
		Where("last_visit_date = '' OR last_visit_date < ?", date).
		Update("last_visit_date", date).Error

	return wrapErr(err, "client_not_found")
}

// Compile-time check
var _ schedule.AppointmentRepository = (*AppointmentGormRepository)(nil)
