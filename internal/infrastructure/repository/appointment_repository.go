package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	domainRepo "github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/pagination"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Pet").
		Preload("Service").
		Preload("Staff").
		First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

func (r *appointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appt).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.AppointmentListFilter) ([]entity.Appointment, int64, error) {
	var appts []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("scheduled_at ASC").
		Preload("Customer").
		Preload("Pet").
		Preload("Service").
		Preload("Staff").
		Find(&appts).Error

	return appts, total, err
}

func (r *appointmentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("scheduled_at BETWEEN ? AND ?", start, end).
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) CountOverlapping(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("staff_id = ?", staffID).
		Where("status NOT IN ?", []enum.AppointmentStatus{enum.AppointmentStatusCancelled, enum.AppointmentStatusNoShow}).
		Where("id <> ?", excludeID).
		Where("scheduled_at < ? AND scheduled_at + make_interval(mins => duration_min) > ?", end, start).
		Count(&count).Error
	return count, err
}
