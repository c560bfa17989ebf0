package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// AppointmentListFilter narrows an appointment listing. Zero values mean
// no restriction.
type AppointmentListFilter struct {
	CustomerID *uuid.UUID
	StaffID    *uuid.UUID
	Status     enum.AppointmentStatus
	From       *time.Time
	To         *time.Time
}

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter AppointmentListFilter) ([]entity.Appointment, int64, error)
	// ListBetween returns appointments scheduled inside [start, end], for
	// report snapshots.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Appointment, error)
	// CountOverlapping counts non-cancelled appointments for the staff member
	// whose window intersects [start, end), excluding the given id.
	CountOverlapping(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error)
}
