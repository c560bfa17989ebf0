package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/apperror"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// AppointmentService handles appointment booking and its lifecycle
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
	petRepo         repository.PetRepository
	serviceRepo     repository.ServiceRepository
	staffRepo       repository.StaffRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	petRepo repository.PetRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		petRepo:         petRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
	}
}

// BookAppointmentInput represents the book appointment input
type BookAppointmentInput struct {
	CustomerID  uuid.UUID
	PetID       uuid.UUID
	ServiceID   uuid.UUID
	StaffID     *uuid.UUID
	ScheduledAt time.Time
	Channel     enum.BookingChannel
	Price       *float64
	Discount    *float64
	DurationMin *int
	Notes       *string
}

// BookAppointment books a new appointment. Price and duration default to the
// catalog values for the pet's size; an explicit price or duration overrides.
func (s *AppointmentService) BookAppointment(ctx context.Context, input *BookAppointmentInput) (*entity.Appointment, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	pet, err := s.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil || pet.CustomerID != input.CustomerID {
		return nil, apperror.NewNotFoundError("Pet")
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	if !svc.Active {
		return nil, apperror.NewBadRequestError("Service is no longer offered")
	}

	price := svc.PriceFor(pet.Size)
	if input.Price != nil {
		price = *input.Price
	}
	durationMin := svc.DurationFor(pet.Size)
	if input.DurationMin != nil {
		durationMin = *input.DurationMin
	}
	if durationMin <= 0 {
		return nil, apperror.NewBadRequestError("Duration must be positive")
	}

	var discount float64
	if input.Discount != nil {
		discount = *input.Discount
	}
	if discount < 0 || discount > price {
		return nil, apperror.NewBadRequestError("Discount must be between 0 and the price")
	}

	if input.StaffID != nil {
		if err := s.checkStaffAvailable(ctx, *input.StaffID, input.ScheduledAt, durationMin, uuid.Nil); err != nil {
			return nil, err
		}
	}

	channel := input.Channel
	if channel == "" {
		channel = enum.BookingChannelWalkIn
	}

	appt := &entity.Appointment{
		CustomerID:  input.CustomerID,
		PetID:       input.PetID,
		ServiceID:   input.ServiceID,
		StaffID:     input.StaffID,
		ScheduledAt: input.ScheduledAt,
		DurationMin: durationMin,
		Status:      enum.AppointmentStatusScheduled,
		Price:       price,
		Discount:    discount,
		PetSize:     pet.Size,
		Channel:     channel,
		Notes:       input.Notes,
		BookedAt:    time.Now(),
	}

	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

func (s *AppointmentService) checkStaffAvailable(ctx context.Context, staffID uuid.UUID, start time.Time, durationMin int, excludeID uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}
	if !staff.Active {
		return apperror.NewBadRequestError("Staff member is not active")
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)
	overlapping, err := s.appointmentRepo.CountOverlapping(ctx, staffID, start, end, excludeID)
	if err != nil {
		return err
	}
	if overlapping > 0 {
		return apperror.NewConflictError("Staff member is already booked for that time")
	}
	return nil
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appt, nil
}

// ListAppointments lists appointments matching the filter
func (s *AppointmentService) ListAppointments(ctx context.Context, params *pagination.PaginationParams, filter repository.AppointmentListFilter) (*pagination.PaginatedResult[entity.Appointment], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid appointment status")
	}

	appts, total, err := s.appointmentRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(appts, pag), nil
}

// UpdateAppointmentInput represents the update appointment input
type UpdateAppointmentInput struct {
	ID          uuid.UUID
	StaffID     *uuid.UUID
	ScheduledAt *time.Time
	DurationMin *int
	Price       *float64
	Discount    *float64
	Notes       *string
}

// UpdateAppointment reschedules or edits a scheduled appointment. Terminal
// appointments cannot be edited.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, input *UpdateAppointmentInput) (*entity.Appointment, error) {
	appt, err := s.GetAppointment(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if appt.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Appointment is already " + appt.Status.String())
	}

	if input.StaffID != nil {
		appt.StaffID = input.StaffID
	}
	if input.ScheduledAt != nil {
		appt.ScheduledAt = *input.ScheduledAt
	}
	if input.DurationMin != nil {
		if *input.DurationMin <= 0 {
			return nil, apperror.NewBadRequestError("Duration must be positive")
		}
		appt.DurationMin = *input.DurationMin
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		appt.Price = *input.Price
	}
	if input.Discount != nil {
		if *input.Discount < 0 || *input.Discount > appt.Price {
			return nil, apperror.NewBadRequestError("Discount must be between 0 and the price")
		}
		appt.Discount = *input.Discount
	}
	if input.Notes != nil {
		appt.Notes = input.Notes
	}

	if appt.StaffID != nil && (input.StaffID != nil || input.ScheduledAt != nil || input.DurationMin != nil) {
		if err := s.checkStaffAvailable(ctx, *appt.StaffID, appt.ScheduledAt, appt.DurationMin, appt.ID); err != nil {
			return nil, err
		}
	}

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// CompleteAppointment marks an appointment completed, records the actual
// duration when given, and rolls the customer's visit dates forward.
func (s *AppointmentService) CompleteAppointment(ctx context.Context, id uuid.UUID, actualDurationMin *int) (*entity.Appointment, error) {
	appt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Appointment is already " + appt.Status.String())
	}
	if actualDurationMin != nil && *actualDurationMin <= 0 {
		return nil, apperror.NewBadRequestError("Actual duration must be positive")
	}

	now := time.Now()
	appt.Status = enum.AppointmentStatusCompleted
	appt.CompletedAt = &now
	appt.ActualDurationMin = actualDurationMin

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.recordCustomerVisit(ctx, appt.CustomerID, now); err != nil {
		return nil, err
	}

	return appt, nil
}

func (s *AppointmentService) recordCustomerVisit(ctx context.Context, customerID uuid.UUID, visitedAt time.Time) error {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return nil
	}

	if customer.FirstVisit == nil || visitedAt.Before(*customer.FirstVisit) {
		customer.FirstVisit = &visitedAt
	}
	if customer.LastVisit == nil || visitedAt.After(*customer.LastVisit) {
		customer.LastVisit = &visitedAt
	}
	return s.customerRepo.Update(ctx, customer)
}

// CancelAppointment cancels a scheduled appointment
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Appointment is already " + appt.Status.String())
	}

	now := time.Now()
	appt.Status = enum.AppointmentStatusCancelled
	appt.CancelledAt = &now

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// MarkNoShow marks a scheduled appointment as a no-show
func (s *AppointmentService) MarkNoShow(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Appointment is already " + appt.Status.String())
	}

	now := time.Now()
	appt.Status = enum.AppointmentStatusNoShow
	appt.CancelledAt = &now

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// RebookInput represents the rebook input
type RebookInput struct {
	AppointmentID uuid.UUID
	ScheduledAt   time.Time
	StaffID       *uuid.UUID
	Notes         *string
}

// Rebook books the next visit from a completed appointment and stamps the
// original as rebooked. The rebooked-at stamp feeds rebook-rate reporting.
func (s *AppointmentService) Rebook(ctx context.Context, input *RebookInput) (*entity.Appointment, error) {
	prev, err := s.GetAppointment(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if prev.Status != enum.AppointmentStatusCompleted {
		return nil, apperror.NewConflictError("Only completed appointments can be rebooked")
	}
	if prev.RebookedAt != nil {
		return nil, apperror.NewConflictError("Appointment was already rebooked")
	}

	staffID := input.StaffID
	if staffID == nil {
		staffID = prev.StaffID
	}

	next, err := s.BookAppointment(ctx, &BookAppointmentInput{
		CustomerID:  prev.CustomerID,
		PetID:       prev.PetID,
		ServiceID:   prev.ServiceID,
		StaffID:     staffID,
		ScheduledAt: input.ScheduledAt,
		Channel:     prev.Channel,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	prev.RebookedAt = &now
	if err := s.appointmentRepo.Update(ctx, prev); err != nil {
		return nil, err
	}

	return next, nil
}

// RecordReminderInput represents the record reminder input
type RecordReminderInput struct {
	AppointmentID uuid.UUID
	Channel       string
	Note          string
}

// RecordReminder appends a sent-reminder entry to an appointment
func (s *AppointmentService) RecordReminder(ctx context.Context, input *RecordReminderInput) (*entity.Appointment, error) {
	appt, err := s.GetAppointment(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != enum.AppointmentStatusScheduled {
		return nil, apperror.NewConflictError("Reminders only apply to scheduled appointments")
	}

	appt.Reminders = append(appt.Reminders, entity.ReminderEntry{
		SentAt:  time.Now(),
		Channel: input.Channel,
		Note:    input.Note,
	})

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// DeleteAppointment removes an appointment record entirely
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAppointment(ctx, id); err != nil {
		return err
	}
	return s.appointmentRepo.Delete(ctx, id)
}
