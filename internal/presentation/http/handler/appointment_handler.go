package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles listing appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	var filter repository.AppointmentListFilter
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		filter.CustomerID = &id
	}
	if v := c.Query("staff_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid staff ID")
			return
		}
		filter.StaffID = &id
	}
	filter.Status = enum.AppointmentStatus(c.Query("status"))
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		filter.To = &t
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// Get handles retrieving a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appt, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appt)
}

// Book handles booking an appointment
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req struct {
		CustomerID  uuid.UUID           `json:"customer_id" binding:"required"`
		PetID       uuid.UUID           `json:"pet_id" binding:"required"`
		ServiceID   uuid.UUID           `json:"service_id" binding:"required"`
		StaffID     *uuid.UUID          `json:"staff_id"`
		ScheduledAt time.Time           `json:"scheduled_at" binding:"required"`
		Channel     enum.BookingChannel `json:"channel"`
		Price       *float64            `json:"price"`
		Discount    *float64            `json:"discount"`
		DurationMin *int                `json:"duration_min"`
		Notes       *string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appt, err := h.appointmentService.BookAppointment(c.Request.Context(), &service.BookAppointmentInput{
		CustomerID:  req.CustomerID,
		PetID:       req.PetID,
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		ScheduledAt: req.ScheduledAt,
		Channel:     req.Channel,
		Price:       req.Price,
		Discount:    req.Discount,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appt)
}

// Update handles rescheduling or editing an appointment
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		StaffID     *uuid.UUID `json:"staff_id"`
		ScheduledAt *time.Time `json:"scheduled_at"`
		DurationMin *int       `json:"duration_min"`
		Price       *float64   `json:"price"`
		Discount    *float64   `json:"discount"`
		Notes       *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appt, err := h.appointmentService.UpdateAppointment(c.Request.Context(), &service.UpdateAppointmentInput{
		ID:          id,
		StaffID:     req.StaffID,
		ScheduledAt: req.ScheduledAt,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Discount:    req.Discount,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment updated successfully", appt)
}

// Complete handles marking an appointment completed
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		ActualDurationMin *int `json:"actual_duration_min"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	appt, err := h.appointmentService.CompleteAppointment(c.Request.Context(), id, req.ActualDurationMin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment completed successfully", appt)
}

// Cancel handles cancelling an appointment
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appt, err := h.appointmentService.CancelAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment cancelled successfully", appt)
}

// NoShow handles marking an appointment as a no-show
func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appt, err := h.appointmentService.MarkNoShow(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment marked as no-show", appt)
}

// Rebook handles booking the next visit from a completed appointment
func (h *AppointmentHandler) Rebook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		ScheduledAt time.Time  `json:"scheduled_at" binding:"required"`
		StaffID     *uuid.UUID `json:"staff_id"`
		Notes       *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appt, err := h.appointmentService.Rebook(c.Request.Context(), &service.RebookInput{
		AppointmentID: id,
		ScheduledAt:   req.ScheduledAt,
		StaffID:       req.StaffID,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment rebooked successfully", appt)
}

// RecordReminder handles recording a sent reminder on an appointment
func (h *AppointmentHandler) RecordReminder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		Channel string `json:"channel" binding:"required,oneof=email sms"`
		Note    string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appt, err := h.appointmentService.RecordReminder(c.Request.Context(), &service.RecordReminderInput{
		AppointmentID: id,
		Channel:       req.Channel,
		Note:          req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminder recorded successfully", appt)
}

// Delete handles removing an appointment record
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully", nil)
}
