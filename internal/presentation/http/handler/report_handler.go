package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/application/reporting"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseFilters reads the report filter set from query parameters. Repeated
// facet parameters accumulate (e.g. ?staff_id=a&staff_id=b).
func parseFilters(c *gin.Context) (reporting.Filters, bool) {
	f := reporting.Filters{
		Preset:    reporting.Preset(c.DefaultQuery("preset", string(reporting.PresetThisMonth))),
		TimeBasis: reporting.TimeBasis(c.Query("time_basis")),
	}

	for _, name := range []string{"start_date", "end_date"} {
		v := c.Query(name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			if t, err = time.Parse("2006-01-02", v); err != nil {
				response.BadRequest(c, "Invalid "+name)
				return f, false
			}
		}
		if name == "start_date" {
			f.StartDate = &t
		} else {
			f.EndDate = &t
		}
	}

	for _, v := range c.QueryArray("staff_id") {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid staff ID")
			return f, false
		}
		f.StaffIDs = append(f.StaffIDs, id)
	}
	for _, v := range c.QueryArray("service_id") {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid service ID")
			return f, false
		}
		f.ServiceIDs = append(f.ServiceIDs, id)
	}
	for _, v := range c.QueryArray("pet_size") {
		f.PetSizes = append(f.PetSizes, enum.PetSize(v))
	}
	for _, v := range c.QueryArray("channel") {
		f.Channels = append(f.Channels, enum.BookingChannel(v))
	}
	for _, v := range c.QueryArray("status") {
		f.Statuses = append(f.Statuses, enum.AppointmentStatus(v))
	}
	for _, v := range c.QueryArray("payment_method") {
		f.PaymentMethods = append(f.PaymentMethods, enum.PaymentMethod(v))
	}

	return f, true
}

// Summary handles the full report
func (h *ReportHandler) Summary(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", summary)
}

// Revenue handles the revenue section
func (h *ReportHandler) Revenue(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.Revenue(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Margins handles the margin section
func (h *ReportHandler) Margins(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.Margins(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Appointments handles the appointment funnel section
func (h *ReportHandler) Appointments(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.Appointments(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// Retention handles the retention section
func (h *ReportHandler) Retention(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.Retention(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// ByService handles the per-service breakdown
func (h *ReportHandler) ByService(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.ServiceBreakdown(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// ByStaff handles the per-staff breakdown
func (h *ReportHandler) ByStaff(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	report, err := h.reportService.StaffBreakdown(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}
