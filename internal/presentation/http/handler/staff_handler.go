package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// StaffHandler handles staff management HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles listing staff members
func (h *StaffHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.staffService.ListStaff(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Staff retrieved successfully", result)
}

// Get handles retrieving a single staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// Create handles adding a staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req struct {
		Name              string                `json:"name" binding:"required,min=1,max=255"`
		Email             *string               `json:"email" binding:"omitempty,email"`
		Phone             *string               `json:"phone"`
		Role              string                `json:"role"`
		CompensationType  enum.CompensationType `json:"compensation_type"`
		CommissionRatePct *float64              `json:"commission_rate_pct"`
		HourlyRate        *float64              `json:"hourly_rate"`
		EmployerBurdenPct *float64              `json:"employer_burden_pct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Role:              req.Role,
		CompensationType:  req.CompensationType,
		CommissionRatePct: req.CommissionRatePct,
		HourlyRate:        req.HourlyRate,
		EmployerBurdenPct: req.EmployerBurdenPct,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// Update handles updating a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req struct {
		Name              *string                `json:"name"`
		Email             *string                `json:"email" binding:"omitempty,email"`
		Phone             *string                `json:"phone"`
		Role              *string                `json:"role"`
		CompensationType  *enum.CompensationType `json:"compensation_type"`
		CommissionRatePct *float64               `json:"commission_rate_pct"`
		HourlyRate        *float64               `json:"hourly_rate"`
		EmployerBurdenPct *float64               `json:"employer_burden_pct"`
		Active            *bool                  `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), &service.UpdateStaffInput{
		ID:                id,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Role:              req.Role,
		CompensationType:  req.CompensationType,
		CommissionRatePct: req.CommissionRatePct,
		HourlyRate:        req.HourlyRate,
		EmployerBurdenPct: req.EmployerBurdenPct,
		Active:            req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// Delete handles removing a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member deleted successfully", nil)
}

// Onboard handles creating a login account for a staff member
func (h *StaffHandler) Onboard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req struct {
		Email     string `json:"email" binding:"required,email"`
		FirstName string `json:"first_name" binding:"required,min=1,max=255"`
		LastName  string `json:"last_name" binding:"required,min=1,max=255"`
		RoleName  string `json:"role_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.staffService.OnboardStaff(c.Request.Context(), &service.OnboardStaffInput{
		StaffID:   id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleName:  req.RoleName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invite sent successfully", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
		},
	})
}
