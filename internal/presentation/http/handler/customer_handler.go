package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// CustomerHandler handles customer and pet HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers (supports both page-based and cursor-based pagination)
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

func (h *CustomerHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}
	params.Validate()

	result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", result)
}

// Get handles retrieving a single customer with their pets
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required,min=1,max=255"`
		Email   *string `json:"email" binding:"omitempty,email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		Notes   *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email" binding:"omitempty,email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		Notes   *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// ListPets handles listing a customer's pets
func (h *CustomerHandler) ListPets(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	pets, err := h.customerService.ListPets(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pets retrieved successfully", pets)
}

// AddPet handles registering a pet under a customer
func (h *CustomerHandler) AddPet(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name      string       `json:"name" binding:"required,min=1,max=255"`
		Species   string       `json:"species" binding:"required"`
		Breed     *string      `json:"breed"`
		Size      enum.PetSize `json:"size"`
		WeightKg  *float64     `json:"weight_kg"`
		BirthDate *time.Time   `json:"birth_date"`
		Notes     *string      `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pet, err := h.customerService.AddPet(c.Request.Context(), &service.AddPetInput{
		CustomerID: customerID,
		Name:       req.Name,
		Species:    req.Species,
		Breed:      req.Breed,
		Size:       req.Size,
		WeightKg:   req.WeightKg,
		BirthDate:  req.BirthDate,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Pet added successfully", pet)
}

// UpdatePet handles updating a pet
func (h *CustomerHandler) UpdatePet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("petId"))
	if err != nil {
		response.BadRequest(c, "Invalid pet ID")
		return
	}

	var req struct {
		Name      *string       `json:"name"`
		Species   *string       `json:"species"`
		Breed     *string       `json:"breed"`
		Size      *enum.PetSize `json:"size"`
		WeightKg  *float64      `json:"weight_kg"`
		BirthDate *time.Time    `json:"birth_date"`
		Notes     *string       `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pet, err := h.customerService.UpdatePet(c.Request.Context(), &service.UpdatePetInput{
		ID:        petID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Size:      req.Size,
		WeightKg:  req.WeightKg,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pet updated successfully", pet)
}

// DeletePet handles removing a pet
func (h *CustomerHandler) DeletePet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("petId"))
	if err != nil {
		response.BadRequest(c, "Invalid pet ID")
		return
	}

	if err := h.customerService.DeletePet(c.Request.Context(), petID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pet deleted successfully", nil)
}
