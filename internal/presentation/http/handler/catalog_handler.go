package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// CatalogHandler handles grooming service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing catalog services
func (h *CatalogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.catalogService.ListServices(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// Get handles retrieving a single catalog service
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Create handles adding a service to the catalog
func (h *CatalogHandler) Create(c *gin.Context) {
	var req struct {
		Name                string                               `json:"name" binding:"required,min=1,max=255"`
		Category            string                               `json:"category"`
		BasePrice           float64                              `json:"base_price" binding:"required,gte=0"`
		BaseDurationMin     int                                  `json:"base_duration_min" binding:"required,gt=0"`
		EstimatedSupplyCost *float64                             `json:"estimated_supply_cost"`
		SizeOverrides       map[enum.PetSize]entity.SizeOverride `json:"size_overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		Name:                req.Name,
		Category:            req.Category,
		BasePrice:           req.BasePrice,
		BaseDurationMin:     req.BaseDurationMin,
		EstimatedSupplyCost: req.EstimatedSupplyCost,
		SizeOverrides:       req.SizeOverrides,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Update handles updating a catalog service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req struct {
		Name                *string                              `json:"name"`
		Category            *string                              `json:"category"`
		BasePrice           *float64                             `json:"base_price"`
		BaseDurationMin     *int                                 `json:"base_duration_min"`
		EstimatedSupplyCost *float64                             `json:"estimated_supply_cost"`
		SizeOverrides       map[enum.PetSize]entity.SizeOverride `json:"size_overrides"`
		Active              *bool                                `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), &service.UpdateServiceInput{
		ID:                  id,
		Name:                req.Name,
		Category:            req.Category,
		BasePrice:           req.BasePrice,
		BaseDurationMin:     req.BaseDurationMin,
		EstimatedSupplyCost: req.EstimatedSupplyCost,
		SizeOverrides:       req.SizeOverrides,
		Active:              req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles retiring a service from the catalog
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}

// Quote handles resolving the size-adjusted price and duration for a service
func (h *CatalogHandler) Quote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	quote, err := h.catalogService.QuoteService(c.Request.Context(), &service.QuoteInput{
		ServiceID: id,
		PetSize:   enum.PetSize(c.Query("pet_size")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote calculated successfully", quote)
}
