package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/apperror"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// CatalogService handles the grooming service catalog
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name                string
	Category            string
	BasePrice           float64
	BaseDurationMin     int
	EstimatedSupplyCost *float64
	SizeOverrides       map[enum.PetSize]entity.SizeOverride
}

// CreateService adds a service to the catalog
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	if input.BasePrice < 0 {
		return nil, apperror.NewBadRequestError("Base price cannot be negative")
	}
	if input.BaseDurationMin <= 0 {
		return nil, apperror.NewBadRequestError("Base duration must be positive")
	}
	for size := range input.SizeOverrides {
		if !size.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid pet size in overrides")
		}
	}

	svc := &entity.Service{
		Name:                input.Name,
		Category:            input.Category,
		BasePrice:           input.BasePrice,
		BaseDurationMin:     input.BaseDurationMin,
		EstimatedSupplyCost: input.EstimatedSupplyCost,
		SizeOverrides:       input.SizeOverrides,
		Active:              true,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

// GetService retrieves a catalog service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices lists catalog services
func (s *CatalogService) ListServices(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Service], error) {
	services, total, err := s.serviceRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(services, pag), nil
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ID                  uuid.UUID
	Name                *string
	Category            *string
	BasePrice           *float64
	BaseDurationMin     *int
	EstimatedSupplyCost *float64
	SizeOverrides       map[enum.PetSize]entity.SizeOverride
	Active              *bool
}

// UpdateService updates a catalog service
func (s *CatalogService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Category != nil {
		svc.Category = *input.Category
	}
	if input.BasePrice != nil {
		if *input.BasePrice < 0 {
			return nil, apperror.NewBadRequestError("Base price cannot be negative")
		}
		svc.BasePrice = *input.BasePrice
	}
	if input.BaseDurationMin != nil {
		if *input.BaseDurationMin <= 0 {
			return nil, apperror.NewBadRequestError("Base duration must be positive")
		}
		svc.BaseDurationMin = *input.BaseDurationMin
	}
	if input.EstimatedSupplyCost != nil {
		svc.EstimatedSupplyCost = input.EstimatedSupplyCost
	}
	if input.SizeOverrides != nil {
		for size := range input.SizeOverrides {
			if !size.IsValid() {
				return nil, apperror.NewBadRequestError("Invalid pet size in overrides")
			}
		}
		svc.SizeOverrides = input.SizeOverrides
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

// DeleteService retires a service from the catalog. Soft delete keeps
// historical appointments reportable.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}

// QuoteInput asks for the effective price and duration of a service for a pet size
type QuoteInput struct {
	ServiceID uuid.UUID
	PetSize   enum.PetSize
}

// Quote holds the effective price and duration after size overrides
type Quote struct {
	ServiceID   uuid.UUID    `json:"service_id"`
	PetSize     enum.PetSize `json:"pet_size"`
	Price       float64      `json:"price"`
	DurationMin int          `json:"duration_min"`
}

// QuoteService resolves the size-adjusted price and duration for a service
func (s *CatalogService) QuoteService(ctx context.Context, input *QuoteInput) (*Quote, error) {
	svc, err := s.GetService(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	size := input.PetSize
	if size == "" {
		size = enum.PetSizeMedium
	}
	if !size.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pet size")
	}

	return &Quote{
		ServiceID:   svc.ID,
		PetSize:     size,
		Price:       svc.PriceFor(size),
		DurationMin: svc.DurationFor(size),
	}, nil
}
