package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// ServiceRepository defines the interface for grooming service catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, svc *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Service, int64, error)
	ListAll(ctx context.Context) ([]entity.Service, error)
}
