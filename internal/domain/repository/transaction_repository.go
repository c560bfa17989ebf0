package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/pkg/pagination"
)

// TransactionRepository defines the interface for checkout transaction data operations
type TransactionRepository interface {
	// Create persists the transaction together with its line items
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, txn *entity.Transaction) error
	List(ctx context.Context, params *pagination.PaginationParams, customerID *uuid.UUID) ([]entity.Transaction, int64, error)
	// ListBetween returns transactions whose checkout or transaction date
	// falls inside [start, end], for report snapshots. Matching on either
	// date lets the report pick its time basis after loading.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Transaction, error)
}
