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

// CustomerService handles customer and pet operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	petRepo      repository.PetRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, petRepo repository.PetRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, petRepo: petRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Email != nil && *input.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID, with pets
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// AddPetInput represents the add pet input
type AddPetInput struct {
	CustomerID uuid.UUID
	Name       string
	Species    string
	Breed      *string
	Size       enum.PetSize
	WeightKg   *float64
	BirthDate  *time.Time
	Notes      *string
}

// AddPet registers a pet under a customer
func (s *CustomerService) AddPet(ctx context.Context, input *AddPetInput) (*entity.Pet, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Size != "" && !input.Size.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pet size")
	}

	pet := &entity.Pet{
		CustomerID: input.CustomerID,
		Name:       input.Name,
		Species:    input.Species,
		Breed:      input.Breed,
		Size:       input.Size,
		WeightKg:   input.WeightKg,
		BirthDate:  input.BirthDate,
		Notes:      input.Notes,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

// UpdatePetInput represents the update pet input
type UpdatePetInput struct {
	ID        uuid.UUID
	Name      *string
	Species   *string
	Breed     *string
	Size      *enum.PetSize
	WeightKg  *float64
	BirthDate *time.Time
	Notes     *string
}

// UpdatePet updates a pet
func (s *CustomerService) UpdatePet(ctx context.Context, input *UpdatePetInput) (*entity.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, apperror.NewNotFoundError("Pet")
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Species != nil {
		pet.Species = *input.Species
	}
	if input.Breed != nil {
		pet.Breed = input.Breed
	}
	if input.Size != nil {
		if !input.Size.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid pet size")
		}
		pet.Size = *input.Size
	}
	if input.WeightKg != nil {
		pet.WeightKg = input.WeightKg
	}
	if input.BirthDate != nil {
		pet.BirthDate = input.BirthDate
	}
	if input.Notes != nil {
		pet.Notes = input.Notes
	}

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

// DeletePet removes a pet
func (s *CustomerService) DeletePet(ctx context.Context, id uuid.UUID) error {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pet == nil {
		return apperror.NewNotFoundError("Pet")
	}
	return s.petRepo.Delete(ctx, id)
}

// ListPets lists a customer's pets
func (s *CustomerService) ListPets(ctx context.Context, customerID uuid.UUID) ([]entity.Pet, error) {
	return s.petRepo.ListByCustomer(ctx, customerID)
}
