package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/apperror"
	"github.com/pawsuite/salon-api/pkg/pagination"
	"github.com/pawsuite/salon-api/pkg/payments"
	"github.com/rs/zerolog/log"
)

// CheckoutService handles point-of-sale checkout and refunds
type CheckoutService struct {
	transactionRepo repository.TransactionRepository
	appointmentRepo repository.AppointmentRepository
	settingsRepo    repository.SettingsRepository
	stripe          *payments.StripeService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	transactionRepo repository.TransactionRepository,
	appointmentRepo repository.AppointmentRepository,
	settingsRepo repository.SettingsRepository,
	stripe *payments.StripeService,
) *CheckoutService {
	return &CheckoutService{
		transactionRepo: transactionRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		stripe:          stripe,
	}
}

// CheckoutItemInput represents one extra line item at the register
type CheckoutItemInput struct {
	Kind      string
	Name      string
	ServiceID *uuid.UUID
	StaffID   *uuid.UUID
	Quantity  int
	UnitPrice float64
	Discount  *float64
	UnitCost  *float64
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	AppointmentID *uuid.UUID
	CustomerID    *uuid.UUID
	Items         []CheckoutItemInput
	TipTotal      float64
	PaymentMethod enum.PaymentMethod
	// StripePaymentMethodID is the card token for card payments routed
	// through Stripe.
	StripePaymentMethodID string
	// TransactionDate is the business date the sale settles under; defaults
	// to the checkout time.
	TransactionDate *time.Time
}

// Checkout rings up a sale. An appointment checkout pulls the groom as the
// first line item; additional items cover retail products and add-ons.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Transaction, error) {
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.TipTotal < 0 {
		return nil, apperror.NewBadRequestError("Tip cannot be negative")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSalonSettings()
	}

	now := time.Now()
	txn := &entity.Transaction{
		CustomerID:      input.CustomerID,
		CheckoutAt:      now,
		TransactionDate: now,
		TipTotal:        input.TipTotal,
		PaymentMethod:   input.PaymentMethod,
		Status:          enum.TransactionStatusPending,
	}
	if input.TransactionDate != nil {
		txn.TransactionDate = *input.TransactionDate
	}

	if input.AppointmentID != nil {
		if err := s.attachAppointment(ctx, txn, *input.AppointmentID); err != nil {
			return nil, err
		}
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}
		kind := item.Kind
		if kind == "" {
			kind = entity.ItemKindProduct
		}
		if kind != entity.ItemKindService && kind != entity.ItemKindProduct {
			return nil, apperror.NewBadRequestError("Invalid item kind")
		}
		txn.Items = append(txn.Items, entity.TransactionItem{
			Kind:      kind,
			Name:      item.Name,
			ServiceID: item.ServiceID,
			StaffID:   item.StaffID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			UnitCost:  item.UnitCost,
		})
	}

	if len(txn.Items) == 0 {
		return nil, apperror.NewBadRequestError("Checkout requires at least one item")
	}

	s.totalUp(txn, settings)

	if input.PaymentMethod == enum.PaymentMethodCard && s.stripe != nil {
		ref, err := s.stripe.Charge(txn.TotalCollected, "PawSuite checkout", input.StripePaymentMethodID)
		if err != nil {
			if errors.Is(err, payments.ErrNotConfigured) {
				log.Warn().Msg("stripe not configured, recording card payment without charge")
			} else {
				return nil, apperror.NewBadRequestError("Card payment failed: " + err.Error())
			}
		} else {
			txn.PaymentRef = &ref
		}
	}

	txn.Status = enum.TransactionStatusCompleted

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

func (s *CheckoutService) attachAppointment(ctx context.Context, txn *entity.Transaction, appointmentID uuid.UUID) error {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	if appt.Status != enum.AppointmentStatusCompleted {
		return apperror.NewConflictError("Only completed appointments can be checked out")
	}

	existing, err := s.transactionRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.NewConflictError("Appointment has already been checked out")
	}

	txn.AppointmentID = &appt.ID
	if txn.CustomerID == nil {
		txn.CustomerID = &appt.CustomerID
	}

	var discount *float64
	if appt.Discount > 0 {
		d := appt.Discount
		discount = &d
	}
	txn.Items = append(txn.Items, entity.TransactionItem{
		Kind:      entity.ItemKindService,
		Name:      appt.Service.Name,
		ServiceID: &appt.ServiceID,
		StaffID:   appt.StaffID,
		Quantity:  1,
		UnitPrice: appt.Price,
		Discount:  discount,
	})
	return nil
}

// totalUp fills the transaction's money columns from its line items and the
// salon's tax and processor fee settings.
func (s *CheckoutService) totalUp(txn *entity.Transaction, settings *entity.SalonSettings) {
	for _, item := range txn.Items {
		txn.Subtotal += float64(item.Quantity) * item.UnitPrice
		if item.Discount != nil {
			txn.DiscountTotal += *item.Discount
		}
	}

	taxable := txn.Subtotal - txn.DiscountTotal
	txn.TaxTotal = round2(taxable * settings.TaxRatePct / 100)
	txn.TotalCollected = round2(taxable + txn.TaxTotal + txn.TipTotal)

	if txn.PaymentMethod == enum.PaymentMethodCard || txn.PaymentMethod == enum.PaymentMethodOnline {
		fee := s.processorFee(txn, settings)
		txn.ProcessingFee = &fee
	}
}

// processorFee computes the salon's share of the card processing fee. When the
// staff bears the tip's fee share, that share is withheld from the tip payout
// rather than counted as a salon cost.
func (s *CheckoutService) processorFee(txn *entity.Transaction, settings *entity.SalonSettings) float64 {
	base := txn.Subtotal
	switch settings.FeeBasePolicy {
	case enum.FeeBaseSubtotalTax:
		base += txn.TaxTotal
	case enum.FeeBaseSubtotalTaxTip:
		base += txn.TaxTotal + txn.TipTotal
	}

	fee := base*settings.ProcessorFeeRatePct/100 + settings.ProcessorFeeFixed

	if settings.FeeBasePolicy == enum.FeeBaseSubtotalTaxTip && settings.TipFeeBearer == enum.TipFeeBearerStaff {
		fee -= txn.TipTotal * settings.ProcessorFeeRatePct / 100
	}

	return round2(fee)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetTransaction retrieves a transaction by ID
func (s *CheckoutService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// ListTransactions lists transactions, optionally for one customer
func (s *CheckoutService) ListTransactions(ctx context.Context, params *pagination.PaginationParams, customerID *uuid.UUID) (*pagination.PaginatedResult[entity.Transaction], error) {
	txns, total, err := s.transactionRepo.List(ctx, params, customerID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}

// RefundInput represents the refund input
type RefundInput struct {
	TransactionID uuid.UUID
	// Amount of the refund; zero means refund the remaining balance.
	Amount float64
}

// Refund refunds part or all of a completed transaction. Card payments with a
// processor reference are refunded through Stripe as well.
func (s *CheckoutService) Refund(ctx context.Context, input *RefundInput) (*entity.Transaction, error) {
	txn, err := s.GetTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != enum.TransactionStatusCompleted {
		return nil, apperror.NewConflictError("Only completed transactions can be refunded")
	}

	remaining := round2(txn.TotalCollected - txn.RefundTotal)
	amount := input.Amount
	if amount == 0 {
		amount = remaining
	}
	if amount < 0 || amount > remaining {
		return nil, apperror.NewBadRequestError("Refund amount exceeds the remaining balance")
	}
	if amount == 0 {
		return nil, apperror.NewBadRequestError("Nothing left to refund")
	}

	if txn.PaymentRef != nil && s.stripe != nil {
		if err := s.stripe.Refund(*txn.PaymentRef, amount); err != nil && !errors.Is(err, payments.ErrNotConfigured) {
			return nil, apperror.NewBadRequestError("Refund failed: " + err.Error())
		}
	}

	txn.RefundTotal = round2(txn.RefundTotal + amount)
	if txn.RefundTotal >= txn.TotalCollected {
		txn.Status = enum.TransactionStatusRefunded
	}

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}
