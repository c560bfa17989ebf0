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

// CheckoutHandler handles point-of-sale HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

type checkoutItemRequest struct {
	Kind      string     `json:"kind"`
	Name      string     `json:"name" binding:"required,min=1,max=255"`
	ServiceID *uuid.UUID `json:"service_id"`
	StaffID   *uuid.UUID `json:"staff_id"`
	Quantity  int        `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64    `json:"unit_price" binding:"gte=0"`
	Discount  *float64   `json:"discount"`
	UnitCost  *float64   `json:"unit_cost"`
}

// Checkout handles ringing up a sale
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req struct {
		AppointmentID         *uuid.UUID            `json:"appointment_id"`
		CustomerID            *uuid.UUID            `json:"customer_id"`
		Items                 []checkoutItemRequest `json:"items"`
		TipTotal              float64               `json:"tip_total" binding:"gte=0"`
		PaymentMethod         enum.PaymentMethod    `json:"payment_method"`
		StripePaymentMethodID string                `json:"stripe_payment_method_id"`
		TransactionDate       *time.Time            `json:"transaction_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			Kind:      item.Kind,
			Name:      item.Name,
			ServiceID: item.ServiceID,
			StaffID:   item.StaffID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			UnitCost:  item.UnitCost,
		})
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		AppointmentID:         req.AppointmentID,
		CustomerID:            req.CustomerID,
		Items:                 items,
		TipTotal:              req.TipTotal,
		PaymentMethod:         req.PaymentMethod,
		StripePaymentMethodID: req.StripePaymentMethodID,
		TransactionDate:       req.TransactionDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", txn)
}

// Get handles retrieving a single transaction
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.checkoutService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// List handles listing transactions
func (h *CheckoutHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	var customerID *uuid.UUID
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &id
	}

	result, err := h.checkoutService.ListTransactions(c.Request.Context(), params, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Refund handles refunding a transaction
func (h *CheckoutHandler) Refund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"gte=0"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	txn, err := h.checkoutService.Refund(c.Request.Context(), &service.RefundInput{
		TransactionID: id,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Refund processed successfully", txn)
}
