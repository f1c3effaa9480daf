package booking

import (
	"context"
	"errors"

	"sweepstack/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentRequest is the input to the opaque charge call.
type PaymentRequest struct {
	BookingID string
	Amount    float64
	Currency  string
	Method    string // "card" or "cash"
}

// PaymentHandler is the payment collaborator. The gateway behind it is out
// of scope; the core only needs a charge outcome it can record.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler handles card and cash charges.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
	}

	switch req.Method {
	case "card":
		// Gateway charge happens here; the reference it returns is all the
		// booking core keeps.
		inv.PaymentID = "pi_" + uuid.New().String()
		inv.Status = "paid"
		h.logger.Info("Card payment successful", zap.String("invoice", inv.InvoiceID))
	case "cash":
		// Cash settles on-site; the invoice stays pending.
		h.logger.Info("Cash payment recorded", zap.String("invoice", inv.InvoiceID))
	}
	return inv, nil
}

func validatePaymentRequest(req PaymentRequest) error {
	if req.Amount < 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
