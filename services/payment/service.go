package payment

import (
	"context"
	"fmt"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

// PreferenceRequest describes the checkout the SPA wants to open. The
// portal only creates the Mercado Pago preference and passes its identifier
// through; the hosted widget renders the checkout.
type PreferenceRequest struct {
	AppointmentID string  `json:"appointmentId" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency"`
	PayerEmail    string  `json:"payerEmail"`
}

// PaymentService creates checkout preferences.
type PaymentService interface {
	CreateCheckoutPreference(ctx context.Context, req PreferenceRequest) (*models.PaymentPreference, error)
}

// DefaultPaymentService implements PaymentService on the Mercado Pago SDK.
type DefaultPaymentService struct {
	preferences preference.Client
	logger      *zap.Logger
}

// NewPaymentService builds the Mercado Pago client from the access token.
func NewPaymentService(accessToken string) (*DefaultPaymentService, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to configure mercado pago client: %w", err)
	}
	return &DefaultPaymentService{
		preferences: preference.NewClient(cfg),
		logger:      utils.GetLogger(),
	}, nil
}

func (s *DefaultPaymentService) CreateCheckoutPreference(ctx context.Context, req PreferenceRequest) (*models.PaymentPreference, error) {
	currency := req.Currency
	if currency == "" {
		currency = "ARS"
	}

	mpReq := preference.Request{
		ExternalReference: req.AppointmentID,
		Items: []preference.ItemRequest{
			{
				ID:         req.AppointmentID,
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: currency,
			},
		},
	}
	if req.PayerEmail != "" {
		mpReq.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resource, err := s.preferences.Create(ctx, mpReq)
	if err != nil {
		s.logger.Error("failed to create checkout preference",
			zap.String("appointmentID", req.AppointmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout preference: %w", err)
	}

	return &models.PaymentPreference{
		PreferenceID:  resource.ID,
		InitPoint:     resource.InitPoint,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Currency:      currency,
		CreatedAt:     time.Now(),
	}, nil
}
