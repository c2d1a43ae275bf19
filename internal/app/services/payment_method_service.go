package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// PaymentMethodService handles payment method operations
type PaymentMethodService struct {
	paymentMethodRepo IPaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service instance
func NewPaymentMethodService(paymentMethodRepo IPaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{
		paymentMethodRepo: paymentMethodRepo,
	}
}

// List retrieves all payment methods
func (s *PaymentMethodService) List(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.paymentMethodRepo.GetAll(ctx)
}

// Create creates a payment method from the permitted attributes
func (s *PaymentMethodService) Create(ctx context.Context, params dto.PaymentMethodParams) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{}
	if params.Method != nil {
		method.Method = *params.Method
	}

	if errs := method.Validate(); errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, err
	}

	return method, nil
}
