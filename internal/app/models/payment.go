package models

import (
	"time"

	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// PaymentMethod defines a way tuition can be paid
type PaymentMethod struct {
	ID     int64  `json:"id" db:"id"`
	Method string `json:"method" db:"method"`
}

// Validate checks payment method attributes
func (p *PaymentMethod) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if p.Method == "" {
		errs.Add("method", apperrors.MsgBlank)
	}
	return errs
}

// StudentPaymentMethod links a student to a payment method for a given year.
// The triple (student, payment method, year) must be unique; the check runs
// at validation time and is backed by a store unique constraint.
type StudentPaymentMethod struct {
	ID              int64      `json:"id" db:"id"`
	StudentID       int64      `json:"studentId" db:"student_id"`
	PaymentMethodID int64      `json:"paymentMethodId" db:"payment_method_id"`
	Year            *time.Time `json:"year" db:"year"`
}

// Validate checks the record's own attributes
func (m *StudentPaymentMethod) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if m.Year == nil {
		errs.Add("year", apperrors.MsgBlank)
	}
	return errs
}
