package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// PaymentMethodJSON is the payment method projection
type PaymentMethodJSON struct {
	ID     int64  `json:"id"`
	Method string `json:"method"`
}

// PaymentMethod serializes a payment method
func PaymentMethod(p models.PaymentMethod) PaymentMethodJSON {
	return PaymentMethodJSON{ID: p.ID, Method: p.Method}
}

// PaymentMethods serializes a collection, empty slice for no rows
func PaymentMethods(methods []models.PaymentMethod) []PaymentMethodJSON {
	out := make([]PaymentMethodJSON, 0, len(methods))
	for _, p := range methods {
		out = append(out, PaymentMethod(p))
	}
	return out
}

// StudentPaymentMethodJSON is the student/payment-method/year projection
type StudentPaymentMethodJSON struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"student_id"`
	PaymentMethodID int64  `json:"payment_method_id"`
	Year            string `json:"year"`
}

// StudentPaymentMethod serializes the link record
func StudentPaymentMethod(m models.StudentPaymentMethod) StudentPaymentMethodJSON {
	return StudentPaymentMethodJSON{
		ID:              m.ID,
		StudentID:       m.StudentID,
		PaymentMethodID: m.PaymentMethodID,
		Year:            helpers.FormatDate(m.Year),
	}
}
