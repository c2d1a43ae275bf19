package dto

// PaymentMethodParams is the permitted attribute set for payment methods
type PaymentMethodParams struct {
	Method *string `json:"method"`
}

// CreatePaymentMethodRequest carries the payment method root key
type CreatePaymentMethodRequest struct {
	PaymentMethod PaymentMethodParams `json:"payment_method"`
}

// StudentPaymentMethodParams is the permitted attribute set for the
// student/payment-method/year link. Year travels as a YYYY-MM-DD string.
type StudentPaymentMethodParams struct {
	StudentID       *int64  `json:"student_id"`
	PaymentMethodID *int64  `json:"payment_method_id"`
	Year            *string `json:"year"`
}

// CreateStudentPaymentMethodRequest carries the link attributes under their
// root key
type CreateStudentPaymentMethodRequest struct {
	StudentPaymentMethod StudentPaymentMethodParams `json:"student_payment_method"`
}

// UpdateStudentPaymentMethodRequest mirrors the create request for updates
type UpdateStudentPaymentMethodRequest struct {
	StudentPaymentMethod StudentPaymentMethodParams `json:"student_payment_method"`
}
