package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Authentication errors
var (
	ErrRequiredSignedIn = errors.New("required signed in")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrInvalidFormat    = errors.New("invalid token format")
)

// Validation messages, localized the way the API reports them.
const (
	MsgBlank                = "no puede estar en blanco"
	MsgTaken                = "ya está en uso"
	MsgTooShortCI           = "es demasiado corto (8 caracteres mínimo)"
	MsgTooShortPassword     = "es demasiado corto (6 caracteres mínimo)"
	MsgConfirmationMismatch = "no coincide"
	MsgDescriptionBlank     = "la descripcion no puede estar vacía"
	MsgDuplicateAgreement   = "no pueden haber dos convenios iguales"
	MsgInvalidDate          = "no es una fecha válida"
	MsgNotIncluded          = "no está incluido en la lista"
)

// DescRequiredSignedIn is the human readable text accompanying the
// forbidden.required_signed_in key.
const DescRequiredSignedIn = "Debes iniciar sesión para continuar"

// notFoundDescriptions maps an entity name to the localized description used
// in its <entity>.not_found error body.
var notFoundDescriptions = map[string]string{
	"user":                   "no se encontró el usuario",
	"student":                "no se encontró el alumno",
	"grade":                  "no se encontró el grado",
	"group":                  "no se encontró el grupo",
	"payment_method":         "no se encontró el método de pago",
	"student_payment_method": "no se encontró el método de pago del alumno",
	"type_scholarship":       "no se encontró el tipo de beca",
}

// NotFoundDescription returns the localized description for an entity's
// not-found error.
func NotFoundDescription(entity string) string {
	if desc, ok := notFoundDescriptions[entity]; ok {
		return desc
	}
	return "no se encontró el recurso"
}

// NotFoundError signals that a referenced entity does not exist. The entity
// name is the snake_case resource name used in the error key.
type NotFoundError struct {
	Entity string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Key returns the dotted error key for the response body.
func (e *NotFoundError) Key() string {
	return e.Entity + ".not_found"
}

// NewNotFound creates a NotFoundError for the given entity
func NewNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// FieldErrors accumulates validation messages per field. Every violated
// invariant of a write is collected here before the request is answered,
// never just the first one.
type FieldErrors map[string][]string

// Add appends a message to a field, skipping exact duplicates.
func (f FieldErrors) Add(field, message string) {
	for _, m := range f[field] {
		if m == message {
			return
		}
	}
	f[field] = append(f[field], message)
}

// Merge copies every message from other into f.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		for _, m := range messages {
			f.Add(field, m)
		}
	}
}

// Any reports whether at least one violation was recorded.
func (f FieldErrors) Any() bool {
	return len(f) > 0
}

// RecordInvalidError carries the aggregated validation failures of a write.
type RecordInvalidError struct {
	Fields FieldErrors
}

// Error implements the error interface
func (e *RecordInvalidError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("record invalid: %s", strings.Join(fields, ", "))
}

// NewRecordInvalid wraps field errors into a RecordInvalidError
func NewRecordInvalid(fields FieldErrors) error {
	return &RecordInvalidError{Fields: fields}
}
