package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

func strptr(s string) *string { return &s }

func int64ptr(i int64) *int64 { return &i }

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &d
}

// fieldErrors unwraps a validation failure and returns its per-field
// messages.
func fieldErrors(t *testing.T, err error) apperrors.FieldErrors {
	t.Helper()
	var invalid *apperrors.RecordInvalidError
	require.ErrorAs(t, err, &invalid)
	return invalid.Fields
}

// notFoundEntity unwraps a missing-record failure and returns the entity
// name it carries.
func notFoundEntity(t *testing.T, err error) string {
	t.Helper()
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	return notFound.Entity
}
