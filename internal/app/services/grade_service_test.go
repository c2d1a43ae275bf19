package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/repositories/memory"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

func TestGradeServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewGradeService(memory.NewGradeRepository())

	grade, err := svc.Create(ctx, dto.GradeParams{Name: strptr("Primero")})
	require.NoError(t, err)
	assert.NotZero(t, grade.ID)

	_, err = svc.Create(ctx, dto.GradeParams{})
	errs := fieldErrors(t, err)
	assert.Equal(t, []string{apperrors.MsgBlank}, errs["name"])

	grades, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, grades, 1)
}

func TestPaymentMethodServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewPaymentMethodService(memory.NewPaymentMethodRepository())

	method, err := svc.Create(ctx, dto.PaymentMethodParams{Method: strptr("contado")})
	require.NoError(t, err)
	assert.NotZero(t, method.ID)

	_, err = svc.Create(ctx, dto.PaymentMethodParams{})
	errs := fieldErrors(t, err)
	assert.Equal(t, []string{apperrors.MsgBlank}, errs["method"])

	methods, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 1)
}
