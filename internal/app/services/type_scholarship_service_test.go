package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/repositories/memory"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

func setDescription(value string) dto.OptionalString {
	return dto.OptionalString{Set: true, Value: value}
}

func TestTypeScholarshipServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("plain category without description", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		ts, err := svc.Create(ctx, dto.TypeScholarshipParams{Scholarship: strptr("subsidized")})
		require.NoError(t, err)
		assert.Equal(t, models.ScholarshipSubsidized, ts.Scholarship)
		assert.Empty(t, ts.Description)
	})

	t.Run("unknown category name", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		_, err := svc.Create(ctx, dto.TypeScholarshipParams{Scholarship: strptr("otra")})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgNotIncluded}, errs["scholarship"])
	})

	t.Run("agreement requires a description", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		_, err := svc.Create(ctx, dto.TypeScholarshipParams{Scholarship: strptr("agreement")})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgDescriptionBlank}, errs["description"])
	})

	t.Run("duplicate agreement description", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		_, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgDuplicateAgreement}, errs["description"])
	})

	t.Run("same description across categories", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		_, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("bidding"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)
	})
}

func TestTypeScholarshipServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown category", func(t *testing.T) {
		svc := NewTypeScholarshipService(memory.NewTypeScholarshipRepository())
		_, err := svc.Update(ctx, 999, dto.TypeScholarshipParams{})
		assert.Equal(t, "type_scholarship", notFoundEntity(t, err))
	})

	t.Run("absent description stays untouched", func(t *testing.T) {
		repo := memory.NewTypeScholarshipRepository()
		svc := NewTypeScholarshipService(repo)
		created, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Club Nacional", updated.Description)
	})

	t.Run("explicit null wipes the description", func(t *testing.T) {
		repo := memory.NewTypeScholarshipRepository()
		svc := NewTypeScholarshipService(repo)
		created, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("subsidized"),
			Description: setDescription("a revisar"),
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, dto.TypeScholarshipParams{
			Description: setDescription(""),
		})
		require.NoError(t, err)
		assert.Empty(t, updated.Description)
	})

	t.Run("wiping an agreement description is invalid", func(t *testing.T) {
		repo := memory.NewTypeScholarshipRepository()
		svc := NewTypeScholarshipService(repo)
		created, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, dto.TypeScholarshipParams{
			Description: setDescription(""),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgDescriptionBlank}, errs["description"])
	})

	t.Run("keeping its own description is not a duplicate", func(t *testing.T) {
		repo := memory.NewTypeScholarshipRepository()
		svc := NewTypeScholarshipService(repo)
		created, err := svc.Create(ctx, dto.TypeScholarshipParams{
			Scholarship: strptr("agreement"),
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, dto.TypeScholarshipParams{
			Description: setDescription("Club Nacional"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Club Nacional", updated.Description)
	})
}
