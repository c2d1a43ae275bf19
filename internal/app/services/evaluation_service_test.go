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

type evaluationFixture struct {
	svc     *EvaluationService
	repo    *memory.EvaluationRepository
	group   *models.Group
	student *models.Student
}

func newEvaluationFixture(t *testing.T) *evaluationFixture {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewEvaluationRepository()
	studentRepo := memory.NewStudentRepository()
	groupRepo := memory.NewGroupRepository()

	group := &models.Group{Name: "A", Year: "2026", GradeID: 1}
	require.NoError(t, groupRepo.Create(ctx, group))

	student := &models.Student{CI: "45678901", Name: "Lucas", Surname: "Silva"}
	require.NoError(t, studentRepo.Create(ctx, student))

	return &evaluationFixture{
		svc:     NewEvaluationService(repo, studentRepo, groupRepo),
		repo:    repo,
		group:   group,
		student: student,
	}
}

func TestEvaluationServiceCreateIntermediate(t *testing.T) {
	ctx := context.Background()

	t.Run("records the period", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		eval, err := fx.svc.CreateIntermediate(ctx, fx.student.ID, dto.IntermediateEvaluationParams{
			GroupID:       int64ptr(fx.group.ID),
			StartingMonth: strptr("2026-03-01"),
			EndingMonth:   strptr("2026-06-30"),
			ReportCard:    strptr("muy buen semestre"),
		})
		require.NoError(t, err)
		assert.NotZero(t, eval.ID)
		assert.Equal(t, fx.student.ID, eval.StudentID)
		assert.Equal(t, "muy buen semestre", eval.ReportCard)
		require.Len(t, fx.repo.Intermediates, 1)
	})

	t.Run("unknown group resolves before the student", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateIntermediate(ctx, 999, dto.IntermediateEvaluationParams{
			GroupID: int64ptr(888),
		})
		assert.Equal(t, "group", notFoundEntity(t, err))
	})

	t.Run("unknown student", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateIntermediate(ctx, 999, dto.IntermediateEvaluationParams{
			GroupID: int64ptr(fx.group.ID),
		})
		assert.Equal(t, "student", notFoundEntity(t, err))
	})

	t.Run("missing months", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateIntermediate(ctx, fx.student.ID, dto.IntermediateEvaluationParams{
			GroupID: int64ptr(fx.group.ID),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["starting_month"])
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["ending_month"])
	})

	t.Run("invalid month", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateIntermediate(ctx, fx.student.ID, dto.IntermediateEvaluationParams{
			GroupID:       int64ptr(fx.group.ID),
			StartingMonth: strptr("marzo"),
			EndingMonth:   strptr("2026-06-30"),
		})
		errs := fieldErrors(t, err)
		assert.Contains(t, errs["starting_month"], apperrors.MsgInvalidDate)
	})
}

func TestEvaluationServiceCreateFinal(t *testing.T) {
	ctx := context.Background()

	t.Run("records the status with the group loaded", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		eval, err := fx.svc.CreateFinal(ctx, fx.student.ID, dto.FinalEvaluationParams{
			GroupID: int64ptr(fx.group.ID),
			Status:  strptr("promovido"),
		})
		require.NoError(t, err)
		assert.Equal(t, "promovido", eval.Status)
		require.NotNil(t, eval.Group)
		assert.Equal(t, "A", eval.GroupName())
		assert.Equal(t, "2026", eval.GroupYear())
		require.Len(t, fx.repo.Finals, 1)
	})

	t.Run("missing status", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateFinal(ctx, fx.student.ID, dto.FinalEvaluationParams{
			GroupID: int64ptr(fx.group.ID),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["status"])
	})

	t.Run("unknown group", func(t *testing.T) {
		fx := newEvaluationFixture(t)
		_, err := fx.svc.CreateFinal(ctx, fx.student.ID, dto.FinalEvaluationParams{
			GroupID: int64ptr(999),
			Status:  strptr("promovido"),
		})
		assert.Equal(t, "group", notFoundEntity(t, err))
	})
}
