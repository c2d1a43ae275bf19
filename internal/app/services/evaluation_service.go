package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// EvaluationService handles student evaluation operations
type EvaluationService struct {
	evaluationRepo IEvaluationRepository
	studentRepo    IStudentRepository
	groupRepo      IGroupRepository
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService(evaluationRepo IEvaluationRepository, studentRepo IStudentRepository, groupRepo IGroupRepository) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		studentRepo:    studentRepo,
		groupRepo:      groupRepo,
	}
}

// resolveParents checks the referenced group and student, group first
func (s *EvaluationService) resolveParents(ctx context.Context, groupID, studentID int64) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NewNotFound("group")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student")
	}

	return group, nil
}

// CreateIntermediate records a mid-period evaluation for a student. The
// student id comes from the path and overrides anything in the body.
func (s *EvaluationService) CreateIntermediate(ctx context.Context, studentID int64, params dto.IntermediateEvaluationParams) (*models.IntermediateEvaluation, error) {
	eval := &models.IntermediateEvaluation{StudentID: studentID}
	if params.GroupID != nil {
		eval.GroupID = *params.GroupID
	}

	if _, err := s.resolveParents(ctx, eval.GroupID, studentID); err != nil {
		return nil, err
	}

	errs := apperrors.FieldErrors{}
	if params.StartingMonth != nil {
		date, err := helpers.ParseDate(*params.StartingMonth)
		if err != nil {
			errs.Add("starting_month", apperrors.MsgInvalidDate)
		} else {
			eval.StartingMonth = date
		}
	}
	if params.EndingMonth != nil {
		date, err := helpers.ParseDate(*params.EndingMonth)
		if err != nil {
			errs.Add("ending_month", apperrors.MsgInvalidDate)
		} else {
			eval.EndingMonth = date
		}
	}
	if params.ReportCard != nil {
		eval.ReportCard = *params.ReportCard
	}

	errs.Merge(eval.Validate())
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.evaluationRepo.CreateIntermediate(ctx, eval); err != nil {
		return nil, err
	}

	return eval, nil
}

// CreateFinal records the end-of-year status for a student in a group
func (s *EvaluationService) CreateFinal(ctx context.Context, studentID int64, params dto.FinalEvaluationParams) (*models.FinalEvaluation, error) {
	eval := &models.FinalEvaluation{StudentID: studentID}
	if params.GroupID != nil {
		eval.GroupID = *params.GroupID
	}

	group, err := s.resolveParents(ctx, eval.GroupID, studentID)
	if err != nil {
		return nil, err
	}

	if params.Status != nil {
		eval.Status = *params.Status
	}

	if errs := eval.Validate(); errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.evaluationRepo.CreateFinal(ctx, eval); err != nil {
		return nil, err
	}

	eval.Group = group
	return eval, nil
}
