package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// GradeService handles academic level operations
type GradeService struct {
	gradeRepo IGradeRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo IGradeRepository) *GradeService {
	return &GradeService{
		gradeRepo: gradeRepo,
	}
}

// List retrieves all grades
func (s *GradeService) List(ctx context.Context) ([]*models.Grade, error) {
	return s.gradeRepo.GetAll(ctx)
}

// Create creates a grade from the permitted attributes
func (s *GradeService) Create(ctx context.Context, params dto.GradeParams) (*models.Grade, error) {
	grade := &models.Grade{}
	if params.Name != nil {
		grade.Name = *params.Name
	}

	if errs := grade.Validate(); errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}
