package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/dberrors"
)

// TypeScholarshipService handles scholarship category operations
type TypeScholarshipService struct {
	typeScholarshipRepo ITypeScholarshipRepository
}

// NewTypeScholarshipService creates a new type scholarship service instance
func NewTypeScholarshipService(typeScholarshipRepo ITypeScholarshipRepository) *TypeScholarshipService {
	return &TypeScholarshipService{
		typeScholarshipRepo: typeScholarshipRepo,
	}
}

// List retrieves all scholarship categories
func (s *TypeScholarshipService) List(ctx context.Context) ([]*models.TypeScholarship, error) {
	return s.typeScholarshipRepo.GetAll(ctx)
}

// Create creates a scholarship category
func (s *TypeScholarshipService) Create(ctx context.Context, params dto.TypeScholarshipParams) (*models.TypeScholarship, error) {
	ts := &models.TypeScholarship{}
	if params.Scholarship != nil {
		ts.Scholarship = models.Scholarship(*params.Scholarship)
	}
	if params.Description.Set {
		ts.Description = params.Description.Value
	}

	errs := ts.Validate()
	if err := s.checkPair(ctx, ts, 0, errs); err != nil {
		return nil, err
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.typeScholarshipRepo.Create(ctx, ts); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("description", apperrors.MsgDuplicateAgreement)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return ts, nil
}

// Update updates a scholarship category. An explicit null description wipes
// the stored text; an absent key leaves it alone.
func (s *TypeScholarshipService) Update(ctx context.Context, id int64, params dto.TypeScholarshipParams) (*models.TypeScholarship, error) {
	ts, err := s.typeScholarshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, apperrors.NewNotFound("type_scholarship")
	}

	if params.Scholarship != nil {
		ts.Scholarship = models.Scholarship(*params.Scholarship)
	}
	if params.Description.Set {
		ts.Description = params.Description.Value
	}

	errs := ts.Validate()
	if err := s.checkPair(ctx, ts, ts.ID, errs); err != nil {
		return nil, err
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.typeScholarshipRepo.Update(ctx, ts); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("description", apperrors.MsgDuplicateAgreement)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return ts, nil
}

// checkPair enforces category-unique descriptions for the agreement-like
// kinds only
func (s *TypeScholarshipService) checkPair(ctx context.Context, ts *models.TypeScholarship, excludeID int64, errs apperrors.FieldErrors) error {
	if !ts.RequiresDescription() || ts.Description == "" {
		return nil
	}
	taken, err := s.typeScholarshipRepo.PairTaken(ctx, ts.Scholarship, ts.Description, excludeID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("description", apperrors.MsgDuplicateAgreement)
	}
	return nil
}
