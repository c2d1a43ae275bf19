package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/dberrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// StudentPaymentMethodService handles the student/payment-method/year links
type StudentPaymentMethodService struct {
	linkRepo          IStudentPaymentMethodRepository
	studentRepo       IStudentRepository
	paymentMethodRepo IPaymentMethodRepository
}

// NewStudentPaymentMethodService creates a new student payment method service instance
func NewStudentPaymentMethodService(linkRepo IStudentPaymentMethodRepository, studentRepo IStudentRepository, paymentMethodRepo IPaymentMethodRepository) *StudentPaymentMethodService {
	return &StudentPaymentMethodService{
		linkRepo:          linkRepo,
		studentRepo:       studentRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Create links a student to a payment method for a year. Both parents must
// resolve before any row is written.
func (s *StudentPaymentMethodService) Create(ctx context.Context, params dto.StudentPaymentMethodParams) (*models.StudentPaymentMethod, error) {
	link := &models.StudentPaymentMethod{}

	if params.StudentID != nil {
		link.StudentID = *params.StudentID
	}
	if params.PaymentMethodID != nil {
		link.PaymentMethodID = *params.PaymentMethodID
	}

	student, err := s.studentRepo.GetByID(ctx, link.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student")
	}

	method, err := s.paymentMethodRepo.GetByID(ctx, link.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperrors.NewNotFound("payment_method")
	}

	errs := apperrors.FieldErrors{}
	if params.Year != nil {
		year, err := helpers.ParseDate(*params.Year)
		if err != nil {
			errs.Add("year", apperrors.MsgInvalidDate)
		} else {
			link.Year = year
		}
	}

	errs.Merge(link.Validate())
	if err := s.checkTaken(ctx, link, 0, errs); err != nil {
		return nil, err
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("year", apperrors.MsgTaken)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return link, nil
}

// Update updates an existing link. Absent fields stay untouched.
func (s *StudentPaymentMethodService) Update(ctx context.Context, id int64, params dto.StudentPaymentMethodParams) (*models.StudentPaymentMethod, error) {
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperrors.NewNotFound("student_payment_method")
	}

	if params.StudentID != nil && *params.StudentID != link.StudentID {
		student, err := s.studentRepo.GetByID(ctx, *params.StudentID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperrors.NewNotFound("student")
		}
		link.StudentID = student.ID
	}
	if params.PaymentMethodID != nil && *params.PaymentMethodID != link.PaymentMethodID {
		method, err := s.paymentMethodRepo.GetByID(ctx, *params.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if method == nil {
			return nil, apperrors.NewNotFound("payment_method")
		}
		link.PaymentMethodID = method.ID
	}

	errs := apperrors.FieldErrors{}
	if params.Year != nil {
		year, err := helpers.ParseDate(*params.Year)
		if err != nil {
			errs.Add("year", apperrors.MsgInvalidDate)
		} else {
			link.Year = year
		}
	}

	errs.Merge(link.Validate())
	if err := s.checkTaken(ctx, link, link.ID, errs); err != nil {
		return nil, err
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.linkRepo.Update(ctx, link); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("year", apperrors.MsgTaken)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return link, nil
}

func (s *StudentPaymentMethodService) checkTaken(ctx context.Context, link *models.StudentPaymentMethod, excludeID int64, errs apperrors.FieldErrors) error {
	if link.Year == nil {
		return nil
	}
	taken, err := s.linkRepo.Taken(ctx, link.StudentID, link.PaymentMethodID, link.Year, excludeID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("year", apperrors.MsgTaken)
	}
	return nil
}
