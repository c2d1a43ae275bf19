package services

import (
	"context"
	"time"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// StudentService handles student operations
type StudentService struct {
	studentRepo IStudentRepository
	groupRepo   IGroupRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo IStudentRepository, groupRepo IGroupRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		groupRepo:   groupRepo,
	}
}

// Create creates a student from the permitted attribute set
func (s *StudentService) Create(ctx context.Context, params dto.StudentParams) (*models.Student, error) {
	student := &models.Student{}
	errs := apperrors.FieldErrors{}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyDate := func(dst **time.Time, src *string, field string) {
		if src == nil {
			return
		}
		date, err := helpers.ParseDate(*src)
		if err != nil {
			errs.Add(field, apperrors.MsgInvalidDate)
			return
		}
		*dst = date
	}

	applyString(&student.CI, params.CI)
	applyString(&student.Surname, params.Surname)
	applyString(&student.Name, params.Name)
	applyString(&student.Birthplace, params.Birthplace)
	applyString(&student.Nationality, params.Nationality)
	applyString(&student.ScheduleStart, params.ScheduleStart)
	applyString(&student.ScheduleEnd, params.ScheduleEnd)
	applyString(&student.Tuition, params.Tuition)
	applyString(&student.Office, params.Office)
	applyString(&student.FirstLanguage, params.FirstLanguage)
	applyString(&student.Address, params.Address)
	applyString(&student.Neighborhood, params.Neighborhood)
	applyString(&student.MedicalAssurance, params.MedicalAssurance)
	applyString(&student.Emergency, params.Emergency)
	applyString(&student.VaccineName, params.VaccineName)
	applyString(&student.PhoneNumber, params.PhoneNumber)
	applyString(&student.Contact, params.Contact)
	applyString(&student.ContactPhone, params.ContactPhone)
	applyString(&student.Email, params.Email)

	applyDate(&student.Birthdate, params.Birthdate, "birthdate")
	applyDate(&student.VaccineExpiration, params.VaccineExpiration, "vaccine_expiration")
	applyDate(&student.InscriptionDate, params.InscriptionDate, "inscription_date")
	applyDate(&student.StartingDate, params.StartingDate, "starting_date")

	if params.ReferenceNumber != nil {
		student.ReferenceNumber = *params.ReferenceNumber
	}
	if params.Status != nil {
		student.Status = models.StudentStatus(*params.Status)
	}

	errs.Merge(student.Validate())
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Get retrieves a student with the group loaded when assigned
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student")
	}

	if student.GroupID != nil {
		group, err := s.groupRepo.GetByID(ctx, *student.GroupID)
		if err != nil {
			return nil, err
		}
		student.Group = group
	}

	return student, nil
}
