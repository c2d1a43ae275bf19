package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
	"github.com/colegio-app/colegio-backend/internal/pkg/dberrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// MeService handles operations on the signed-in user
type MeService struct {
	userRepo     IUserRepository
	groupService *GroupService
}

// NewMeService creates a new me service instance
func NewMeService(userRepo IUserRepository, groupService *GroupService) *MeService {
	return &MeService{
		userRepo:     userRepo,
		groupService: groupService,
	}
}

// Get retrieves the signed-in user with every owned record loaded
func (s *MeService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	docs, err := s.userRepo.ListDocuments(ctx, userID)
	if err != nil {
		return nil, err
	}
	infos, err := s.userRepo.ListComplementaryInformations(ctx, userID)
	if err != nil {
		return nil, err
	}
	absences, err := s.userRepo.ListAbsences(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Documents = make([]models.Document, 0, len(docs))
	for _, d := range docs {
		user.Documents = append(user.Documents, *d)
	}
	user.ComplementaryInformations = make([]models.ComplementaryInformation, 0, len(infos))
	for _, i := range infos {
		user.ComplementaryInformations = append(user.ComplementaryInformations, *i)
	}
	user.Absences = make([]models.Absence, 0, len(absences))
	for _, a := range absences {
		user.Absences = append(user.Absences, *a)
	}

	return user, nil
}

// Update applies the permitted profile attributes. Absent fields stay
// untouched.
func (s *MeService) Update(ctx context.Context, userID int64, params dto.UserParams) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	errs := apperrors.FieldErrors{}
	if params.CI != nil {
		user.CI = *params.CI
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Surname != nil {
		user.Surname = *params.Surname
	}
	if params.Address != nil {
		user.Address = *params.Address
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Birthdate != nil {
		birthdate, err := helpers.ParseDate(*params.Birthdate)
		if err != nil {
			errs.Add("birthdate", apperrors.MsgInvalidDate)
		} else {
			user.Birthdate = birthdate
		}
	}

	errs.Merge(user.Validate())
	if user.CI != "" {
		taken, err := s.userRepo.CIExists(ctx, user.CI, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("ci", apperrors.MsgTaken)
		}
	}
	if user.Email != "" {
		taken, err := s.userRepo.EmailExists(ctx, user.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("email", apperrors.MsgTaken)
		}
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("email", apperrors.MsgTaken)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return user, nil
}

// UpdatePassword replaces the signed-in user's password after checking the
// confirmation pair
func (s *MeService) UpdatePassword(ctx context.Context, userID int64, params dto.PasswordParams) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	if errs := models.ValidatePasswordChange(params.Password, params.PasswordConfirmation); errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	digest, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, digest); err != nil {
		return nil, err
	}

	return user, nil
}

// AddDocument attaches a personal document to the signed-in user
func (s *MeService) AddDocument(ctx context.Context, userID int64, params dto.DocumentParams) (*models.Document, error) {
	doc := &models.Document{UserID: userID}
	errs := apperrors.FieldErrors{}

	if params.DocumentType != nil {
		doc.DocumentType = *params.DocumentType
	}
	if params.UploadDate != nil {
		date, err := helpers.ParseDate(*params.UploadDate)
		if err != nil {
			errs.Add("upload_date", apperrors.MsgInvalidDate)
		} else {
			doc.UploadDate = date
		}
	}

	errs.Merge(doc.Validate())
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.userRepo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// AddComplementaryInformation attaches a dated note to the signed-in user
func (s *MeService) AddComplementaryInformation(ctx context.Context, userID int64, params dto.ComplementaryInformationParams) (*models.ComplementaryInformation, error) {
	info := &models.ComplementaryInformation{UserID: userID}
	errs := apperrors.FieldErrors{}

	if params.Description != nil {
		info.Description = *params.Description
	}
	if params.Date != nil {
		date, err := helpers.ParseDate(*params.Date)
		if err != nil {
			errs.Add("date", apperrors.MsgInvalidDate)
		} else {
			info.Date = date
		}
	}

	errs.Merge(info.Validate())
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.userRepo.CreateComplementaryInformation(ctx, info); err != nil {
		return nil, err
	}

	return info, nil
}

// AddAbsence attaches an absence period to the signed-in user
func (s *MeService) AddAbsence(ctx context.Context, userID int64, params dto.AbsenceParams) (*models.Absence, error) {
	absence := &models.Absence{UserID: userID}
	errs := apperrors.FieldErrors{}

	if params.Reason != nil {
		absence.Reason = *params.Reason
	}
	if params.StartDate != nil {
		date, err := helpers.ParseDate(*params.StartDate)
		if err != nil {
			errs.Add("start_date", apperrors.MsgInvalidDate)
		} else {
			absence.StartDate = date
		}
	}
	if params.EndDate != nil {
		date, err := helpers.ParseDate(*params.EndDate)
		if err != nil {
			errs.Add("end_date", apperrors.MsgInvalidDate)
		} else {
			absence.EndDate = date
		}
	}

	errs.Merge(absence.Validate())
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.userRepo.CreateAbsence(ctx, absence); err != nil {
		return nil, err
	}

	return absence, nil
}

// Groups retrieves the groups the signed-in user is assigned to
func (s *MeService) Groups(ctx context.Context, userID int64) ([]GroupDetail, error) {
	return s.groupService.ListByUser(ctx, userID)
}

// GroupStudents retrieves one of the user's groups with its students
func (s *MeService) GroupStudents(ctx context.Context, groupID int64) (*models.Group, []models.Student, error) {
	return s.groupService.Students(ctx, groupID)
}

// Teachers retrieves every teacher with the groups each works in
func (s *MeService) Teachers(ctx context.Context) ([]TeacherDetail, error) {
	teachers, err := s.userRepo.ListByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	return s.groupService.teacherDetails(ctx, teachers)
}
