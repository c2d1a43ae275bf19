package services

import (
	"context"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/dberrors"
)

// GroupDetail bundles a group with its staff split by role
type GroupDetail struct {
	Group           models.Group
	Teachers        []models.User
	Principals      []models.User
	SupportTeachers []models.User
}

// TeacherDetail bundles a teacher with every group the teacher works in
type TeacherDetail struct {
	User   models.User
	Groups []GroupDetail
}

// GroupService handles group operations
type GroupService struct {
	groupRepo   IGroupRepository
	gradeRepo   IGradeRepository
	studentRepo IStudentRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo IGroupRepository, gradeRepo IGradeRepository, studentRepo IStudentRepository) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
	}
}

// List retrieves all groups with their staff
func (s *GroupService) List(ctx context.Context) ([]GroupDetail, error) {
	groups, err := s.groupRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]GroupDetail, 0, len(groups))
	for _, group := range groups {
		detail, err := s.buildDetail(ctx, *group)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}

// ListByUser retrieves the groups a user is assigned to, with their staff
func (s *GroupService) ListByUser(ctx context.Context, userID int64) ([]GroupDetail, error) {
	groups, err := s.groupRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]GroupDetail, 0, len(groups))
	for _, group := range groups {
		detail, err := s.buildDetail(ctx, *group)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}

func (s *GroupService) buildDetail(ctx context.Context, group models.Group) (GroupDetail, error) {
	detail := GroupDetail{Group: group}

	teachers, err := s.groupRepo.GetMembers(ctx, group.ID, models.RoleTeacher)
	if err != nil {
		return detail, err
	}
	principals, err := s.groupRepo.GetMembers(ctx, group.ID, models.RolePrincipal)
	if err != nil {
		return detail, err
	}
	supportTeachers, err := s.groupRepo.GetMembers(ctx, group.ID, models.RoleSupportTeacher)
	if err != nil {
		return detail, err
	}

	detail.Teachers = deref(teachers)
	detail.Principals = deref(principals)
	detail.SupportTeachers = deref(supportTeachers)
	return detail, nil
}

func deref(users []*models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, *u)
	}
	return out
}

// Create creates a group under a grade. The grade must resolve before any
// row is written.
func (s *GroupService) Create(ctx context.Context, gradeID int64, params dto.GroupParams) (*models.Group, error) {
	grade, err := s.gradeRepo.GetByID(ctx, gradeID)
	if err != nil {
		return nil, err
	}
	if grade == nil {
		return nil, apperrors.NewNotFound("grade")
	}

	group := &models.Group{GradeID: grade.ID, Grade: grade}
	if params.Name != nil {
		group.Name = *params.Name
	}
	if params.Year != nil {
		group.Year = *params.Year
	}

	errs := group.Validate()
	if group.Name != "" {
		taken, err := s.groupRepo.NameTaken(ctx, group.GradeID, group.Name, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("name", apperrors.MsgTaken)
		}
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("name", apperrors.MsgTaken)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return group, nil
}

// Update updates a group's attributes. Absent fields stay untouched.
func (s *GroupService) Update(ctx context.Context, groupID, gradeID int64, params dto.GroupParams) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NewNotFound("group")
	}

	if gradeID != 0 && gradeID != group.GradeID {
		grade, err := s.gradeRepo.GetByID(ctx, gradeID)
		if err != nil {
			return nil, err
		}
		if grade == nil {
			return nil, apperrors.NewNotFound("grade")
		}
		group.GradeID = grade.ID
		group.Grade = grade
	}

	if params.Name != nil {
		group.Name = *params.Name
	}
	if params.Year != nil {
		group.Year = *params.Year
	}

	errs := group.Validate()
	if group.Name != "" {
		taken, err := s.groupRepo.NameTaken(ctx, group.GradeID, group.Name, group.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("name", apperrors.MsgTaken)
		}
	}
	if errs.Any() {
		return nil, apperrors.NewRecordInvalid(errs)
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		if dberrors.IsUniqueViolation(err) {
			errs.Add("name", apperrors.MsgTaken)
			return nil, apperrors.NewRecordInvalid(errs)
		}
		return nil, err
	}

	return group, nil
}

// Students retrieves the students currently assigned to a group
func (s *GroupService) Students(ctx context.Context, groupID int64) (*models.Group, []models.Student, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, apperrors.NewNotFound("group")
	}

	students, err := s.studentRepo.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	out := make([]models.Student, 0, len(students))
	for _, st := range students {
		st.Group = group
		out = append(out, *st)
	}

	return group, out, nil
}

// Teachers retrieves the teachers of a group, each carrying every group the
// teacher is assigned to
func (s *GroupService) Teachers(ctx context.Context, groupID int64) ([]TeacherDetail, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NewNotFound("group")
	}

	teachers, err := s.groupRepo.GetMembers(ctx, groupID, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	return s.teacherDetails(ctx, teachers)
}

func (s *GroupService) teacherDetails(ctx context.Context, teachers []*models.User) ([]TeacherDetail, error) {
	details := make([]TeacherDetail, 0, len(teachers))
	for _, teacher := range teachers {
		groups, err := s.ListByUser(ctx, teacher.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, TeacherDetail{User: *teacher, Groups: groups})
	}
	return details, nil
}
