// Package memory provides in-memory repositories backed by plain slices and
// maps. They satisfy the service repository interfaces and back the test
// suites; nothing here touches a database.
package memory

import (
	"context"
	"time"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// UserRepository is an in-memory user store
type UserRepository struct {
	Users    []*models.User
	Docs     []*models.Document
	Infos    []*models.ComplementaryInformation
	Absences []*models.Absence

	// Roles maps a user id to the user's global role.
	Roles map[int64]models.RoleName

	nextID int64
}

// NewUserRepository creates an empty in-memory user store
func NewUserRepository() *UserRepository {
	return &UserRepository{Roles: make(map[int64]models.RoleName)}
}

// Add stores a user and assigns it an id
func (r *UserRepository) Add(user *models.User) *models.User {
	r.nextID++
	user.ID = r.nextID
	r.Users = append(r.Users, user)
	return user
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.Users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.Users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, user *models.User) error {
	for i, u := range r.Users {
		if u.ID == user.ID {
			out := *user
			r.Users[i] = &out
			return nil
		}
	}
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID int64, digest string) error {
	for _, u := range r.Users {
		if u.ID == userID {
			u.PasswordDigest = digest
		}
	}
	return nil
}

func (r *UserRepository) CIExists(_ context.Context, ci string, excludeID int64) (bool, error) {
	for _, u := range r.Users {
		if u.CI == ci && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range r.Users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) ListByRole(_ context.Context, role models.RoleName) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range r.Users {
		if r.Roles[u.ID] == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepository) CreateDocument(_ context.Context, doc *models.Document) error {
	r.nextID++
	doc.ID = r.nextID
	cp := *doc
	r.Docs = append(r.Docs, &cp)
	return nil
}

func (r *UserRepository) ListDocuments(_ context.Context, userID int64) ([]*models.Document, error) {
	out := []*models.Document{}
	for _, d := range r.Docs {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepository) CreateComplementaryInformation(_ context.Context, info *models.ComplementaryInformation) error {
	r.nextID++
	info.ID = r.nextID
	cp := *info
	r.Infos = append(r.Infos, &cp)
	return nil
}

func (r *UserRepository) ListComplementaryInformations(_ context.Context, userID int64) ([]*models.ComplementaryInformation, error) {
	out := []*models.ComplementaryInformation{}
	for _, i := range r.Infos {
		if i.UserID == userID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepository) CreateAbsence(_ context.Context, absence *models.Absence) error {
	r.nextID++
	absence.ID = r.nextID
	cp := *absence
	r.Absences = append(r.Absences, &cp)
	return nil
}

func (r *UserRepository) ListAbsences(_ context.Context, userID int64) ([]*models.Absence, error) {
	out := []*models.Absence{}
	for _, a := range r.Absences {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// GradeRepository is an in-memory grade store
type GradeRepository struct {
	Grades []*models.Grade
	nextID int64
}

// NewGradeRepository creates an empty in-memory grade store
func NewGradeRepository() *GradeRepository {
	return &GradeRepository{}
}

func (r *GradeRepository) Create(_ context.Context, grade *models.Grade) error {
	r.nextID++
	grade.ID = r.nextID
	cp := *grade
	r.Grades = append(r.Grades, &cp)
	return nil
}

func (r *GradeRepository) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	for _, g := range r.Grades {
		if g.ID == id {
			out := *g
			return &out, nil
		}
	}
	return nil, nil
}

func (r *GradeRepository) GetAll(_ context.Context) ([]*models.Grade, error) {
	out := []*models.Grade{}
	for _, g := range r.Grades {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

// GroupRepository is an in-memory group store with role-tagged memberships
type GroupRepository struct {
	Groups  []*models.Group
	Members map[int64]map[models.RoleName][]*models.User
	ByUser  map[int64][]int64
	nextID  int64
}

// NewGroupRepository creates an empty in-memory group store
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		Members: make(map[int64]map[models.RoleName][]*models.User),
		ByUser:  make(map[int64][]int64),
	}
}

// Assign adds a user to a group under a role
func (r *GroupRepository) Assign(user *models.User, groupID int64, role models.RoleName) {
	if r.Members[groupID] == nil {
		r.Members[groupID] = make(map[models.RoleName][]*models.User)
	}
	r.Members[groupID][role] = append(r.Members[groupID][role], user)
	r.ByUser[user.ID] = append(r.ByUser[user.ID], groupID)
}

func (r *GroupRepository) Create(_ context.Context, group *models.Group) error {
	r.nextID++
	group.ID = r.nextID
	cp := *group
	r.Groups = append(r.Groups, &cp)
	return nil
}

func (r *GroupRepository) Update(_ context.Context, group *models.Group) error {
	for i, g := range r.Groups {
		if g.ID == group.ID {
			cp := *group
			r.Groups[i] = &cp
		}
	}
	return nil
}

func (r *GroupRepository) GetByID(_ context.Context, id int64) (*models.Group, error) {
	for _, g := range r.Groups {
		if g.ID == id {
			out := *g
			return &out, nil
		}
	}
	return nil, nil
}

func (r *GroupRepository) GetAll(_ context.Context) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, g := range r.Groups {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (r *GroupRepository) GetByUser(_ context.Context, userID int64) ([]*models.Group, error) {
	out := []*models.Group{}
	for _, id := range r.ByUser[userID] {
		for _, g := range r.Groups {
			if g.ID == id {
				cp := *g
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *GroupRepository) NameTaken(_ context.Context, gradeID int64, name string, excludeID int64) (bool, error) {
	for _, g := range r.Groups {
		if g.GradeID == gradeID && g.Name == name && g.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *GroupRepository) GetMembers(_ context.Context, groupID int64, role models.RoleName) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range r.Members[groupID][role] {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// StudentRepository is an in-memory student store
type StudentRepository struct {
	Students []*models.Student
	nextID   int64
}

// NewStudentRepository creates an empty in-memory student store
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

func (r *StudentRepository) Create(_ context.Context, student *models.Student) error {
	r.nextID++
	student.ID = r.nextID
	cp := *student
	r.Students = append(r.Students, &cp)
	return nil
}

func (r *StudentRepository) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range r.Students {
		if s.ID == id {
			out := *s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *StudentRepository) GetByGroup(_ context.Context, groupID int64) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range r.Students {
		if s.GroupID != nil && *s.GroupID == groupID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// PaymentMethodRepository is an in-memory payment method store
type PaymentMethodRepository struct {
	Methods []*models.PaymentMethod
	nextID  int64
}

// NewPaymentMethodRepository creates an empty in-memory payment method store
func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{}
}

func (r *PaymentMethodRepository) Create(_ context.Context, method *models.PaymentMethod) error {
	r.nextID++
	method.ID = r.nextID
	cp := *method
	r.Methods = append(r.Methods, &cp)
	return nil
}

func (r *PaymentMethodRepository) GetByID(_ context.Context, id int64) (*models.PaymentMethod, error) {
	for _, m := range r.Methods {
		if m.ID == id {
			out := *m
			return &out, nil
		}
	}
	return nil, nil
}

func (r *PaymentMethodRepository) GetAll(_ context.Context) ([]*models.PaymentMethod, error) {
	out := []*models.PaymentMethod{}
	for _, m := range r.Methods {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// StudentPaymentMethodRepository is an in-memory store for the
// student/payment-method/year links
type StudentPaymentMethodRepository struct {
	Links  []*models.StudentPaymentMethod
	nextID int64
}

// NewStudentPaymentMethodRepository creates an empty in-memory link store
func NewStudentPaymentMethodRepository() *StudentPaymentMethodRepository {
	return &StudentPaymentMethodRepository{}
}

func (r *StudentPaymentMethodRepository) Create(_ context.Context, link *models.StudentPaymentMethod) error {
	r.nextID++
	link.ID = r.nextID
	cp := *link
	r.Links = append(r.Links, &cp)
	return nil
}

func (r *StudentPaymentMethodRepository) Update(_ context.Context, link *models.StudentPaymentMethod) error {
	for i, l := range r.Links {
		if l.ID == link.ID {
			cp := *link
			r.Links[i] = &cp
		}
	}
	return nil
}

func (r *StudentPaymentMethodRepository) GetByID(_ context.Context, id int64) (*models.StudentPaymentMethod, error) {
	for _, l := range r.Links {
		if l.ID == id {
			out := *l
			return &out, nil
		}
	}
	return nil, nil
}

func (r *StudentPaymentMethodRepository) Taken(_ context.Context, studentID, paymentMethodID int64, year *time.Time, excludeID int64) (bool, error) {
	for _, l := range r.Links {
		if l.ID == excludeID || l.StudentID != studentID || l.PaymentMethodID != paymentMethodID {
			continue
		}
		if l.Year != nil && year != nil && l.Year.Equal(*year) {
			return true, nil
		}
	}
	return false, nil
}

// TypeScholarshipRepository is an in-memory scholarship category store
type TypeScholarshipRepository struct {
	Items  []*models.TypeScholarship
	nextID int64
}

// NewTypeScholarshipRepository creates an empty in-memory category store
func NewTypeScholarshipRepository() *TypeScholarshipRepository {
	return &TypeScholarshipRepository{}
}

func (r *TypeScholarshipRepository) Create(_ context.Context, ts *models.TypeScholarship) error {
	r.nextID++
	ts.ID = r.nextID
	cp := *ts
	r.Items = append(r.Items, &cp)
	return nil
}

func (r *TypeScholarshipRepository) Update(_ context.Context, ts *models.TypeScholarship) error {
	for i, item := range r.Items {
		if item.ID == ts.ID {
			cp := *ts
			r.Items[i] = &cp
		}
	}
	return nil
}

func (r *TypeScholarshipRepository) GetByID(_ context.Context, id int64) (*models.TypeScholarship, error) {
	for _, item := range r.Items {
		if item.ID == id {
			out := *item
			return &out, nil
		}
	}
	return nil, nil
}

func (r *TypeScholarshipRepository) GetAll(_ context.Context) ([]*models.TypeScholarship, error) {
	out := []*models.TypeScholarship{}
	for _, item := range r.Items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *TypeScholarshipRepository) PairTaken(_ context.Context, scholarship models.Scholarship, description string, excludeID int64) (bool, error) {
	for _, item := range r.Items {
		if item.ID != excludeID && item.Scholarship == scholarship && item.Description == description {
			return true, nil
		}
	}
	return false, nil
}

// EvaluationRepository is an in-memory evaluation store
type EvaluationRepository struct {
	Intermediates []*models.IntermediateEvaluation
	Finals        []*models.FinalEvaluation
	nextID        int64
}

// NewEvaluationRepository creates an empty in-memory evaluation store
func NewEvaluationRepository() *EvaluationRepository {
	return &EvaluationRepository{}
}

func (r *EvaluationRepository) CreateIntermediate(_ context.Context, eval *models.IntermediateEvaluation) error {
	r.nextID++
	eval.ID = r.nextID
	cp := *eval
	r.Intermediates = append(r.Intermediates, &cp)
	return nil
}

func (r *EvaluationRepository) CreateFinal(_ context.Context, eval *models.FinalEvaluation) error {
	r.nextID++
	eval.ID = r.nextID
	cp := *eval
	r.Finals = append(r.Finals, &cp)
	return nil
}
