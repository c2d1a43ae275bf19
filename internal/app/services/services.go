package services

import (
	"context"
	"time"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/repositories"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

// Repository interfaces consumed by the services. The pgx repositories
// satisfy them; tests substitute in-memory fakes.

// IUserRepository defines the user-related store operations
type IUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordDigest string) error
	CIExists(ctx context.Context, ci string, excludeID int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	ListByRole(ctx context.Context, role models.RoleName) ([]*models.User, error)
	CreateDocument(ctx context.Context, doc *models.Document) error
	ListDocuments(ctx context.Context, userID int64) ([]*models.Document, error)
	CreateComplementaryInformation(ctx context.Context, info *models.ComplementaryInformation) error
	ListComplementaryInformations(ctx context.Context, userID int64) ([]*models.ComplementaryInformation, error)
	CreateAbsence(ctx context.Context, absence *models.Absence) error
	ListAbsences(ctx context.Context, userID int64) ([]*models.Absence, error)
}

// IGradeRepository defines the grade store operations
type IGradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
}

// IGroupRepository defines the group store operations
type IGroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetAll(ctx context.Context) ([]*models.Group, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Group, error)
	NameTaken(ctx context.Context, gradeID int64, name string, excludeID int64) (bool, error)
	GetMembers(ctx context.Context, groupID int64, role models.RoleName) ([]*models.User, error)
}

// IStudentRepository defines the student store operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error)
}

// IPaymentMethodRepository defines the payment method store operations
type IPaymentMethodRepository interface {
	Create(ctx context.Context, method *models.PaymentMethod) error
	GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error)
	GetAll(ctx context.Context) ([]*models.PaymentMethod, error)
}

// IStudentPaymentMethodRepository defines the store operations for the
// student/payment-method/year links
type IStudentPaymentMethodRepository interface {
	Create(ctx context.Context, link *models.StudentPaymentMethod) error
	Update(ctx context.Context, link *models.StudentPaymentMethod) error
	GetByID(ctx context.Context, id int64) (*models.StudentPaymentMethod, error)
	Taken(ctx context.Context, studentID, paymentMethodID int64, year *time.Time, excludeID int64) (bool, error)
}

// ITypeScholarshipRepository defines the scholarship category store operations
type ITypeScholarshipRepository interface {
	Create(ctx context.Context, ts *models.TypeScholarship) error
	Update(ctx context.Context, ts *models.TypeScholarship) error
	GetByID(ctx context.Context, id int64) (*models.TypeScholarship, error)
	GetAll(ctx context.Context) ([]*models.TypeScholarship, error)
	PairTaken(ctx context.Context, scholarship models.Scholarship, description string, excludeID int64) (bool, error)
}

// IEvaluationRepository defines the evaluation store operations
type IEvaluationRepository interface {
	CreateIntermediate(ctx context.Context, eval *models.IntermediateEvaluation) error
	CreateFinal(ctx context.Context, eval *models.FinalEvaluation) error
}

// Services holds all the service instances
type Services struct {
	AuthService                 *AuthService
	GradeService                *GradeService
	GroupService                *GroupService
	MeService                   *MeService
	StudentService              *StudentService
	PaymentMethodService        *PaymentMethodService
	StudentPaymentMethodService *StudentPaymentMethodService
	TypeScholarshipService      *TypeScholarshipService
	EvaluationService           *EvaluationService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	groupService := NewGroupService(repos.GroupRepository, repos.GradeRepository, repos.StudentRepository)
	return &Services{
		AuthService:                 NewAuthService(repos.UserRepository, jwtService),
		GradeService:                NewGradeService(repos.GradeRepository),
		GroupService:                groupService,
		MeService:                   NewMeService(repos.UserRepository, groupService),
		StudentService:              NewStudentService(repos.StudentRepository, repos.GroupRepository),
		PaymentMethodService:        NewPaymentMethodService(repos.PaymentMethodRepository),
		StudentPaymentMethodService: NewStudentPaymentMethodService(repos.StudentPaymentMethodRepository, repos.StudentRepository, repos.PaymentMethodRepository),
		TypeScholarshipService:      NewTypeScholarshipService(repos.TypeScholarshipRepository),
		EvaluationService:           NewEvaluationService(repos.EvaluationRepository, repos.StudentRepository, repos.GroupRepository),
	}
}
