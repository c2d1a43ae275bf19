package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	GradeRepository                *GradeRepository
	GroupRepository                *GroupRepository
	StudentRepository              *StudentRepository
	PaymentMethodRepository        *PaymentMethodRepository
	StudentPaymentMethodRepository *StudentPaymentMethodRepository
	TypeScholarshipRepository      *TypeScholarshipRepository
	EvaluationRepository           *EvaluationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(db),
		GradeRepository:                NewGradeRepository(db),
		GroupRepository:                NewGroupRepository(db),
		StudentRepository:              NewStudentRepository(db),
		PaymentMethodRepository:        NewPaymentMethodRepository(db),
		StudentPaymentMethodRepository: NewStudentPaymentMethodRepository(db),
		TypeScholarshipRepository:      NewTypeScholarshipRepository(db),
		EvaluationRepository:           NewEvaluationRepository(db),
	}
}
