package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// StudentPaymentMethodRepository handles database operations for the
// student/payment-method/year links
type StudentPaymentMethodRepository struct {
	db *pgxpool.Pool
}

// NewStudentPaymentMethodRepository creates a new student payment method repository
func NewStudentPaymentMethodRepository(db *pgxpool.Pool) *StudentPaymentMethodRepository {
	return &StudentPaymentMethodRepository{
		db: db,
	}
}

// Create creates a new student payment method link
func (r *StudentPaymentMethodRepository) Create(ctx context.Context, link *models.StudentPaymentMethod) error {
	query := `
		INSERT INTO student_payment_methods (student_id, payment_method_id, year, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, link.StudentID, link.PaymentMethodID, link.Year).Scan(&link.ID)
}

// Update updates an existing link
func (r *StudentPaymentMethodRepository) Update(ctx context.Context, link *models.StudentPaymentMethod) error {
	query := `
		UPDATE student_payment_methods
		SET student_id = $1, payment_method_id = $2, year = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, link.StudentID, link.PaymentMethodID, link.Year, link.ID)
	return err
}

// GetByID retrieves a link by ID
func (r *StudentPaymentMethodRepository) GetByID(ctx context.Context, id int64) (*models.StudentPaymentMethod, error) {
	query := `
		SELECT id, student_id, payment_method_id, year
		FROM student_payment_methods
		WHERE id = $1
	`

	var link models.StudentPaymentMethod
	err := r.db.QueryRow(ctx, query, id).Scan(
		&link.ID,
		&link.StudentID,
		&link.PaymentMethodID,
		&link.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &link, nil
}

// Taken checks whether another link already covers the same student, payment
// method and year
func (r *StudentPaymentMethodRepository) Taken(ctx context.Context, studentID, paymentMethodID int64, year *time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM student_payment_methods
			WHERE student_id = $1 AND payment_method_id = $2 AND year = $3 AND id != $4
		)
	`

	var taken bool
	err := r.db.QueryRow(ctx, query, studentID, paymentMethodID, year, excludeID).Scan(&taken)
	return taken, err
}
