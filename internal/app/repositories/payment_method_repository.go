package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// PaymentMethodRepository handles database operations for payment methods
type PaymentMethodRepository struct {
	db *pgxpool.Pool
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db: db,
	}
}

// Create creates a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (method, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, method.Method).Scan(&method.ID)
}

// GetByID retrieves a payment method by ID
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	query := `
		SELECT id, method
		FROM payment_methods
		WHERE id = $1
	`

	var method models.PaymentMethod
	err := r.db.QueryRow(ctx, query, id).Scan(&method.ID, &method.Method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &method, nil
}

// GetAll retrieves all payment methods
func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]*models.PaymentMethod, error) {
	query := `
		SELECT id, method
		FROM payment_methods
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []*models.PaymentMethod
	for rows.Next() {
		var method models.PaymentMethod
		if err := rows.Scan(&method.ID, &method.Method); err != nil {
			return nil, err
		}
		methods = append(methods, &method)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
