package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// TypeScholarshipRepository handles database operations for scholarship categories
type TypeScholarshipRepository struct {
	db *pgxpool.Pool
}

// NewTypeScholarshipRepository creates a new type scholarship repository
func NewTypeScholarshipRepository(db *pgxpool.Pool) *TypeScholarshipRepository {
	return &TypeScholarshipRepository{
		db: db,
	}
}

// Create creates a new scholarship category
func (r *TypeScholarshipRepository) Create(ctx context.Context, ts *models.TypeScholarship) error {
	query := `
		INSERT INTO type_scholarships (scholarship, description, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, string(ts.Scholarship), ts.Description).Scan(&ts.ID)
}

// Update updates an existing scholarship category
func (r *TypeScholarshipRepository) Update(ctx context.Context, ts *models.TypeScholarship) error {
	query := `
		UPDATE type_scholarships
		SET scholarship = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, string(ts.Scholarship), ts.Description, ts.ID)
	return err
}

// GetByID retrieves a scholarship category by ID
func (r *TypeScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.TypeScholarship, error) {
	query := `
		SELECT id, scholarship, description
		FROM type_scholarships
		WHERE id = $1
	`

	var ts models.TypeScholarship
	err := r.db.QueryRow(ctx, query, id).Scan(&ts.ID, &ts.Scholarship, &ts.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ts, nil
}

// GetAll retrieves all scholarship categories
func (r *TypeScholarshipRepository) GetAll(ctx context.Context) ([]*models.TypeScholarship, error) {
	query := `
		SELECT id, scholarship, description
		FROM type_scholarships
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.TypeScholarship
	for rows.Next() {
		var ts models.TypeScholarship
		if err := rows.Scan(&ts.ID, &ts.Scholarship, &ts.Description); err != nil {
			return nil, err
		}
		list = append(list, &ts)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// PairTaken checks whether another category already uses the same
// scholarship/description pair
func (r *TypeScholarshipRepository) PairTaken(ctx context.Context, scholarship models.Scholarship, description string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM type_scholarships
			WHERE scholarship = $1 AND description = $2 AND id != $3
		)
	`

	var taken bool
	err := r.db.QueryRow(ctx, query, string(scholarship), description, excludeID).Scan(&taken)
	return taken, err
}
