package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// EvaluationRepository handles database operations for student evaluations
type EvaluationRepository struct {
	db *pgxpool.Pool
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
	}
}

// CreateIntermediate creates a new intermediate evaluation
func (r *EvaluationRepository) CreateIntermediate(ctx context.Context, eval *models.IntermediateEvaluation) error {
	query := `
		INSERT INTO intermediate_evaluations (student_id, group_id, starting_month, ending_month, report_card, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		eval.StudentID,
		eval.GroupID,
		eval.StartingMonth,
		eval.EndingMonth,
		eval.ReportCard,
	).Scan(&eval.ID)
}

// CreateFinal creates a new final evaluation
func (r *EvaluationRepository) CreateFinal(ctx context.Context, eval *models.FinalEvaluation) error {
	query := `
		INSERT INTO final_evaluations (student_id, group_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, eval.StudentID, eval.GroupID, eval.Status).Scan(&eval.ID)
}
