package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// TypeScholarshipJSON is the scholarship category projection
type TypeScholarshipJSON struct {
	ID          int64  `json:"id"`
	Scholarship string `json:"scholarship"`
	Description string `json:"description"`
}

// TypeScholarship serializes a scholarship category
func TypeScholarship(t models.TypeScholarship) TypeScholarshipJSON {
	return TypeScholarshipJSON{
		ID:          t.ID,
		Scholarship: string(t.Scholarship),
		Description: t.Description,
	}
}

// TypeScholarships serializes a collection, empty slice for no rows
func TypeScholarships(records []models.TypeScholarship) []TypeScholarshipJSON {
	out := make([]TypeScholarshipJSON, 0, len(records))
	for _, t := range records {
		out = append(out, TypeScholarship(t))
	}
	return out
}
