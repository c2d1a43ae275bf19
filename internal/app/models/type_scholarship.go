package models

import (
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// TypeScholarship defines a scholarship category with a free-text
// description. Description is stored as an empty string when absent, never
// null.
type TypeScholarship struct {
	ID          int64       `json:"id" db:"id"`
	Scholarship Scholarship `json:"scholarship" db:"scholarship"`
	Description string      `json:"description" db:"description"`
}

// RequiresDescription reports whether the category is an agreement-like kind
// ("convenio") that must carry a non-blank, category-unique description.
func (t *TypeScholarship) RequiresDescription() bool {
	return t.Scholarship == ScholarshipBidding || t.Scholarship == ScholarshipAgreement
}

// Validate checks the record's own attributes and aggregates every violation.
func (t *TypeScholarship) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if t.Scholarship == "" {
		errs.Add("scholarship", apperrors.MsgBlank)
	} else if !ValidScholarship(t.Scholarship) {
		errs.Add("scholarship", apperrors.MsgNotIncluded)
	}
	if t.RequiresDescription() && t.Description == "" {
		errs.Add("description", apperrors.MsgDescriptionBlank)
	}
	return errs
}
