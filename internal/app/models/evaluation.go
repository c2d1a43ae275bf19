package models

import (
	"time"

	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// IntermediateEvaluation is a mid-period report for a student in a group
type IntermediateEvaluation struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	GroupID       int64      `json:"groupId" db:"group_id"`
	StartingMonth *time.Time `json:"startingMonth" db:"starting_month"`
	EndingMonth   *time.Time `json:"endingMonth" db:"ending_month"`
	ReportCard    string     `json:"reportCard" db:"report_card"`
}

// Validate checks the evaluation's own attributes
func (e *IntermediateEvaluation) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if e.StartingMonth == nil {
		errs.Add("starting_month", apperrors.MsgBlank)
	}
	if e.EndingMonth == nil {
		errs.Add("ending_month", apperrors.MsgBlank)
	}
	return errs
}

// FinalEvaluation is the end-of-year status for a student in a group. Group
// name and year are projections through the owning group, never persisted.
type FinalEvaluation struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	GroupID   int64  `json:"groupId" db:"group_id"`
	Status    string `json:"status" db:"status"`

	// Relations (populated when needed)
	Group *Group `json:"group,omitempty"`
}

// GroupName projects the owning group's name
func (e *FinalEvaluation) GroupName() string {
	if e.Group == nil {
		return ""
	}
	return e.Group.Name
}

// GroupYear projects the owning group's year
func (e *FinalEvaluation) GroupYear() string {
	if e.Group == nil {
		return ""
	}
	return e.Group.Year
}

// Validate checks the evaluation's own attributes
func (e *FinalEvaluation) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if e.Status == "" {
		errs.Add("status", apperrors.MsgBlank)
	}
	return errs
}
