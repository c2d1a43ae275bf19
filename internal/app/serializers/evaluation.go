package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// IntermediateEvaluationJSON is the mid-period evaluation projection
type IntermediateEvaluationJSON struct {
	ID            int64  `json:"id"`
	StudentID     int64  `json:"student_id"`
	GroupID       int64  `json:"group_id"`
	StartingMonth string `json:"starting_month"`
	EndingMonth   string `json:"ending_month"`
	ReportCard    string `json:"report_card"`
}

// IntermediateEvaluation serializes a mid-period evaluation
func IntermediateEvaluation(e models.IntermediateEvaluation) IntermediateEvaluationJSON {
	return IntermediateEvaluationJSON{
		ID:            e.ID,
		StudentID:     e.StudentID,
		GroupID:       e.GroupID,
		StartingMonth: helpers.FormatDate(e.StartingMonth),
		EndingMonth:   helpers.FormatDate(e.EndingMonth),
		ReportCard:    e.ReportCard,
	}
}

// FinalEvaluationJSON is the end-of-year evaluation projection. Group name
// and year derive from the owning group.
type FinalEvaluationJSON struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name"`
	Year      string `json:"year"`
	Status    string `json:"status"`
}

// FinalEvaluation serializes an end-of-year evaluation with the derived
// group fields
func FinalEvaluation(e models.FinalEvaluation) FinalEvaluationJSON {
	return FinalEvaluationJSON{
		ID:        e.ID,
		StudentID: e.StudentID,
		GroupID:   e.GroupID,
		GroupName: e.GroupName(),
		Year:      e.GroupYear(),
		Status:    e.Status,
	}
}
