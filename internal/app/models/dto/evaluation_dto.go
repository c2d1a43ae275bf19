package dto

// IntermediateEvaluationParams is the permitted attribute set for
// mid-period evaluations. The student id comes from the path, never the
// body.
type IntermediateEvaluationParams struct {
	GroupID       *int64  `json:"group_id"`
	StartingMonth *string `json:"starting_month"`
	EndingMonth   *string `json:"ending_month"`
	ReportCard    *string `json:"report_card"`
}

// CreateIntermediateEvaluationRequest carries the attributes under their
// root key
type CreateIntermediateEvaluationRequest struct {
	IntermediateEvaluation IntermediateEvaluationParams `json:"intermediate_evaluation"`
}

// FinalEvaluationParams is the permitted attribute set for end-of-year
// evaluations
type FinalEvaluationParams struct {
	GroupID *int64  `json:"group_id"`
	Status  *string `json:"status"`
}

// CreateFinalEvaluationRequest carries the attributes under their root key
type CreateFinalEvaluationRequest struct {
	FinalEvaluation FinalEvaluationParams `json:"final_evaluation"`
}
