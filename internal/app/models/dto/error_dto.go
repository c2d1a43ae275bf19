package dto

// ErrorBody is the machine-readable error payload: a dotted key plus a
// description that is either a localized string or a field→messages map.
type ErrorBody struct {
	Key         string      `json:"key" example:"group.not_found"`
	Description interface{} `json:"description"`
}

// ErrorResponse is the uniform error envelope of the API
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds the error envelope for a key and description
func NewErrorResponse(key string, description interface{}) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Key: key, Description: description}}
}
