package dto

// TypeScholarshipParams is the permitted attribute set for scholarship
// categories. Description uses OptionalString so an explicit null wipes the
// stored text to an empty string.
type TypeScholarshipParams struct {
	Scholarship *string        `json:"scholarship"`
	Description OptionalString `json:"description"`
}

// CreateTypeScholarshipRequest carries the attributes under their root key
type CreateTypeScholarshipRequest struct {
	TypeScholarship TypeScholarshipParams `json:"type_scholarship"`
}

// UpdateTypeScholarshipRequest mirrors the create request for updates
type UpdateTypeScholarshipRequest struct {
	TypeScholarship TypeScholarshipParams `json:"type_scholarship"`
}
