package dto

// UserParams is the permitted attribute set for profile updates
type UserParams struct {
	CI        *string `json:"ci"`
	Name      *string `json:"name"`
	Surname   *string `json:"surname"`
	Birthdate *string `json:"birthdate"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
}

// UpdateMeRequest carries profile attributes under the user root key
type UpdateMeRequest struct {
	User UserParams `json:"user"`
}

// PasswordParams is the password change pair
type PasswordParams struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UpdatePasswordRequest carries the password pair under the user root key
type UpdatePasswordRequest struct {
	User PasswordParams `json:"user"`
}

// DocumentParams is the permitted attribute set for personal documents
type DocumentParams struct {
	DocumentType *string `json:"document_type"`
	UploadDate   *string `json:"upload_date"`
}

// CreateDocumentRequest creates a personal document for the signed-in user
type CreateDocumentRequest struct {
	Document DocumentParams `json:"document"`
}

// ComplementaryInformationParams is the permitted attribute set for notes
type ComplementaryInformationParams struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// CreateComplementaryInformationRequest creates a dated note for the
// signed-in user
type CreateComplementaryInformationRequest struct {
	ComplementaryInformation ComplementaryInformationParams `json:"complementary_information"`
}

// AbsenceParams is the permitted attribute set for absences
type AbsenceParams struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason"`
}

// CreateAbsenceRequest creates an absence for the signed-in user
type CreateAbsenceRequest struct {
	Absence AbsenceParams `json:"absence"`
}
