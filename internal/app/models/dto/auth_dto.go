package dto

// LoginRequest carries the sign-in credentials under the user root key
type LoginRequest struct {
	User LoginParams `json:"user" binding:"required"`
}

// LoginParams is the credential pair
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
