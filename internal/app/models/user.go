package models

import (
	"time"

	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// User defines a staff member based on the 'users' table. Teachers,
// principals and support teachers are all users; the distinction lives in
// role assignments.
type User struct {
	ID             int64      `json:"id" db:"id"`
	CI             string     `json:"ci" db:"ci"`
	Name           string     `json:"name" db:"name"`
	Surname        string     `json:"surname" db:"surname"`
	Birthdate      *time.Time `json:"birthdate" db:"birthdate"`
	Address        string     `json:"address" db:"address"`
	Email          string     `json:"email" db:"email"`
	PasswordDigest string     `json:"-" db:"password_digest"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	// Owned records (populated when needed)
	Documents                 []Document                 `json:"documents,omitempty"`
	ComplementaryInformations []ComplementaryInformation `json:"complementaryInformations,omitempty"`
	Absences                  []Absence                  `json:"absences,omitempty"`
}

// Validate checks the user's own attributes and aggregates every violation.
func (u *User) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if u.CI == "" {
		errs.Add("ci", apperrors.MsgBlank)
	} else if len(u.CI) < 8 {
		errs.Add("ci", apperrors.MsgTooShortCI)
	}
	if u.Name == "" {
		errs.Add("name", apperrors.MsgBlank)
	}
	if u.Surname == "" {
		errs.Add("surname", apperrors.MsgBlank)
	}
	if u.Email == "" {
		errs.Add("email", apperrors.MsgBlank)
	}
	return errs
}

// ValidatePasswordChange checks a password pair before it is hashed.
func ValidatePasswordChange(password, confirmation string) apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if password == "" {
		errs.Add("password", apperrors.MsgBlank)
	} else if len(password) < 6 {
		errs.Add("password", apperrors.MsgTooShortPassword)
	}
	if confirmation != password {
		errs.Add("password_confirmation", apperrors.MsgConfirmationMismatch)
	}
	return errs
}

// Document defines a dated personal document owned by a user
type Document struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	DocumentType string     `json:"documentType" db:"document_type"`
	UploadDate   *time.Time `json:"uploadDate" db:"upload_date"`
}

// Validate checks document attributes
func (d *Document) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if d.DocumentType == "" {
		errs.Add("document_type", apperrors.MsgBlank)
	}
	return errs
}

// ComplementaryInformation defines a dated free-text note owned by a user
type ComplementaryInformation struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Date        *time.Time `json:"date" db:"date"`
	Description string     `json:"description" db:"description"`
}

// Validate checks complementary information attributes
func (c *ComplementaryInformation) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if c.Description == "" {
		errs.Add("description", apperrors.MsgBlank)
	}
	return errs
}

// Absence defines a user's absence period
type Absence struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	StartDate *time.Time `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate" db:"end_date"`
	Reason    string     `json:"reason" db:"reason"`
}

// Validate checks absence attributes
func (a *Absence) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if a.StartDate == nil {
		errs.Add("start_date", apperrors.MsgBlank)
	}
	if a.EndDate == nil {
		errs.Add("end_date", apperrors.MsgBlank)
	}
	if a.Reason == "" {
		errs.Add("reason", apperrors.MsgBlank)
	}
	return errs
}
