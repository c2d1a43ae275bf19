package models

import (
	"time"

	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// Student defines the student model based on the 'students' table. A student
// belongs to at most one group at a time.
type Student struct {
	ID                int64         `json:"id" db:"id"`
	CI                string        `json:"ci" db:"ci"`
	Surname           string        `json:"surname" db:"surname"`
	Name              string        `json:"name" db:"name"`
	ScheduleStart     string        `json:"scheduleStart" db:"schedule_start"`
	ScheduleEnd       string        `json:"scheduleEnd" db:"schedule_end"`
	Tuition           string        `json:"tuition" db:"tuition"`
	ReferenceNumber   int           `json:"referenceNumber" db:"reference_number"`
	Birthplace        string        `json:"birthplace" db:"birthplace"`
	Birthdate         *time.Time    `json:"birthdate" db:"birthdate"`
	Nationality       string        `json:"nationality" db:"nationality"`
	FirstLanguage     string        `json:"firstLanguage" db:"first_language"`
	Office            string        `json:"office" db:"office"`
	Status            StudentStatus `json:"status" db:"status"`
	Address           string        `json:"address" db:"address"`
	Neighborhood      string        `json:"neighborhood" db:"neighborhood"`
	MedicalAssurance  string        `json:"medicalAssurance" db:"medical_assurance"`
	Emergency         string        `json:"emergency" db:"emergency"`
	PhoneNumber       string        `json:"phoneNumber" db:"phone_number"`
	VaccineName       string        `json:"vaccineName" db:"vaccine_name"`
	VaccineExpiration *time.Time    `json:"vaccineExpiration" db:"vaccine_expiration"`
	InscriptionDate   *time.Time    `json:"inscriptionDate" db:"inscription_date"`
	StartingDate      *time.Time    `json:"startingDate" db:"starting_date"`
	Contact           string        `json:"contact" db:"contact"`
	ContactPhone      string        `json:"contactPhone" db:"contact_phone"`
	Email             string        `json:"email" db:"email"`
	GroupID           *int64        `json:"groupId" db:"group_id"`

	// Relations (populated when needed)
	Group *Group `json:"group,omitempty"`
}

// Validate checks the student's attributes and aggregates every violation.
func (s *Student) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if s.CI == "" {
		errs.Add("ci", apperrors.MsgBlank)
	}
	if s.Name == "" {
		errs.Add("name", apperrors.MsgBlank)
	}
	if s.Surname == "" {
		errs.Add("surname", apperrors.MsgBlank)
	}
	return errs
}
