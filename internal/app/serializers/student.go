package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// StudentJSON is the student projection. The group reference appears only
// when the student is assigned to one.
type StudentJSON struct {
	ID                int64         `json:"id"`
	CI                string        `json:"ci"`
	Surname           string        `json:"surname"`
	Name              string        `json:"name"`
	Birthplace        string        `json:"birthplace"`
	Birthdate         string        `json:"birthdate"`
	Nationality       string        `json:"nationality"`
	ScheduleStart     string        `json:"schedule_start"`
	ScheduleEnd       string        `json:"schedule_end"`
	Tuition           string        `json:"tuition"`
	ReferenceNumber   int           `json:"reference_number"`
	Office            string        `json:"office"`
	Status            int           `json:"status"`
	FirstLanguage     string        `json:"first_language"`
	Address           string        `json:"address"`
	Neighborhood      string        `json:"neighborhood"`
	MedicalAssurance  string        `json:"medical_assurance"`
	Emergency         string        `json:"emergency"`
	VaccineName       string        `json:"vaccine_name"`
	VaccineExpiration string        `json:"vaccine_expiration"`
	PhoneNumber       string        `json:"phone_number"`
	InscriptionDate   string        `json:"inscription_date"`
	StartingDate      string        `json:"starting_date"`
	Contact           string        `json:"contact"`
	ContactPhone      string        `json:"contact_phone"`
	Email             string        `json:"email"`
	Group             *GroupRefJSON `json:"group,omitempty"`
}

// Student serializes a student, nesting the group reference when loaded
func Student(s models.Student) StudentJSON {
	out := StudentJSON{
		ID:                s.ID,
		CI:                s.CI,
		Surname:           s.Surname,
		Name:              s.Name,
		Birthplace:        s.Birthplace,
		Birthdate:         helpers.FormatDate(s.Birthdate),
		Nationality:       s.Nationality,
		ScheduleStart:     s.ScheduleStart,
		ScheduleEnd:       s.ScheduleEnd,
		Tuition:           s.Tuition,
		ReferenceNumber:   s.ReferenceNumber,
		Office:            s.Office,
		Status:            int(s.Status),
		FirstLanguage:     s.FirstLanguage,
		Address:           s.Address,
		Neighborhood:      s.Neighborhood,
		MedicalAssurance:  s.MedicalAssurance,
		Emergency:         s.Emergency,
		VaccineName:       s.VaccineName,
		VaccineExpiration: helpers.FormatDate(s.VaccineExpiration),
		PhoneNumber:       s.PhoneNumber,
		InscriptionDate:   helpers.FormatDate(s.InscriptionDate),
		StartingDate:      helpers.FormatDate(s.StartingDate),
		Contact:           s.Contact,
		ContactPhone:      s.ContactPhone,
		Email:             s.Email,
	}
	if s.Group != nil {
		ref := GroupRef(*s.Group)
		out.Group = &ref
	}
	return out
}

// Students serializes a collection, empty slice for no rows
func Students(students []models.Student) []StudentJSON {
	out := make([]StudentJSON, 0, len(students))
	for _, s := range students {
		out = append(out, Student(s))
	}
	return out
}
