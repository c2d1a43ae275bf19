package dto

// StudentParams is the explicit allow-list for student writes. Every date
// travels as a YYYY-MM-DD string.
type StudentParams struct {
	CI                *string `json:"ci"`
	Surname           *string `json:"surname"`
	Name              *string `json:"name"`
	Birthplace        *string `json:"birthplace"`
	Birthdate         *string `json:"birthdate"`
	Nationality       *string `json:"nationality"`
	ScheduleStart     *string `json:"schedule_start"`
	ScheduleEnd       *string `json:"schedule_end"`
	Tuition           *string `json:"tuition"`
	ReferenceNumber   *int    `json:"reference_number"`
	Office            *string `json:"office"`
	Status            *int    `json:"status"`
	FirstLanguage     *string `json:"first_language"`
	Address           *string `json:"address"`
	Neighborhood      *string `json:"neighborhood"`
	MedicalAssurance  *string `json:"medical_assurance"`
	Emergency         *string `json:"emergency"`
	VaccineName       *string `json:"vaccine_name"`
	VaccineExpiration *string `json:"vaccine_expiration"`
	PhoneNumber       *string `json:"phone_number"`
	InscriptionDate   *string `json:"inscription_date"`
	StartingDate      *string `json:"starting_date"`
	Contact           *string `json:"contact"`
	ContactPhone      *string `json:"contact_phone"`
	Email             *string `json:"email"`
}

// CreateStudentRequest carries student attributes under the student root key
type CreateStudentRequest struct {
	Student StudentParams `json:"student"`
}
