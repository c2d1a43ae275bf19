package models

import "time"

// FamilyMember defines a relative linked to one or more students through the
// 'family_members_students' join table.
type FamilyMember struct {
	ID                     int64      `json:"id" db:"id"`
	CI                     string     `json:"ci" db:"ci"`
	Role                   string     `json:"role" db:"role"`
	FullName               string     `json:"fullName" db:"full_name"`
	Birthdate              *time.Time `json:"birthdate" db:"birthdate"`
	Birthplace             string     `json:"birthplace" db:"birthplace"`
	Nationality            string     `json:"nationality" db:"nationality"`
	FirstLanguage          string     `json:"firstLanguage" db:"first_language"`
	MaritalStatus          string     `json:"maritalStatus" db:"marital_status"`
	Cellphone              string     `json:"cellphone" db:"cellphone"`
	Email                  string     `json:"email" db:"email"`
	Address                string     `json:"address" db:"address"`
	Neighborhood           string     `json:"neighborhood" db:"neighborhood"`
	EducationLevel         string     `json:"educationLevel" db:"education_level"`
	Occupation             string     `json:"occupation" db:"occupation"`
	Workplace              string     `json:"workplace" db:"workplace"`
	WorkplaceNeighbourhood string     `json:"workplaceNeighbourhood" db:"workplace_neighbourhood"`
	WorkplacePhone         string     `json:"workplacePhone" db:"workplace_phone"`
}
