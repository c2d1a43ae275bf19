// Package serializers maps loaded entities to their fixed JSON attribute
// sets. Serializers hold no business logic; derived fields call the model's
// read-only accessors and collection fields always serialize as arrays,
// never null.
package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
)

// UserJSON is the short staff projection nested under groups and listings
type UserJSON struct {
	CI        string `json:"ci"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Birthdate string `json:"birthdate"`
	Address   string `json:"address"`
	Email     string `json:"email"`
}

// User serializes a staff member's identity fields
func User(u models.User) UserJSON {
	return UserJSON{
		CI:        u.CI,
		Name:      u.Name,
		Surname:   u.Surname,
		Birthdate: helpers.FormatDate(u.Birthdate),
		Address:   u.Address,
		Email:     u.Email,
	}
}

// Users serializes a collection, empty slice for no rows
func Users(users []models.User) []UserJSON {
	out := make([]UserJSON, 0, len(users))
	for _, u := range users {
		out = append(out, User(u))
	}
	return out
}

// DocumentJSON is a personal document projection
type DocumentJSON struct {
	ID           int64  `json:"id"`
	DocumentType string `json:"document_type"`
	UploadDate   string `json:"upload_date"`
}

// Document serializes a personal document
func Document(d models.Document) DocumentJSON {
	return DocumentJSON{
		ID:           d.ID,
		DocumentType: d.DocumentType,
		UploadDate:   helpers.FormatDate(d.UploadDate),
	}
}

// ComplementaryInformationJSON is a dated note projection
type ComplementaryInformationJSON struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ComplementaryInformation serializes a dated note
func ComplementaryInformation(c models.ComplementaryInformation) ComplementaryInformationJSON {
	return ComplementaryInformationJSON{
		ID:          c.ID,
		Date:        helpers.FormatDate(c.Date),
		Description: c.Description,
	}
}

// AbsenceJSON is an absence projection
type AbsenceJSON struct {
	ID        int64  `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Absence serializes an absence period
func Absence(a models.Absence) AbsenceJSON {
	return AbsenceJSON{
		ID:        a.ID,
		StartDate: helpers.FormatDate(a.StartDate),
		EndDate:   helpers.FormatDate(a.EndDate),
		Reason:    a.Reason,
	}
}

// MeJSON is the signed-in user's full projection including owned records
type MeJSON struct {
	UserJSON
	Documents                 []DocumentJSON                 `json:"documents"`
	ComplementaryInformations []ComplementaryInformationJSON `json:"complementary_informations"`
	Absences                  []AbsenceJSON                  `json:"absences"`
}

// Me serializes a user together with documents, notes and absences
func Me(u models.User) MeJSON {
	me := MeJSON{
		UserJSON:                  User(u),
		Documents:                 make([]DocumentJSON, 0, len(u.Documents)),
		ComplementaryInformations: make([]ComplementaryInformationJSON, 0, len(u.ComplementaryInformations)),
		Absences:                  make([]AbsenceJSON, 0, len(u.Absences)),
	}
	for _, d := range u.Documents {
		me.Documents = append(me.Documents, Document(d))
	}
	for _, c := range u.ComplementaryInformations {
		me.ComplementaryInformations = append(me.ComplementaryInformations, ComplementaryInformation(c))
	}
	for _, a := range u.Absences {
		me.Absences = append(me.Absences, Absence(a))
	}
	return me
}
