package serializers

import (
	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// GradeJSON is the grade projection
type GradeJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Grade serializes an academic level
func Grade(g models.Grade) GradeJSON {
	return GradeJSON{ID: g.ID, Name: g.Name}
}

// Grades serializes a collection, empty slice for no rows
func Grades(grades []models.Grade) []GradeJSON {
	out := make([]GradeJSON, 0, len(grades))
	for _, g := range grades {
		out = append(out, Grade(g))
	}
	return out
}

// GroupRefJSON is the flat group projection with the derived grade name
type GroupRefJSON struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Year      string `json:"year"`
	GradeName string `json:"grade_name"`
}

// GroupRef serializes a group with its derived grade name
func GroupRef(g models.Group) GroupRefJSON {
	return GroupRefJSON{
		ID:        g.ID,
		Name:      g.Name,
		Year:      g.Year,
		GradeName: g.GradeName(),
	}
}

// GroupJSON is the full group projection with nested grade and the staff
// assigned per role
type GroupJSON struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Year            string     `json:"year"`
	Grade           GradeJSON  `json:"grade"`
	Teachers        []UserJSON `json:"teachers"`
	Principals      []UserJSON `json:"principals"`
	SupportTeachers []UserJSON `json:"support_teachers"`
}

// Group serializes a group with its grade and role-tagged staff
func Group(g models.Group, teachers, principals, supportTeachers []models.User) GroupJSON {
	out := GroupJSON{
		ID:              g.ID,
		Name:            g.Name,
		Year:            g.Year,
		Teachers:        Users(teachers),
		Principals:      Users(principals),
		SupportTeachers: Users(supportTeachers),
	}
	if g.Grade != nil {
		out.Grade = Grade(*g.Grade)
	}
	return out
}

// TeacherJSON is a staff member with every group the member teaches in
type TeacherJSON struct {
	UserJSON
	Groups []GroupJSON `json:"groups"`
}

// Teacher serializes a staff member with serialized groups
func Teacher(u models.User, groups []GroupJSON) TeacherJSON {
	if groups == nil {
		groups = make([]GroupJSON, 0)
	}
	return TeacherJSON{UserJSON: User(u), Groups: groups}
}

// GroupStudentsJSON is a group with its enrolled students
type GroupStudentsJSON struct {
	GroupRefJSON
	Students []StudentJSON `json:"students"`
}

// GroupStudents serializes a group together with its students
func GroupStudents(g models.Group, students []models.Student) GroupStudentsJSON {
	return GroupStudentsJSON{
		GroupRefJSON: GroupRef(g),
		Students:     Students(students),
	}
}
