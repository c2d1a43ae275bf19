package models

import (
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// Grade defines an academic level containing one or more groups
type Grade struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Validate checks grade attributes
func (g *Grade) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if g.Name == "" {
		errs.Add("name", apperrors.MsgBlank)
	}
	return errs
}

// Group defines a class of students within a grade, staffed by role-tagged
// users through the 'user_groups' table.
type Group struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Year    string `json:"year" db:"year"`
	GradeID int64  `json:"gradeId" db:"grade_id"`

	// Relations (populated when needed)
	Grade *Grade `json:"grade,omitempty"`
}

// GradeName is a read-only projection through the owning grade, never
// persisted on the group row itself.
func (g *Group) GradeName() string {
	if g.Grade == nil {
		return ""
	}
	return g.Grade.Name
}

// Validate checks the group's own attributes and aggregates every violation.
func (g *Group) Validate() apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if g.Name == "" {
		errs.Add("name", apperrors.MsgBlank)
	}
	if g.Year == "" {
		errs.Add("year", apperrors.MsgBlank)
	}
	return errs
}

// Subgroup defines a named subdivision of a group
type Subgroup struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	GroupID int64  `json:"groupId" db:"group_id"`
}

// UserGroup links a user to a group with the role the user performs there.
// One row per (user, group); assignments carry no history.
type UserGroup struct {
	ID      int64 `json:"id" db:"id"`
	UserID  int64 `json:"userId" db:"user_id"`
	GroupID int64 `json:"groupId" db:"group_id"`
	RoleID  int64 `json:"roleId" db:"role_id"`
}
