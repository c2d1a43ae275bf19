package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentCreate(t *testing.T) {
	t.Run("creates a student", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/students", map[string]interface{}{
			"student": map[string]interface{}{
				"ci":               "45678901",
				"name":             "Lucas",
				"surname":          "Silva",
				"birthdate":        "2015-09-20",
				"reference_number": 42,
				"status":           1,
			},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		student := body["student"].(map[string]interface{})
		assert.Equal(t, "Lucas", student["name"])
		assert.Equal(t, "2015-09-20", student["birthdate"])
		assert.Equal(t, float64(42), student["reference_number"])
		assert.Equal(t, float64(1), student["status"])
		assert.NotContains(t, student, "group")
	})

	t.Run("missing identity fields answer every failure", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/students", map[string]interface{}{
			"student": map[string]interface{}{},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		key, description := errorBody(t, rec)
		assert.Equal(t, "record_invalid", key)
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "ci"))
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "name"))
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "surname"))
	})

	t.Run("unparseable birthdate", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/students", map[string]interface{}{
			"student": map[string]interface{}{
				"ci": "45678901", "name": "Lucas", "surname": "Silva", "birthdate": "hace poco",
			},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Contains(t, fieldMessages(t, description, "birthdate"), "no es una fecha válida")
	})
}

func TestStudentShow(t *testing.T) {
	t.Run("loads the group when assigned", func(t *testing.T) {
		e := newEnv(t)
		grade := e.seedGrade(t, "Primero")
		group := e.seedGroup(t, grade, "A", "2026")
		e.seedStudent(t, "45678901", "Lucas", "Silva", &group.ID)

		rec := e.do(t, http.MethodGet, "/api/students/1", nil)
		assertStatus(t, rec, http.StatusOK)

		body := decode(t, rec)
		student := body["student"].(map[string]interface{})
		assert.Equal(t, "Lucas", student["name"])

		got, ok := student["group"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "A", got["name"])
		assert.Equal(t, "Primero", got["grade_name"])
	})

	t.Run("unknown student", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodGet, "/api/students/999", nil)
		assertStatus(t, rec, http.StatusNotFound)

		key, description := errorBody(t, rec)
		assert.Equal(t, "student.not_found", key)
		assert.Equal(t, "no se encontró el alumno", description)
	})

	t.Run("malformed id", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodGet, "/api/students/abc", nil)
		assertStatus(t, rec, http.StatusNotFound)

		key, _ := errorBody(t, rec)
		assert.Equal(t, "student.not_found", key)
	})
}
