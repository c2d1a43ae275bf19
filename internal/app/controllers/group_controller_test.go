package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

func TestGroupCreate(t *testing.T) {
	t.Run("creates under the grade", func(t *testing.T) {
		e := newEnv(t)
		grade := e.seedGrade(t, "Primero")

		rec := e.do(t, http.MethodPost, "/api/groups", map[string]interface{}{
			"grade_id": grade.ID,
			"group":    map[string]interface{}{"name": "A", "year": "2026"},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		gradeObj, ok := body["grade"].(map[string]interface{})
		require.True(t, ok)
		group, ok := gradeObj["group"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "A", group["name"])
		assert.Equal(t, "2026", group["year"])
		assert.Equal(t, "Primero", group["grade_name"])
	})

	t.Run("unknown grade", func(t *testing.T) {
		e := newEnv(t)
		rec := e.do(t, http.MethodPost, "/api/groups", map[string]interface{}{
			"grade_id": 999,
			"group":    map[string]interface{}{"name": "A", "year": "2026"},
		})
		assertStatus(t, rec, http.StatusNotFound)

		key, description := errorBody(t, rec)
		assert.Equal(t, "grade.not_found", key)
		assert.Equal(t, "no se encontró el grado", description)
	})

	t.Run("blank attributes answer the full field map", func(t *testing.T) {
		e := newEnv(t)
		grade := e.seedGrade(t, "Primero")

		rec := e.do(t, http.MethodPost, "/api/groups", map[string]interface{}{
			"grade_id": grade.ID,
			"group":    map[string]interface{}{},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		key, description := errorBody(t, rec)
		assert.Equal(t, "record_invalid", key)
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "name"))
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "year"))
	})

	t.Run("duplicate name inside the grade", func(t *testing.T) {
		e := newEnv(t)
		grade := e.seedGrade(t, "Primero")
		e.seedGroup(t, grade, "A", "2026")

		rec := e.do(t, http.MethodPost, "/api/groups", map[string]interface{}{
			"grade_id": grade.ID,
			"group":    map[string]interface{}{"name": "A", "year": "2026"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"ya está en uso"}, fieldMessages(t, description, "name"))
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newEnv(t)
		rec := e.doRaw(http.MethodPost, "/api/groups", `{"grade_id":`, e.token)
		assertStatus(t, rec, http.StatusBadRequest)

		key, _ := errorBody(t, rec)
		assert.Equal(t, "bad_request", key)
	})
}

func TestGroupUpdate(t *testing.T) {
	t.Run("renames the group", func(t *testing.T) {
		e := newEnv(t)
		grade := e.seedGrade(t, "Primero")
		group := e.seedGroup(t, grade, "A", "2026")

		rec := e.do(t, http.MethodPatch, "/api/groups/1", map[string]interface{}{
			"group": map[string]interface{}{"name": "B"},
		})
		assertStatus(t, rec, http.StatusOK)

		body := decode(t, rec)
		gradeObj := body["grade"].(map[string]interface{})
		got := gradeObj["group"].(map[string]interface{})
		assert.Equal(t, "B", got["name"])
		assert.Equal(t, group.Year, got["year"])
	})

	t.Run("malformed id reads like a missing group", func(t *testing.T) {
		e := newEnv(t)
		rec := e.do(t, http.MethodPatch, "/api/groups/abc", map[string]interface{}{
			"group": map[string]interface{}{"name": "B"},
		})
		assertStatus(t, rec, http.StatusNotFound)

		key, _ := errorBody(t, rec)
		assert.Equal(t, "group.not_found", key)
	})

	t.Run("unknown group", func(t *testing.T) {
		e := newEnv(t)
		rec := e.do(t, http.MethodPatch, "/api/groups/999", map[string]interface{}{
			"group": map[string]interface{}{"name": "B"},
		})
		assertStatus(t, rec, http.StatusNotFound)

		key, _ := errorBody(t, rec)
		assert.Equal(t, "group.not_found", key)
	})
}

func TestGroupIndex(t *testing.T) {
	e := newEnv(t)
	grade := e.seedGrade(t, "Primero")
	group := e.seedGroup(t, grade, "A", "2026")

	teacher := &models.User{ID: 50, CI: "23456789", Name: "Rosa", Surname: "Acosta", Email: "rosa@colegio.app"}
	e.groups.Assign(teacher, group.ID, models.RoleTeacher)

	rec := e.do(t, http.MethodGet, "/api/groups", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	groups, ok := body["groups"].([]interface{})
	require.True(t, ok)
	require.Len(t, groups, 1)

	got := groups[0].(map[string]interface{})
	assert.Equal(t, "A", got["name"])
	gradeObj := got["grade"].(map[string]interface{})
	assert.Equal(t, "Primero", gradeObj["name"])

	teachers := got["teachers"].([]interface{})
	require.Len(t, teachers, 1)
	assert.Equal(t, "Rosa", teachers[0].(map[string]interface{})["name"])
	assert.Equal(t, []interface{}{}, got["principals"])
	assert.Equal(t, []interface{}{}, got["support_teachers"])
}

func TestGroupStudents(t *testing.T) {
	e := newEnv(t)
	grade := e.seedGrade(t, "Primero")
	group := e.seedGroup(t, grade, "A", "2026")
	e.seedStudent(t, "45678901", "Lucas", "Silva", &group.ID)
	e.seedStudent(t, "45678902", "Paula", "Nunes", nil)

	rec := e.do(t, http.MethodGet, "/api/groups/1/students", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	students, ok := body["students"].([]interface{})
	require.True(t, ok)
	require.Len(t, students, 1)
	assert.Equal(t, "Lucas", students[0].(map[string]interface{})["name"])

	rec = e.do(t, http.MethodGet, "/api/groups/999/students", nil)
	assertStatus(t, rec, http.StatusNotFound)
}

func TestGroupTeachers(t *testing.T) {
	e := newEnv(t)
	grade := e.seedGrade(t, "Primero")
	groupA := e.seedGroup(t, grade, "A", "2026")
	groupB := e.seedGroup(t, grade, "B", "2026")

	teacher := &models.User{ID: 50, CI: "23456789", Name: "Rosa", Surname: "Acosta", Email: "rosa@colegio.app"}
	e.groups.Assign(teacher, groupA.ID, models.RoleTeacher)
	e.groups.Assign(teacher, groupB.ID, models.RoleTeacher)

	rec := e.do(t, http.MethodGet, "/api/groups/1/teachers", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	teachers, ok := body["teachers"].([]interface{})
	require.True(t, ok)
	require.Len(t, teachers, 1)

	got := teachers[0].(map[string]interface{})
	assert.Equal(t, "Rosa", got["name"])
	groups := got["groups"].([]interface{})
	assert.Len(t, groups, 2)
}
