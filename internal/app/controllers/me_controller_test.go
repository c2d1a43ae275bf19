package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

func TestMeShow(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/me", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	me, ok := body["me"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "marta@colegio.app", me["email"])
	assert.Equal(t, "Marta", me["name"])
	assert.NotContains(t, me, "password_digest")

	assert.Equal(t, []interface{}{}, me["documents"])
	assert.Equal(t, []interface{}{}, me["complementary_informations"])
	assert.Equal(t, []interface{}{}, me["absences"])
}

func TestMeUpdate(t *testing.T) {
	t.Run("applies the sent attributes only", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPatch, "/api/me", map[string]interface{}{
			"user": map[string]interface{}{"address": "Av. Italia 1234", "birthdate": "1990-04-12"},
		})
		assertStatus(t, rec, http.StatusOK)

		body := decode(t, rec)
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "Av. Italia 1234", user["address"])
		assert.Equal(t, "1990-04-12", user["birthdate"])
		assert.Equal(t, "marta@colegio.app", user["email"])
	})

	t.Run("short ci", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPatch, "/api/me", map[string]interface{}{
			"user": map[string]interface{}{"ci": "123"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		key, description := errorBody(t, rec)
		assert.Equal(t, "record_invalid", key)
		require.Len(t, fieldMessages(t, description, "ci"), 1)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		e := newEnv(t)
		e.users.Add(&models.User{CI: "34567890", Name: "Rosa", Surname: "Acosta", Email: "rosa@colegio.app"})

		rec := e.do(t, http.MethodPatch, "/api/me", map[string]interface{}{
			"user": map[string]interface{}{"email": "rosa@colegio.app"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"ya está en uso"}, fieldMessages(t, description, "email"))
	})
}

func TestMePassword(t *testing.T) {
	t.Run("replaces the password", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPatch, "/api/me/password", map[string]interface{}{
			"user": map[string]interface{}{"password": "nuevaclave", "password_confirmation": "nuevaclave"},
		})
		assertStatus(t, rec, http.StatusOK)

		login := e.doRaw(http.MethodPost, "/api/login", `{"user":{"email":"marta@colegio.app","password":"nuevaclave"}}`, "")
		assertStatus(t, login, http.StatusOK)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPatch, "/api/me/password", map[string]interface{}{
			"user": map[string]interface{}{"password": "nuevaclave", "password_confirmation": "otra"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"no coincide"}, fieldMessages(t, description, "password_confirmation"))
	})
}

func TestMeOwnedRecords(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/me/documents", map[string]interface{}{
			"document": map[string]interface{}{"document_type": "cedula", "upload_date": "2026-03-01"},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		doc := body["document"].(map[string]interface{})
		assert.Equal(t, "cedula", doc["document_type"])
		assert.Equal(t, "2026-03-01", doc["upload_date"])

		show := e.do(t, http.MethodGet, "/api/me", nil)
		me := decode(t, show)["me"].(map[string]interface{})
		assert.Len(t, me["documents"], 1)
	})

	t.Run("document without type", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/me/documents", map[string]interface{}{
			"document": map[string]interface{}{"upload_date": "2026-03-01"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"no puede estar en blanco"}, fieldMessages(t, description, "document_type"))
	})

	t.Run("complementary information", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/me/complementary_informations", map[string]interface{}{
			"complementary_information": map[string]interface{}{"date": "2026-03-01", "description": "Congreso docente"},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		info := body["complementary_information"].(map[string]interface{})
		assert.Equal(t, "Congreso docente", info["description"])
	})

	t.Run("absence with an unparseable start", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/me/absences", map[string]interface{}{
			"absence": map[string]interface{}{"start_date": "ayer", "end_date": "2026-03-02", "reason": "licencia"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Contains(t, fieldMessages(t, description, "start_date"), "no es una fecha válida")
	})

	t.Run("absence", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/me/absences", map[string]interface{}{
			"absence": map[string]interface{}{"start_date": "2026-03-01", "end_date": "2026-03-02", "reason": "licencia"},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		absence := body["absence"].(map[string]interface{})
		assert.Equal(t, "2026-03-01", absence["start_date"])
		assert.Equal(t, "licencia", absence["reason"])
	})
}

func TestMeGroups(t *testing.T) {
	e := newEnv(t)
	grade := e.seedGrade(t, "Primero")
	group := e.seedGroup(t, grade, "A", "2026")
	e.groups.Assign(e.user, group.ID, models.RoleTeacher)

	rec := e.do(t, http.MethodGet, "/api/me/groups", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	groups, ok := body["groups"].([]interface{})
	require.True(t, ok)
	require.Len(t, groups, 1)
	assert.Equal(t, "A", groups[0].(map[string]interface{})["name"])
}

func TestMeGroupStudents(t *testing.T) {
	e := newEnv(t)
	grade := e.seedGrade(t, "Primero")
	group := e.seedGroup(t, grade, "A", "2026")
	e.seedStudent(t, "45678901", "Lucas", "Silva", &group.ID)

	rec := e.do(t, http.MethodGet, "/api/me/groups/1/students", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	got, ok := body["group"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", got["name"])
	assert.Equal(t, "Primero", got["grade_name"])

	students := got["students"].([]interface{})
	require.Len(t, students, 1)
	assert.Equal(t, "Lucas", students[0].(map[string]interface{})["name"])

	rec = e.do(t, http.MethodGet, "/api/me/groups/999/students", nil)
	assertStatus(t, rec, http.StatusNotFound)
}

func TestMeTeachers(t *testing.T) {
	e := newEnv(t)
	teacher := e.users.Add(&models.User{CI: "34567890", Name: "Rosa", Surname: "Acosta", Email: "rosa@colegio.app"})
	e.users.Roles[teacher.ID] = models.RoleTeacher

	grade := e.seedGrade(t, "Primero")
	group := e.seedGroup(t, grade, "A", "2026")
	e.groups.Assign(teacher, group.ID, models.RoleTeacher)

	rec := e.do(t, http.MethodGet, "/api/me/teachers", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	teachers, ok := body["teachers"].([]interface{})
	require.True(t, ok)
	require.Len(t, teachers, 1)

	got := teachers[0].(map[string]interface{})
	assert.Equal(t, "Rosa", got["name"])
	require.Len(t, got["groups"], 1)
}
