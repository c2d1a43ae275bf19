package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScholarshipCreate(t *testing.T) {
	t.Run("creates a category", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "agreement", "description": "Club Nacional"},
		})
		assertStatus(t, rec, http.StatusCreated)

		body := decode(t, rec)
		ts := body["type_scholarship"].(map[string]interface{})
		assert.Equal(t, "agreement", ts["scholarship"])
		assert.Equal(t, "Club Nacional", ts["description"])
	})

	t.Run("unknown category name", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "becado"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"no está incluido en la lista"}, fieldMessages(t, description, "scholarship"))
	})

	t.Run("agreement without description", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "agreement"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"la descripcion no puede estar vacía"}, fieldMessages(t, description, "description"))
	})

	t.Run("duplicate agreement description", func(t *testing.T) {
		e := newEnv(t)
		seed := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "agreement", "description": "Club Nacional"},
		})
		assertStatus(t, seed, http.StatusCreated)

		rec := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "agreement", "description": "Club Nacional"},
		})
		assertStatus(t, rec, http.StatusUnprocessableEntity)

		_, description := errorBody(t, rec)
		assert.Equal(t, []string{"no pueden haber dos convenios iguales"}, fieldMessages(t, description, "description"))
	})
}

func TestTypeScholarshipUpdate(t *testing.T) {
	t.Run("explicit null wipes the description", func(t *testing.T) {
		e := newEnv(t)
		seed := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "subsidized", "description": "Caso social"},
		})
		assertStatus(t, seed, http.StatusCreated)

		rec := e.doRaw(http.MethodPatch, "/api/type_scholarships/1", `{"type_scholarship":{"description":null}}`, e.token)
		assertStatus(t, rec, http.StatusOK)

		ts := decode(t, rec)["type_scholarship"].(map[string]interface{})
		assert.Equal(t, "", ts["description"])
	})

	t.Run("absent description stays untouched", func(t *testing.T) {
		e := newEnv(t)
		seed := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "agreement", "description": "Club Nacional"},
		})
		assertStatus(t, seed, http.StatusCreated)

		rec := e.doRaw(http.MethodPatch, "/api/type_scholarships/1", `{"type_scholarship":{"scholarship":"agreement"}}`, e.token)
		assertStatus(t, rec, http.StatusOK)

		ts := decode(t, rec)["type_scholarship"].(map[string]interface{})
		assert.Equal(t, "Club Nacional", ts["description"])
	})

	t.Run("unknown record", func(t *testing.T) {
		e := newEnv(t)

		rec := e.do(t, http.MethodPatch, "/api/type_scholarships/999", map[string]interface{}{
			"type_scholarship": map[string]interface{}{"scholarship": "subsidized"},
		})
		assertStatus(t, rec, http.StatusNotFound)

		key, _ := errorBody(t, rec)
		assert.Equal(t, "type_scholarship.not_found", key)
	})
}

func TestTypeScholarshipIndex(t *testing.T) {
	e := newEnv(t)
	seed := e.do(t, http.MethodPost, "/api/type_scholarships", map[string]interface{}{
		"type_scholarship": map[string]interface{}{"scholarship": "bidding", "description": "Llamado 2026"},
	})
	assertStatus(t, seed, http.StatusCreated)

	rec := e.do(t, http.MethodGet, "/api/type_scholarships", nil)
	assertStatus(t, rec, http.StatusOK)

	body := decode(t, rec)
	records, ok := body["type_scholarships"].([]interface{})
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Llamado 2026", records[0].(map[string]interface{})["description"])
}
