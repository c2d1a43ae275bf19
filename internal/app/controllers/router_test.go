package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/controllers"
	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/repositories/memory"
	"github.com/colegio-app/colegio-backend/internal/app/routes"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

// env wires the full router against in-memory repositories with one
// signed-in staff member ready to use.
type env struct {
	router *gin.Engine

	users        *memory.UserRepository
	grades       *memory.GradeRepository
	groups       *memory.GroupRepository
	students     *memory.StudentRepository
	methods      *memory.PaymentMethodRepository
	links        *memory.StudentPaymentMethodRepository
	scholarships *memory.TypeScholarshipRepository
	evaluations  *memory.EvaluationRepository

	user  *models.User
	token string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &env{
		users:        memory.NewUserRepository(),
		grades:       memory.NewGradeRepository(),
		groups:       memory.NewGroupRepository(),
		students:     memory.NewStudentRepository(),
		methods:      memory.NewPaymentMethodRepository(),
		links:        memory.NewStudentPaymentMethodRepository(),
		scholarships: memory.NewTypeScholarshipRepository(),
		evaluations:  memory.NewEvaluationRepository(),
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "colegio.test",
	})

	digest, err := auth.HashPassword("secreta1")
	require.NoError(t, err)
	e.user = e.users.Add(&models.User{
		CI:             "12345678",
		Name:           "Marta",
		Surname:        "Pereira",
		Email:          "marta@colegio.app",
		PasswordDigest: digest,
	})

	e.token, err = jwtService.GenerateToken(e.user.ID, e.user.Email)
	require.NoError(t, err)

	groupService := services.NewGroupService(e.groups, e.grades, e.students)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(services.NewAuthService(e.users, jwtService)),
		controllers.NewGradeController(services.NewGradeService(e.grades)),
		controllers.NewGroupController(groupService),
		controllers.NewMeController(services.NewMeService(e.users, groupService)),
		controllers.NewStudentController(services.NewStudentService(e.students, e.groups)),
		controllers.NewPaymentMethodController(services.NewPaymentMethodService(e.methods)),
		controllers.NewStudentPaymentMethodController(services.NewStudentPaymentMethodService(e.links, e.students, e.methods)),
		controllers.NewTypeScholarshipController(services.NewTypeScholarshipService(e.scholarships)),
		controllers.NewEvaluationController(services.NewEvaluationService(e.evaluations, e.students, e.groups)),
		middleware.NewAuthMiddleware(jwtService),
	)
	e.router = router
	return e
}

// do issues an authenticated JSON request against the router
func (e *env) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// doRaw issues a request with a verbatim body and an optional bearer token
func (e *env) doRaw(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode parses the response body into a generic map
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// errorBody parses the uniform error envelope and returns its key and
// description
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, interface{}) {
	t.Helper()
	body := decode(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response has no error envelope: %s", rec.Body.String())
	key, _ := errObj["key"].(string)
	return key, errObj["description"]
}

// fieldMessages reads the field's messages out of a record_invalid
// description
func fieldMessages(t *testing.T, description interface{}, field string) []string {
	t.Helper()
	fields, ok := description.(map[string]interface{})
	require.True(t, ok, "description is not a field map: %v", description)
	raw, ok := fields[field].([]interface{})
	require.True(t, ok, "field %q missing: %v", field, description)
	out := make([]string, 0, len(raw))
	for _, m := range raw {
		msg, _ := m.(string)
		out = append(out, msg)
	}
	return out
}

// seedGrade stores a grade directly in the repository
func (e *env) seedGrade(t *testing.T, name string) *models.Grade {
	t.Helper()
	grade := &models.Grade{Name: name}
	require.NoError(t, e.grades.Create(context.Background(), grade))
	return grade
}

// seedGroup stores a group under a grade directly in the repository
func (e *env) seedGroup(t *testing.T, grade *models.Grade, name, year string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Year: year, GradeID: grade.ID, Grade: grade}
	require.NoError(t, e.groups.Create(context.Background(), group))
	return group
}

// seedStudent stores a student directly in the repository
func (e *env) seedStudent(t *testing.T, ci, name, surname string, groupID *int64) *models.Student {
	t.Helper()
	student := &models.Student{CI: ci, Name: name, Surname: surname, GroupID: groupID}
	require.NoError(t, e.students.Create(context.Background(), student))
	return student
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
