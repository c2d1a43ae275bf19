package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/repositories/memory"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

type meFixture struct {
	svc       *MeService
	userRepo  *memory.UserRepository
	groupRepo *memory.GroupRepository
	user      *models.User
}

func newMeFixture(t *testing.T) *meFixture {
	t.Helper()
	userRepo := memory.NewUserRepository()
	groupRepo := memory.NewGroupRepository()
	groupService := NewGroupService(groupRepo, memory.NewGradeRepository(), memory.NewStudentRepository())

	digest, err := auth.HashPassword("secreta1")
	require.NoError(t, err)
	user := userRepo.Add(&models.User{
		CI:             "12345678",
		Name:           "Marta",
		Surname:        "Pereira",
		Email:          "marta@colegio.app",
		PasswordDigest: digest,
	})

	return &meFixture{
		svc:       NewMeService(userRepo, groupService),
		userRepo:  userRepo,
		groupRepo: groupRepo,
		user:      user,
	}
}

func TestMeServiceGet(t *testing.T) {
	ctx := context.Background()
	fx := newMeFixture(t)

	require.NoError(t, fx.userRepo.CreateDocument(ctx, &models.Document{
		UserID: fx.user.ID, DocumentType: "cedula",
	}))

	user, err := fx.svc.Get(ctx, fx.user.ID)
	require.NoError(t, err)
	require.Len(t, user.Documents, 1)
	assert.Equal(t, "cedula", user.Documents[0].DocumentType)
	assert.NotNil(t, user.ComplementaryInformations)
	assert.NotNil(t, user.Absences)

	_, err = fx.svc.Get(ctx, 999)
	assert.Equal(t, "user", notFoundEntity(t, err))
}

func TestMeServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the present fields", func(t *testing.T) {
		fx := newMeFixture(t)
		user, err := fx.svc.Update(ctx, fx.user.ID, dto.UserParams{
			Name:      strptr("Martina"),
			Birthdate: strptr("1990-05-17"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Martina", user.Name)
		assert.Equal(t, "Pereira", user.Surname)
		require.NotNil(t, user.Birthdate)
		assert.Equal(t, *date(t, "1990-05-17"), *user.Birthdate)
	})

	t.Run("invalid birthdate", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.Update(ctx, fx.user.ID, dto.UserParams{Birthdate: strptr("17/05/1990")})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgInvalidDate}, errs["birthdate"])
	})

	t.Run("ci too short", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.Update(ctx, fx.user.ID, dto.UserParams{CI: strptr("123")})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgTooShortCI}, errs["ci"])
	})

	t.Run("ci and email taken by another user", func(t *testing.T) {
		fx := newMeFixture(t)
		fx.userRepo.Add(&models.User{
			CI: "87654321", Name: "Hugo", Surname: "Diaz",
			Email: "hugo@colegio.app", PasswordDigest: "x",
		})

		_, err := fx.svc.Update(ctx, fx.user.ID, dto.UserParams{
			CI:    strptr("87654321"),
			Email: strptr("hugo@colegio.app"),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgTaken}, errs["ci"])
		assert.Equal(t, []string{apperrors.MsgTaken}, errs["email"])
	})

	t.Run("keeping own email is not a collision", func(t *testing.T) {
		fx := newMeFixture(t)
		user, err := fx.svc.Update(ctx, fx.user.ID, dto.UserParams{Email: strptr("marta@colegio.app")})
		require.NoError(t, err)
		assert.Equal(t, "marta@colegio.app", user.Email)
	})
}

func TestMeServiceUpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the digest", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.UpdatePassword(ctx, fx.user.ID, dto.PasswordParams{
			Password:             "nuevaclave",
			PasswordConfirmation: "nuevaclave",
		})
		require.NoError(t, err)

		stored, err := fx.userRepo.GetByID(ctx, fx.user.ID)
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(stored.PasswordDigest, "nuevaclave"))
		assert.False(t, auth.CheckPassword(stored.PasswordDigest, "secreta1"))
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.UpdatePassword(ctx, fx.user.ID, dto.PasswordParams{
			Password:             "nuevaclave",
			PasswordConfirmation: "otracosa",
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgConfirmationMismatch}, errs["password_confirmation"])
	})

	t.Run("too short", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.UpdatePassword(ctx, fx.user.ID, dto.PasswordParams{
			Password:             "abc",
			PasswordConfirmation: "abc",
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgTooShortPassword}, errs["password"])
	})
}

func TestMeServiceOwnedRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("document requires a type", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.AddDocument(ctx, fx.user.ID, dto.DocumentParams{})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["document_type"])
	})

	t.Run("document stores the upload date", func(t *testing.T) {
		fx := newMeFixture(t)
		doc, err := fx.svc.AddDocument(ctx, fx.user.ID, dto.DocumentParams{
			DocumentType: strptr("cedula"),
			UploadDate:   strptr("2026-03-01"),
		})
		require.NoError(t, err)
		assert.Equal(t, fx.user.ID, doc.UserID)
		require.NotNil(t, doc.UploadDate)
		assert.Equal(t, *date(t, "2026-03-01"), *doc.UploadDate)
	})

	t.Run("note requires a description", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.AddComplementaryInformation(ctx, fx.user.ID, dto.ComplementaryInformationParams{
			Date: strptr("2026-03-01"),
		})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["description"])
	})

	t.Run("absence requires both dates", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.AddAbsence(ctx, fx.user.ID, dto.AbsenceParams{Reason: strptr("licencia")})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["start_date"])
		assert.Equal(t, []string{apperrors.MsgBlank}, errs["end_date"])
	})

	t.Run("absence with an invalid date", func(t *testing.T) {
		fx := newMeFixture(t)
		_, err := fx.svc.AddAbsence(ctx, fx.user.ID, dto.AbsenceParams{
			StartDate: strptr("01-03-2026"),
			EndDate:   strptr("2026-03-05"),
		})
		errs := fieldErrors(t, err)
		assert.Contains(t, errs["start_date"], apperrors.MsgInvalidDate)
	})
}

func TestMeServiceTeachers(t *testing.T) {
	ctx := context.Background()
	fx := newMeFixture(t)

	teacher := fx.userRepo.Add(&models.User{
		CI: "23456789", Name: "Rosa", Surname: "Acosta",
		Email: "rosa@colegio.app", PasswordDigest: "x",
	})
	fx.userRepo.Roles[teacher.ID] = models.RoleTeacher

	details, err := fx.svc.Teachers(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Rosa", details[0].User.Name)
	assert.NotNil(t, details[0].Groups)
}
