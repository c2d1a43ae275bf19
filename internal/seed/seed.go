package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/pkg/auth"
)

// CreateDefaultData inserts the fixed role set and a first admin user so a
// fresh install can sign in. Every statement is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (roles, first user)...")

	roles := []models.RoleName{models.RoleTeacher, models.RolePrincipal, models.RoleSupportTeacher}
	for _, role := range roles {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO roles (name, created_at, updated_at)
			VALUES ($1, NOW(), NOW())
			ON CONFLICT (name) DO NOTHING
		`, string(role))
		if err != nil {
			lgr.Error().Err(err).Str("role", string(role)).Msg("Error creating default role")
			return err
		}
	}

	var userCount int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	digest, err := auth.HashPassword("cambiame123")
	if err != nil {
		return err
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO users (ci, name, surname, address, email, password_digest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`, "00000000", "Admin", "Colegio", "", "admin@colegio.app", digest)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating first user")
		return err
	}

	lgr.Info().Str("email", "admin@colegio.app").Msg("First user created")
	return nil
}
