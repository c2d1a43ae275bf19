package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// UserRepository handles database operations for staff users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (ci, name, surname, birthdate, address, email, password_digest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		user.CI,
		user.Name,
		user.Surname,
		user.Birthdate,
		user.Address,
		user.Email,
		user.PasswordDigest,
	).Scan(&user.ID)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, ci, name, surname, birthdate, address, email, password_digest
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.CI,
		&user.Name,
		&user.Surname,
		&user.Birthdate,
		&user.Address,
		&user.Email,
		&user.PasswordDigest,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, ci, name, surname, birthdate, address, email, password_digest
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.CI,
		&user.Name,
		&user.Surname,
		&user.Birthdate,
		&user.Address,
		&user.Email,
		&user.PasswordDigest,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// Update updates a user's profile fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET ci = $1, name = $2, surname = $3, birthdate = $4, address = $5, email = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := r.db.Exec(ctx, query,
		user.CI,
		user.Name,
		user.Surname,
		user.Birthdate,
		user.Address,
		user.Email,
		user.ID,
	)
	return err
}

// UpdatePassword replaces the stored password digest
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordDigest string) error {
	query := `
		UPDATE users
		SET password_digest = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, passwordDigest, userID)
	return err
}

// CIExists checks whether another user already holds the given CI
func (r *UserRepository) CIExists(ctx context.Context, ci string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM users WHERE ci = $1 AND id != $2)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, ci, excludeID).Scan(&exists)
	return exists, err
}

// EmailExists checks whether another user already holds the given email
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&exists)
	return exists, err
}

// ListByRole retrieves all users holding the given role in any group
func (r *UserRepository) ListByRole(ctx context.Context, role models.RoleName) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.ci, u.name, u.surname, u.birthdate, u.address, u.email, u.password_digest
		FROM users u
		JOIN user_groups ug ON ug.user_id = u.id
		JOIN roles r ON r.id = ug.role_id
		WHERE r.name = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.CI,
			&user.Name,
			&user.Surname,
			&user.Birthdate,
			&user.Address,
			&user.Email,
			&user.PasswordDigest,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateDocument attaches a document record to a user
func (r *UserRepository) CreateDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (user_id, document_type, upload_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, doc.UserID, doc.DocumentType, doc.UploadDate).Scan(&doc.ID)
}

// ListDocuments retrieves a user's documents
func (r *UserRepository) ListDocuments(ctx context.Context, userID int64) ([]*models.Document, error) {
	query := `
		SELECT id, user_id, document_type, upload_date
		FROM documents
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.DocumentType, &doc.UploadDate); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// CreateComplementaryInformation attaches a complementary information record to a user
func (r *UserRepository) CreateComplementaryInformation(ctx context.Context, info *models.ComplementaryInformation) error {
	query := `
		INSERT INTO complementary_informations (user_id, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, info.UserID, info.Date, info.Description).Scan(&info.ID)
}

// ListComplementaryInformations retrieves a user's complementary information records
func (r *UserRepository) ListComplementaryInformations(ctx context.Context, userID int64) ([]*models.ComplementaryInformation, error) {
	query := `
		SELECT id, user_id, date, description
		FROM complementary_informations
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []*models.ComplementaryInformation
	for rows.Next() {
		var info models.ComplementaryInformation
		if err := rows.Scan(&info.ID, &info.UserID, &info.Date, &info.Description); err != nil {
			return nil, err
		}
		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return infos, nil
}

// CreateAbsence attaches an absence record to a user
func (r *UserRepository) CreateAbsence(ctx context.Context, absence *models.Absence) error {
	query := `
		INSERT INTO absences (user_id, start_date, end_date, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, absence.UserID, absence.StartDate, absence.EndDate, absence.Reason).Scan(&absence.ID)
}

// ListAbsences retrieves a user's absences
func (r *UserRepository) ListAbsences(ctx context.Context, userID int64) ([]*models.Absence, error) {
	query := `
		SELECT id, user_id, start_date, end_date, reason
		FROM absences
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []*models.Absence
	for rows.Next() {
		var absence models.Absence
		if err := rows.Scan(&absence.ID, &absence.UserID, &absence.StartDate, &absence.EndDate, &absence.Reason); err != nil {
			return nil, err
		}
		absences = append(absences, &absence)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}
