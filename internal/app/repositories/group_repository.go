package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

// GroupRepository handles database operations for groups and their staff
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (name, year, grade_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	return r.db.QueryRow(ctx, query, group.Name, group.Year, group.GradeID).Scan(&group.ID)
}

// Update updates a group's attributes
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET name = $1, year = $2, grade_id = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, group.Name, group.Year, group.GradeID, group.ID)
	return err
}

// GetByID retrieves a group with its grade
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.year, g.grade_id, gr.id, gr.name
		FROM groups g
		JOIN grades gr ON gr.id = g.grade_id
		WHERE g.id = $1
	`

	var group models.Group
	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.Year,
		&group.GradeID,
		&grade.ID,
		&grade.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	group.Grade = &grade
	return &group, nil
}

// GetAll retrieves all groups with their grades
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.year, g.grade_id, gr.id, gr.name
		FROM groups g
		JOIN grades gr ON gr.id = g.grade_id
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

// GetByUser retrieves all groups a user is assigned to
func (r *GroupRepository) GetByUser(ctx context.Context, userID int64) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.year, g.grade_id, gr.id, gr.name
		FROM groups g
		JOIN grades gr ON gr.id = g.grade_id
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

func scanGroups(rows pgx.Rows) ([]*models.Group, error) {
	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		var grade models.Grade
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Year,
			&group.GradeID,
			&grade.ID,
			&grade.Name,
		); err != nil {
			return nil, err
		}
		group.Grade = &grade
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// NameTaken checks whether another group in the same grade already uses the name
func (r *GroupRepository) NameTaken(ctx context.Context, gradeID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM groups WHERE grade_id = $1 AND name = $2 AND id != $3)
	`

	var taken bool
	err := r.db.QueryRow(ctx, query, gradeID, name, excludeID).Scan(&taken)
	return taken, err
}

// GetMembers retrieves the users assigned to a group under the given role
func (r *GroupRepository) GetMembers(ctx context.Context, groupID int64, role models.RoleName) ([]*models.User, error) {
	query := `
		SELECT u.id, u.ci, u.name, u.surname, u.birthdate, u.address, u.email, u.password_digest
		FROM users u
		JOIN user_groups ug ON ug.user_id = u.id
		JOIN roles r ON r.id = ug.role_id
		WHERE ug.group_id = $1 AND r.name = $2
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, groupID, string(role))
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

// AddMember assigns a user to a group under a role, skipping duplicates
func (r *GroupRepository) AddMember(ctx context.Context, userID, groupID, roleID int64) error {
	query := `
		INSERT INTO user_groups (user_id, group_id, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, group_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, groupID, roleID)
	return err
}

// GetRoleByName retrieves a role by name
func (r *GroupRepository) GetRoleByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, string(name)).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &role, nil
}
