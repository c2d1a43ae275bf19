package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/colegio-app/colegio-backend/internal/app/models"
)

const studentColumns = `
	id, ci, surname, name, schedule_start, schedule_end, tuition,
	reference_number, birthplace, birthdate, nationality, first_language,
	office, status, address, neighborhood, medical_assurance, emergency,
	phone_number, vaccine_name, vaccine_expiration, inscription_date,
	starting_date, contact, contact_phone, email, group_id
`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			ci, surname, name, schedule_start, schedule_end, tuition,
			reference_number, birthplace, birthdate, nationality, first_language,
			office, status, address, neighborhood, medical_assurance, emergency,
			phone_number, vaccine_name, vaccine_expiration, inscription_date,
			starting_date, contact, contact_phone, email, group_id,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, NOW(), NOW()
		)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		student.CI,
		student.Surname,
		student.Name,
		student.ScheduleStart,
		student.ScheduleEnd,
		student.Tuition,
		student.ReferenceNumber,
		student.Birthplace,
		student.Birthdate,
		student.Nationality,
		student.FirstLanguage,
		student.Office,
		student.Status,
		student.Address,
		student.Neighborhood,
		student.MedicalAssurance,
		student.Emergency,
		student.PhoneNumber,
		student.VaccineName,
		student.VaccineExpiration,
		student.InscriptionDate,
		student.StartingDate,
		student.Contact,
		student.ContactPhone,
		student.Email,
		student.GroupID,
	).Scan(&student.ID)
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.CI,
		&student.Surname,
		&student.Name,
		&student.ScheduleStart,
		&student.ScheduleEnd,
		&student.Tuition,
		&student.ReferenceNumber,
		&student.Birthplace,
		&student.Birthdate,
		&student.Nationality,
		&student.FirstLanguage,
		&student.Office,
		&student.Status,
		&student.Address,
		&student.Neighborhood,
		&student.MedicalAssurance,
		&student.Emergency,
		&student.PhoneNumber,
		&student.VaccineName,
		&student.VaccineExpiration,
		&student.InscriptionDate,
		&student.StartingDate,
		&student.Contact,
		&student.ContactPhone,
		&student.Email,
		&student.GroupID,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return student, nil
}

// GetByGroup retrieves all students currently assigned to a group
func (r *StudentRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE group_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
