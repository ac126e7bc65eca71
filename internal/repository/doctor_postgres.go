package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepo {
	return &DoctorRepo{db: db}
}

const doctorSelect = `
	SELECT d.id, d.usuario_id, u.nombre || ' ' || u.apellido, d.especialidad,
	       d.matricula, d.horarios, d.created_at, d.updated_at
	FROM doctores d
	JOIN usuarios u ON u.id = d.usuario_id
`

func (r *DoctorRepo) Create(ctx context.Context, userID int64, doctor domain.CreateDoctorDTO) (int64, error) {
	query := `
		INSERT INTO doctores (usuario_id, especialidad, matricula, horarios, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	slots := doctor.SlotLabels
	if slots == nil {
		slots = []string{}
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		userID,
		doctor.Specialty,
		doctor.LicenseNumber,
		slots,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error al crear el perfil del doctor: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.scanDoctor(r.db.QueryRow(ctx, doctorSelect+` WHERE d.id = $1`, id))
}

func (r *DoctorRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	return r.scanDoctor(r.db.QueryRow(ctx, doctorSelect+` WHERE d.usuario_id = $1`, userID))
}

func (r *DoctorRepo) scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.UserID,
		&doctor.FullName,
		&doctor.Specialty,
		&doctor.LicenseNumber,
		&doctor.SlotLabels,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener el doctor: %w", err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id int64, doctor domain.UpdateDoctorDTO) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if doctor.Specialty != nil {
		current.Specialty = *doctor.Specialty
	}
	if doctor.LicenseNumber != nil {
		current.LicenseNumber = *doctor.LicenseNumber
	}
	if doctor.SlotLabels != nil {
		current.SlotLabels = *doctor.SlotLabels
	}

	query := `
		UPDATE doctores
		SET especialidad = $1, matricula = $2, horarios = $3, updated_at = $4
		WHERE id = $5
	`

	_, err = r.db.Exec(ctx, query,
		current.Specialty,
		current.LicenseNumber,
		current.SlotLabels,
		time.Now(),
		id,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar el doctor: %w", err)
	}

	return nil
}

func (r *DoctorRepo) List(ctx context.Context, specialty *string, limit, offset int) ([]domain.Doctor, error) {
	query := doctorSelect
	args := []interface{}{}

	if specialty != nil {
		query += ` WHERE d.especialidad = $1 ORDER BY d.id LIMIT $2 OFFSET $3`
		args = append(args, *specialty, limit, offset)
	} else {
		query += ` ORDER BY d.id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al obtener la lista de doctores: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var doctor domain.Doctor
		err := rows.Scan(
			&doctor.ID,
			&doctor.UserID,
			&doctor.FullName,
			&doctor.Specialty,
			&doctor.LicenseNumber,
			&doctor.SlotLabels,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear el doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	return doctors, rows.Err()
}
