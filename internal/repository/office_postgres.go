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

type OfficeRepo struct {
	db *pgxpool.Pool
}

func NewOfficeRepository(db *pgxpool.Pool) *OfficeRepo {
	return &OfficeRepo{db: db}
}

const officeColumns = `id, nombre, especialidad, capacidad, equipamiento, created_at, updated_at`

func (r *OfficeRepo) Create(ctx context.Context, office domain.CreateOfficeDTO) (int64, error) {
	query := `
		INSERT INTO consultorios (nombre, especialidad, capacidad, equipamiento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	equipment := office.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		office.Name,
		office.Specialty,
		office.Capacity,
		equipment,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error al crear el consultorio: %w", err)
	}

	return id, nil
}

func (r *OfficeRepo) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM consultorios WHERE id = $1`

	var office domain.Office
	err := r.db.QueryRow(ctx, query, id).Scan(
		&office.ID,
		&office.Name,
		&office.Specialty,
		&office.Capacity,
		&office.Equipment,
		&office.CreatedAt,
		&office.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener el consultorio: %w", err)
	}

	return &office, nil
}

func (r *OfficeRepo) Update(ctx context.Context, id int64, office domain.UpdateOfficeDTO) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if office.Name != nil {
		current.Name = *office.Name
	}
	if office.Specialty != nil {
		current.Specialty = *office.Specialty
	}
	if office.Capacity != nil {
		current.Capacity = *office.Capacity
	}
	if office.Equipment != nil {
		current.Equipment = *office.Equipment
	}

	query := `
		UPDATE consultorios
		SET nombre = $1, especialidad = $2, capacidad = $3, equipamiento = $4, updated_at = $5
		WHERE id = $6
	`

	_, err = r.db.Exec(ctx, query,
		current.Name,
		current.Specialty,
		current.Capacity,
		current.Equipment,
		time.Now(),
		id,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar el consultorio: %w", err)
	}

	return nil
}

func (r *OfficeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM consultorios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar el consultorio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *OfficeRepo) List(ctx context.Context) ([]domain.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM consultorios ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener la lista de consultorios: %w", err)
	}
	defer rows.Close()

	var offices []domain.Office
	for rows.Next() {
		var office domain.Office
		err := rows.Scan(
			&office.ID,
			&office.Name,
			&office.Specialty,
			&office.Capacity,
			&office.Equipment,
			&office.CreatedAt,
			&office.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear el consultorio: %w", err)
		}
		offices = append(offices, office)
	}

	return offices, rows.Err()
}
