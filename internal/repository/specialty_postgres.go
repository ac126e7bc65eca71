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

type SpecialtyRepo struct {
	db *pgxpool.Pool
}

func NewSpecialtyRepository(db *pgxpool.Pool) *SpecialtyRepo {
	return &SpecialtyRepo{db: db}
}

func (r *SpecialtyRepo) Create(ctx context.Context, specialty domain.CreateSpecialtyDTO) (int64, error) {
	query := `
		INSERT INTO especialidades (nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, specialty.Name, specialty.Description, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error al crear la especialidad: %w", err)
	}

	return id, nil
}

func (r *SpecialtyRepo) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	query := `SELECT id, nombre, descripcion, created_at, updated_at FROM especialidades WHERE id = $1`

	var specialty domain.Specialty
	err := r.db.QueryRow(ctx, query, id).Scan(
		&specialty.ID,
		&specialty.Name,
		&specialty.Description,
		&specialty.CreatedAt,
		&specialty.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener la especialidad: %w", err)
	}

	return &specialty, nil
}

func (r *SpecialtyRepo) Update(ctx context.Context, id int64, specialty domain.UpdateSpecialtyDTO) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if specialty.Name != nil {
		current.Name = *specialty.Name
	}
	if specialty.Description != nil {
		current.Description = *specialty.Description
	}

	query := `UPDATE especialidades SET nombre = $1, descripcion = $2, updated_at = $3 WHERE id = $4`

	_, err = r.db.Exec(ctx, query, current.Name, current.Description, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar la especialidad: %w", err)
	}

	return nil
}

func (r *SpecialtyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM especialidades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar la especialidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *SpecialtyRepo) List(ctx context.Context) ([]domain.Specialty, error) {
	query := `SELECT id, nombre, descripcion, created_at, updated_at FROM especialidades ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener la lista de especialidades: %w", err)
	}
	defer rows.Close()

	var specialties []domain.Specialty
	for rows.Next() {
		var specialty domain.Specialty
		err := rows.Scan(
			&specialty.ID,
			&specialty.Name,
			&specialty.Description,
			&specialty.CreatedAt,
			&specialty.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la especialidad: %w", err)
		}
		specialties = append(specialties, specialty)
	}

	return specialties, rows.Err()
}
