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

type AssignmentRepo struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

const assignmentSelect = `
	SELECT a.id, a.consultorio_id, c.nombre, a.doctor_id, u.nombre || ' ' || u.apellido,
	       a.mes, a.anio, a.dias_semana, a.hora_inicio, a.hora_fin, a.created_at, a.updated_at
	FROM asignaciones a
	JOIN consultorios c ON c.id = a.consultorio_id
	JOIN doctores d ON d.id = a.doctor_id
	JOIN usuarios u ON u.id = d.usuario_id
`

func (r *AssignmentRepo) Create(ctx context.Context, assignment domain.OfficeAssignment) (int64, error) {
	query := `
		INSERT INTO asignaciones (consultorio_id, doctor_id, mes, anio, dias_semana, hora_inicio, hora_fin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		assignment.OfficeID,
		assignment.DoctorID,
		assignment.Month,
		assignment.Year,
		assignment.WeekDays,
		assignment.StartTime,
		assignment.EndTime,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error al crear la asignación: %w", err)
	}

	return id, nil
}

func (r *AssignmentRepo) GetByID(ctx context.Context, id int64) (*domain.OfficeAssignment, error) {
	return r.scanAssignment(r.db.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id))
}

func (r *AssignmentRepo) scanAssignment(row pgx.Row) (*domain.OfficeAssignment, error) {
	var assignment domain.OfficeAssignment
	err := row.Scan(
		&assignment.ID,
		&assignment.OfficeID,
		&assignment.OfficeName,
		&assignment.DoctorID,
		&assignment.DoctorName,
		&assignment.Month,
		&assignment.Year,
		&assignment.WeekDays,
		&assignment.StartTime,
		&assignment.EndTime,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener la asignación: %w", err)
	}

	return &assignment, nil
}

func (r *AssignmentRepo) Update(ctx context.Context, assignment domain.OfficeAssignment) error {
	query := `
		UPDATE asignaciones
		SET consultorio_id = $1, doctor_id = $2, mes = $3, anio = $4,
		    dias_semana = $5, hora_inicio = $6, hora_fin = $7, updated_at = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		assignment.OfficeID,
		assignment.DoctorID,
		assignment.Month,
		assignment.Year,
		assignment.WeekDays,
		assignment.StartTime,
		assignment.EndTime,
		time.Now(),
		assignment.ID,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar la asignación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AssignmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM asignaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar la asignación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AssignmentRepo) List(ctx context.Context) ([]domain.OfficeAssignment, error) {
	query := assignmentSelect + ` ORDER BY a.anio, a.mes, c.nombre`
	return r.queryAssignments(ctx, query)
}

func (r *AssignmentRepo) ListByOfficeMonth(ctx context.Context, officeID int64, month, year int) ([]domain.OfficeAssignment, error) {
	query := assignmentSelect + ` WHERE a.consultorio_id = $1 AND a.mes = $2 AND a.anio = $3 ORDER BY a.hora_inicio`
	return r.queryAssignments(ctx, query, officeID, month, year)
}

func (r *AssignmentRepo) ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.OfficeAssignment, error) {
	query := assignmentSelect + ` WHERE a.doctor_id = $1 AND a.mes = $2 AND a.anio = $3 ORDER BY a.hora_inicio`
	return r.queryAssignments(ctx, query, doctorID, month, year)
}

func (r *AssignmentRepo) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]domain.OfficeAssignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las asignaciones: %w", err)
	}
	defer rows.Close()

	var assignments []domain.OfficeAssignment
	for rows.Next() {
		var assignment domain.OfficeAssignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.OfficeID,
			&assignment.OfficeName,
			&assignment.DoctorID,
			&assignment.DoctorName,
			&assignment.Month,
			&assignment.Year,
			&assignment.WeekDays,
			&assignment.StartTime,
			&assignment.EndTime,
			&assignment.CreatedAt,
			&assignment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la asignación: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}
