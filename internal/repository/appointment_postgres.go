package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

const appointmentSelect = `
	SELECT id, paciente_nombre, paciente_dni, paciente_email, doctor_id, doctor_nombre,
	       fecha, hora, motivo, estado, confirmada_por, cancelada_por, motivo_cancelacion,
	       created_at, updated_at
	FROM citas
`

// Create inserta la cita verificando dentro de la misma transacción que el
// turno siga libre. El índice parcial citas_slot_unico cubre la carrera entre
// la verificación y el insert.
func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM citas WHERE doctor_id = $1 AND fecha = $2 AND hora = $3 AND estado <> $4`,
		appointment.DoctorID, appointment.Date, appointment.Time, domain.AppointmentStatusCancelled,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al verificar el turno: %w", err)
	}
	if count > 0 {
		return 0, domain.ErrSlotTaken
	}

	query := `
		INSERT INTO citas (paciente_nombre, paciente_dni, paciente_email, doctor_id, doctor_nombre,
		                   fecha, hora, motivo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		appointment.PatientName,
		appointment.PatientDNI,
		appointment.PatientEmail,
		appointment.DoctorID,
		appointment.DoctorName,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
		appointment.Status,
		time.Now(),
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrSlotTaken
		}
		return 0, fmt.Errorf("error al crear la cita: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return scanAppointment(r.db.QueryRow(ctx, appointmentSelect+` WHERE id = $1`, id))
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var date time.Time

	err := row.Scan(
		&appointment.ID,
		&appointment.PatientName,
		&appointment.PatientDNI,
		&appointment.PatientEmail,
		&appointment.DoctorID,
		&appointment.DoctorName,
		&date,
		&appointment.Time,
		&appointment.Reason,
		&appointment.Status,
		&appointment.ConfirmedBy,
		&appointment.CancelledBy,
		&appointment.CancellationReason,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener la cita: %w", err)
	}

	appointment.Date = date.Format("2006-01-02")

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE citas
		SET paciente_nombre = $1, paciente_dni = $2, paciente_email = $3, fecha = $4, hora = $5,
		    motivo = $6, estado = $7, confirmada_por = $8, cancelada_por = $9,
		    motivo_cancelacion = $10, updated_at = $11
		WHERE id = $12
	`

	tag, err := r.db.Exec(ctx, query,
		appointment.PatientName,
		appointment.PatientDNI,
		appointment.PatientEmail,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
		appointment.Status,
		appointment.ConfirmedBy,
		appointment.CancelledBy,
		appointment.CancellationReason,
		time.Now(),
		appointment.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("error al actualizar la cita: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var conditions []string
	var args []interface{}

	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		conditions = append(conditions, fmt.Sprintf("doctor_id = $%d", len(args)))
	}
	if filter.PatientEmail != nil {
		args = append(args, *filter.PatientEmail)
		conditions = append(conditions, fmt.Sprintf("paciente_email = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("fecha = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("estado = $%d", len(args)))
	}

	query := appointmentSelect
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY fecha, hora`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.queryAppointments(ctx, query, args...)
}

func (r *AppointmentRepo) CountActiveAt(ctx context.Context, doctorID int64, date, hour string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM citas WHERE doctor_id = $1 AND fecha = $2 AND hora = $3 AND estado <> $4`,
		doctorID, date, hour, domain.AppointmentStatusCancelled,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar las citas del turno: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) ListActiveByDoctorDate(ctx context.Context, doctorID int64, date string) ([]domain.Appointment, error) {
	query := appointmentSelect + ` WHERE doctor_id = $1 AND fecha = $2 AND estado <> $3 ORDER BY hora`
	return r.queryAppointments(ctx, query, doctorID, date, domain.AppointmentStatusCancelled)
}

func (r *AppointmentRepo) ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.Appointment, error) {
	query := appointmentSelect + `
		WHERE doctor_id = $1
		  AND EXTRACT(MONTH FROM fecha) = $2
		  AND EXTRACT(YEAR FROM fecha) = $3
		ORDER BY fecha, hora`
	return r.queryAppointments(ctx, query, doctorID, month, year)
}

func (r *AppointmentRepo) queryAppointments(ctx context.Context, query string, args ...interface{}) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las citas: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		var date time.Time

		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientName,
			&appointment.PatientDNI,
			&appointment.PatientEmail,
			&appointment.DoctorID,
			&appointment.DoctorName,
			&date,
			&appointment.Time,
			&appointment.Reason,
			&appointment.Status,
			&appointment.ConfirmedBy,
			&appointment.CancelledBy,
			&appointment.CancellationReason,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la cita: %w", err)
		}

		appointment.Date = date.Format("2006-01-02")
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}
