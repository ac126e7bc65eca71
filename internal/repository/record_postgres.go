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

type RecordRepo struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) *RecordRepo {
	return &RecordRepo{db: db}
}

const recordSelect = `
	SELECT id, paciente_dni, paciente_email, doctor_id, doctor_nombre,
	       cita_id, diagnostico, notas, created_at
	FROM historias
`

// Create inserta la entrada de historia clínica junto con sus recetas y
// estudios en una sola transacción.
func (r *RecordRepo) Create(ctx context.Context, doctorID int64, doctorName string, record domain.CreateRecordDTO) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO historias (paciente_dni, paciente_email, doctor_id, doctor_nombre,
		                       cita_id, diagnostico, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		record.PatientDNI,
		record.PatientEmail,
		doctorID,
		doctorName,
		record.AppointmentID,
		record.Diagnosis,
		record.Notes,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error al crear la historia clínica: %w", err)
	}

	for _, p := range record.Prescriptions {
		_, err = tx.Exec(ctx,
			`INSERT INTO recetas (historia_id, medicamento, dosis, indicaciones) VALUES ($1, $2, $3, $4)`,
			id, p.Medication, p.Dosage, p.Instructions,
		)
		if err != nil {
			return 0, fmt.Errorf("error al crear la receta: %w", err)
		}
	}

	for _, s := range record.Studies {
		_, err = tx.Exec(ctx,
			`INSERT INTO estudios (historia_id, nombre, created_at) VALUES ($1, $2, $3)`,
			id, s.Name, time.Now(),
		)
		if err != nil {
			return 0, fmt.Errorf("error al crear el estudio: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return id, nil
}

func (r *RecordRepo) GetByID(ctx context.Context, id int64) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	err := r.db.QueryRow(ctx, recordSelect+` WHERE id = $1`, id).Scan(
		&record.ID,
		&record.PatientDNI,
		&record.PatientEmail,
		&record.DoctorID,
		&record.DoctorName,
		&record.AppointmentID,
		&record.Diagnosis,
		&record.Notes,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener la historia clínica: %w", err)
	}

	if err := r.loadDetails(ctx, []*domain.MedicalRecord{&record}); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *RecordRepo) ListByPatientDNI(ctx context.Context, dni string) ([]domain.MedicalRecord, error) {
	query := recordSelect + ` WHERE paciente_dni = $1 ORDER BY created_at DESC`
	return r.queryRecords(ctx, query, dni)
}

func (r *RecordRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.MedicalRecord, error) {
	query := recordSelect + ` WHERE doctor_id = $1 ORDER BY created_at DESC`
	return r.queryRecords(ctx, query, doctorID)
}

func (r *RecordRepo) queryRecords(ctx context.Context, query string, args ...interface{}) ([]domain.MedicalRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las historias clínicas: %w", err)
	}
	defer rows.Close()

	var records []domain.MedicalRecord
	for rows.Next() {
		var record domain.MedicalRecord
		err := rows.Scan(
			&record.ID,
			&record.PatientDNI,
			&record.PatientEmail,
			&record.DoctorID,
			&record.DoctorName,
			&record.AppointmentID,
			&record.Diagnosis,
			&record.Notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la historia clínica: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.MedicalRecord, len(records))
	for i := range records {
		refs[i] = &records[i]
	}
	if err := r.loadDetails(ctx, refs); err != nil {
		return nil, err
	}

	return records, nil
}

// loadDetails completa recetas y estudios de cada historia. Las listas se
// inicializan vacías para que el JSON nunca devuelva null.
func (r *RecordRepo) loadDetails(ctx context.Context, records []*domain.MedicalRecord) error {
	byID := make(map[int64]*domain.MedicalRecord, len(records))
	ids := make([]int64, 0, len(records))
	for _, record := range records {
		record.Prescriptions = []domain.Prescription{}
		record.Studies = []domain.Study{}
		byID[record.ID] = record
		ids = append(ids, record.ID)
	}

	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, historia_id, medicamento, dosis, indicaciones FROM recetas WHERE historia_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("error al obtener las recetas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Prescription
		if err := rows.Scan(&p.ID, &p.RecordID, &p.Medication, &p.Dosage, &p.Instructions); err != nil {
			return fmt.Errorf("error al escanear la receta: %w", err)
		}
		if record, ok := byID[p.RecordID]; ok {
			record.Prescriptions = append(record.Prescriptions, p)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	studyRows, err := r.db.Query(ctx,
		`SELECT id, historia_id, nombre, archivo_url, created_at FROM estudios WHERE historia_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("error al obtener los estudios: %w", err)
	}
	defer studyRows.Close()

	for studyRows.Next() {
		var s domain.Study
		if err := studyRows.Scan(&s.ID, &s.RecordID, &s.Name, &s.FileURL, &s.CreatedAt); err != nil {
			return fmt.Errorf("error al escanear el estudio: %w", err)
		}
		if record, ok := byID[s.RecordID]; ok {
			record.Studies = append(record.Studies, s)
		}
	}

	return studyRows.Err()
}

func (r *RecordRepo) GetStudyByID(ctx context.Context, id int64) (*domain.Study, error) {
	var study domain.Study
	err := r.db.QueryRow(ctx,
		`SELECT id, historia_id, nombre, archivo_url, created_at FROM estudios WHERE id = $1`,
		id,
	).Scan(&study.ID, &study.RecordID, &study.Name, &study.FileURL, &study.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener el estudio: %w", err)
	}

	return &study, nil
}

func (r *RecordRepo) SetStudyFileURL(ctx context.Context, id int64, fileURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE estudios SET archivo_url = $1 WHERE id = $2`, fileURL, id)
	if err != nil {
		return fmt.Errorf("error al actualizar el estudio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
