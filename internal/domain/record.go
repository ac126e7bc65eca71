package domain

import (
	"time"
)

// MedicalRecord es una entrada de historia clínica escrita por un doctor.
type MedicalRecord struct {
	ID            int64          `json:"id"`
	PatientDNI    string         `json:"patientDni"`
	PatientEmail  string         `json:"patientEmail"`
	DoctorID      int64          `json:"doctorId"`
	DoctorName    string         `json:"doctorName"`
	AppointmentID *int64         `json:"appointmentId,omitempty"`
	Diagnosis     string         `json:"diagnosis"`
	Notes         string         `json:"notes,omitempty"`
	Prescriptions []Prescription `json:"prescriptions"`
	Studies       []Study        `json:"studies"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type Prescription struct {
	ID           int64  `json:"id"`
	RecordID     int64  `json:"recordId"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions,omitempty"`
}

// Study es un estudio solicitado o realizado; FileURL apunta al archivo
// subido al almacenamiento de objetos cuando existe.
type Study struct {
	ID        int64     `json:"id"`
	RecordID  int64     `json:"recordId"`
	Name      string    `json:"name"`
	FileURL   *string   `json:"fileUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRecordDTO struct {
	PatientDNI    string            `json:"patientDni" binding:"required"`
	PatientEmail  string            `json:"patientEmail" binding:"required,email"`
	AppointmentID *int64            `json:"appointmentId"`
	Diagnosis     string            `json:"diagnosis" binding:"required"`
	Notes         string            `json:"notes"`
	Prescriptions []PrescriptionDTO `json:"prescriptions"`
	Studies       []CreateStudyDTO  `json:"studies"`
}

type PrescriptionDTO struct {
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Instructions string `json:"instructions"`
}

type CreateStudyDTO struct {
	Name string `json:"name" binding:"required"`
}
