package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pendiente"
	AppointmentStatusConfirmed AppointmentStatus = "confirmada"
	AppointmentStatusCompleted AppointmentStatus = "completada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// statusTransitions es la tabla central de transiciones permitidas.
// completada y cancelada son estados terminales.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment es una cita de un paciente con un doctor en una fecha y hora.
// Los datos del paciente se guardan desnormalizados: las citas nunca se
// borran y deben seguir siendo legibles aunque cambie el padrón de usuarios.
type Appointment struct {
	ID                 int64             `json:"id"`
	PatientName        string            `json:"patientName"`
	PatientDNI         string            `json:"patientDni"`
	PatientEmail       string            `json:"patientEmail"`
	DoctorID           int64             `json:"doctorId"`
	DoctorName         string            `json:"doctorName"`
	Date               string            `json:"date"`
	Time               string            `json:"time"`
	Reason             string            `json:"reason"`
	Status             AppointmentStatus `json:"status"`
	ConfirmedBy        *string           `json:"confirmedBy,omitempty"`
	CancelledBy        *string           `json:"cancelledBy,omitempty"`
	CancellationReason *string           `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

type CreateAppointmentDTO struct {
	PatientName  string            `json:"patientName" binding:"required"`
	PatientDNI   string            `json:"patientDni" binding:"required"`
	PatientEmail string            `json:"patientEmail" binding:"required,email"`
	DoctorID     int64             `json:"doctorId" binding:"required"`
	DoctorName   string            `json:"doctorName"`
	Date         string            `json:"date" binding:"required"`
	Time         string            `json:"time" binding:"required"`
	Reason       string            `json:"reason" binding:"required"`
	Status       AppointmentStatus `json:"status" binding:"omitempty,oneof=pendiente confirmada completada cancelada"`
}

type ChangeStatusDTO struct {
	Status             AppointmentStatus `json:"status" binding:"required,oneof=pendiente confirmada completada cancelada"`
	CancellationReason string            `json:"cancellationReason"`
}

// UpdateAppointmentDTO es el reemplazo de campos arbitrarios reservado
// al admin; no pasa por la tabla de transiciones.
type UpdateAppointmentDTO struct {
	PatientName  *string            `json:"patientName"`
	PatientDNI   *string            `json:"patientDni"`
	PatientEmail *string            `json:"patientEmail" binding:"omitempty,email"`
	Date         *string            `json:"date"`
	Time         *string            `json:"time"`
	Reason       *string            `json:"reason"`
	Status       *AppointmentStatus `json:"status" binding:"omitempty,oneof=pendiente confirmada completada cancelada"`
}

type AppointmentFilter struct {
	DoctorID     *int64             `json:"doctorId"`
	PatientEmail *string            `json:"patientEmail"`
	Date         *string            `json:"date"`
	Status       *AppointmentStatus `json:"status"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
}
