package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de regla de negocio: resultados esperados que el llamador puede
// corregir ajustando su pedido. Los handlers los traducen a 400/404/409.
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrDoctorNotAssigned      = errors.New("el doctor no tiene consultorio asignado en esta fecha")
	ErrTimeNotAvailable       = errors.New("el horario no está disponible para este doctor en este día")
	ErrSlotTaken              = errors.New("el horario ya está ocupado")
	ErrScheduleConflict       = errors.New("conflicto con una asignación existente")
	ErrInvalidTransition      = errors.New("transición de estado no permitida")
	ErrReasonRequired         = errors.New("la cancelación requiere un motivo")
	ErrCancellationTooLate    = errors.New("las citas solo pueden cancelarse con al menos 24 horas de anticipación")
	ErrEmailAlreadyRegistered = errors.New("ya existe un usuario con ese email")
	ErrDNIAlreadyRegistered   = errors.New("ya existe un usuario con ese DNI")
)

// ConflictError envuelve ErrScheduleConflict con las asignaciones que
// chocan, para que la respuesta enumere doctor, consultorio y rango.
type ConflictError struct {
	Conflicts []OfficeAssignment
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrScheduleConflict.Error()
	}

	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s en %s de %s a %s",
			c.DoctorName, c.OfficeName, c.StartTime, c.EndTime))
	}

	return fmt.Sprintf("%s: %s", ErrScheduleConflict.Error(), strings.Join(parts, "; "))
}

func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
