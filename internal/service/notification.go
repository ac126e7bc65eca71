package service

import (
	"fmt"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/pkg/mailer"
)

// NotificationServiceImpl envía los correos en segundo plano. Un fallo de
// envío se registra y se descarta: el correo nunca bloquea una operación.
type NotificationServiceImpl struct {
	mailer mailer.Mailer
	logger *zap.Logger
}

func NewNotificationService(mailer mailer.Mailer, logger *zap.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		mailer: mailer,
		logger: logger,
	}
}

func (s *NotificationServiceImpl) AppointmentCreated(appointment domain.Appointment) {
	subject := "Cita registrada"
	body := fmt.Sprintf(
		"Hola %s,\n\nTu cita con %s quedó registrada para el %s a las %s y está pendiente de confirmación.\n\nMotivo: %s\n\nSaludos,\nClínica",
		appointment.PatientName,
		appointment.DoctorName,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
	)

	s.send(appointment.PatientEmail, subject, body, appointment.ID)
}

func (s *NotificationServiceImpl) AppointmentStatusChanged(appointment domain.Appointment) {
	var subject, detail string

	switch appointment.Status {
	case domain.AppointmentStatusConfirmed:
		subject = "Cita confirmada"
		detail = fmt.Sprintf("Tu cita con %s del %s a las %s fue confirmada.",
			appointment.DoctorName, appointment.Date, appointment.Time)
	case domain.AppointmentStatusCompleted:
		subject = "Cita completada"
		detail = fmt.Sprintf("Tu cita con %s del %s a las %s fue marcada como completada.",
			appointment.DoctorName, appointment.Date, appointment.Time)
	case domain.AppointmentStatusCancelled:
		subject = "Cita cancelada"
		reason := ""
		if appointment.CancellationReason != nil {
			reason = "\n\nMotivo: " + *appointment.CancellationReason
		}
		detail = fmt.Sprintf("Tu cita con %s del %s a las %s fue cancelada.%s",
			appointment.DoctorName, appointment.Date, appointment.Time, reason)
	default:
		return
	}

	body := fmt.Sprintf("Hola %s,\n\n%s\n\nSaludos,\nClínica", appointment.PatientName, detail)
	s.send(appointment.PatientEmail, subject, body, appointment.ID)
}

func (s *NotificationServiceImpl) send(to, subject, body string, appointmentID int64) {
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			s.logger.Warn("error al enviar la notificación por correo",
				zap.Int64("appointmentId", appointmentID),
				zap.String("to", to),
				zap.Error(err),
			)
		}
	}()
}
