package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/schedule"
	"clinica/pkg/validator"
)

const cancellationNotice = 24 * time.Hour

type AppointmentServiceImpl struct {
	repo           repository.AppointmentRepository
	assignmentRepo repository.AssignmentRepository
	doctorRepo     repository.DoctorRepository
	notification   NotificationService
	logger         *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	assignmentRepo repository.AssignmentRepository,
	doctorRepo repository.DoctorRepository,
	notification NotificationService,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		doctorRepo:     doctorRepo,
		notification:   notification,
		logger:         logger,
	}
}

// Create reserva una cita validando contra las asignaciones del doctor:
// el doctor debe atender ese día de la semana, el horario debe caber
// completo dentro del rango asignado y el turno debe estar libre.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error) {
	if !validator.ValidateDate(dto.Date) {
		return 0, errors.New("la fecha debe tener formato AAAA-MM-DD")
	}
	if !validator.ValidateTime(dto.Time) {
		return 0, errors.New("la hora debe tener formato HH:MM")
	}
	if !validator.ValidateDNI(dto.PatientDNI) {
		return 0, errors.New("el formato del DNI es inválido")
	}
	if !validator.ValidateEmail(dto.PatientEmail) {
		return 0, errors.New("el formato del email es inválido")
	}

	status := dto.Status
	if status == "" {
		status = domain.AppointmentStatusPending
	}
	if !status.Valid() {
		return 0, errors.New("estado de cita inválido")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil {
		return 0, domain.ErrNotFound
	}

	if err := s.checkSlot(ctx, doctor.ID, dto.Date, dto.Time); err != nil {
		return 0, err
	}

	appointment := domain.Appointment{
		PatientName:  validator.FormatName(dto.PatientName),
		PatientDNI:   dto.PatientDNI,
		PatientEmail: dto.PatientEmail,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.FullName,
		Date:         dto.Date,
		Time:         dto.Time,
		Reason:       validator.SanitizeString(dto.Reason),
		Status:       status,
	}

	id, err := s.repo.Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return 0, err
		}
		s.logger.Error("error al crear la cita", zap.Error(err))
		return 0, errors.New("error al crear la cita")
	}

	appointment.ID = id
	s.notification.AppointmentCreated(appointment)

	s.logger.Info("cita creada",
		zap.Int64("appointmentId", id),
		zap.Int64("doctorId", doctor.ID),
		zap.String("date", dto.Date),
		zap.String("time", dto.Time),
	)

	return id, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// FreeSlots devuelve los turnos de 30 minutos libres de un doctor en una
// fecha: los generados por sus asignaciones vigentes menos los ocupados.
func (s *AppointmentServiceImpl) FreeSlots(ctx context.Context, doctorID int64, date string) ([]string, error) {
	if !validator.ValidateDate(date) {
		return nil, errors.New("la fecha debe tener formato AAAA-MM-DD")
	}

	assignments, weekday, err := s.assignmentsForDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	slotSet := make(map[string]struct{})
	for _, assignment := range assignments {
		if !schedule.ShareWeekday(assignment.WeekDays, []int{weekday}) {
			continue
		}
		for _, slot := range schedule.GenerateSlots(assignment.StartTime, assignment.EndTime) {
			slotSet[slot] = struct{}{}
		}
	}

	booked, err := s.repo.ListActiveByDoctorDate(ctx, doctorID, date)
	if err != nil {
		s.logger.Error("error al obtener las citas del día", zap.Int64("doctorId", doctorID), zap.Error(err))
		return nil, errors.New("error al obtener los turnos disponibles")
	}
	for _, appointment := range booked {
		delete(slotSet, appointment.Time)
	}

	slots := make([]string, 0, len(slotSet))
	for slot := range slotSet {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	return slots, nil
}

// ChangeStatus aplica la tabla de transiciones. La cancelación siempre
// requiere motivo; los pacientes además deben cancelar con al menos 24
// horas de anticipación, límite que no aplica a doctores ni admins.
func (s *AppointmentServiceImpl) ChangeStatus(ctx context.Context, id int64, actor string, role domain.UserRole, dto domain.ChangeStatusDTO) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !appointment.Status.CanTransitionTo(dto.Status) {
		return domain.ErrInvalidTransition
	}

	switch dto.Status {
	case domain.AppointmentStatusConfirmed:
		appointment.ConfirmedBy = &actor

	case domain.AppointmentStatusCancelled:
		if dto.CancellationReason == "" {
			return domain.ErrReasonRequired
		}
		if role == domain.UserRolePatient {
			startsAt, err := time.ParseInLocation("2006-01-02 15:04", appointment.Date+" "+appointment.Time, time.Local)
			if err != nil {
				return errors.New("la cita tiene una fecha inválida")
			}
			if time.Until(startsAt) < cancellationNotice {
				return domain.ErrCancellationTooLate
			}
		}
		reason := validator.SanitizeString(dto.CancellationReason)
		appointment.CancelledBy = &actor
		appointment.CancellationReason = &reason
	}

	appointment.Status = dto.Status

	if err := s.repo.Update(ctx, *appointment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar la cita", zap.Int64("appointmentId", id), zap.Error(err))
		return errors.New("error al actualizar la cita")
	}

	s.notification.AppointmentStatusChanged(*appointment)

	s.logger.Info("estado de cita actualizado",
		zap.Int64("appointmentId", id),
		zap.String("status", string(dto.Status)),
		zap.String("actor", actor),
	)

	return nil
}

// AdminUpdate reemplaza campos arbitrarios sin pasar por la tabla de
// transiciones. Si cambia la fecha o la hora se vuelve a validar el turno.
func (s *AppointmentServiceImpl) AdminUpdate(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	reschedule := false

	if dto.PatientName != nil {
		appointment.PatientName = validator.FormatName(*dto.PatientName)
	}
	if dto.PatientDNI != nil {
		if !validator.ValidateDNI(*dto.PatientDNI) {
			return errors.New("el formato del DNI es inválido")
		}
		appointment.PatientDNI = *dto.PatientDNI
	}
	if dto.PatientEmail != nil {
		if !validator.ValidateEmail(*dto.PatientEmail) {
			return errors.New("el formato del email es inválido")
		}
		appointment.PatientEmail = *dto.PatientEmail
	}
	if dto.Date != nil {
		if !validator.ValidateDate(*dto.Date) {
			return errors.New("la fecha debe tener formato AAAA-MM-DD")
		}
		if *dto.Date != appointment.Date {
			reschedule = true
		}
		appointment.Date = *dto.Date
	}
	if dto.Time != nil {
		if !validator.ValidateTime(*dto.Time) {
			return errors.New("la hora debe tener formato HH:MM")
		}
		if *dto.Time != appointment.Time {
			reschedule = true
		}
		appointment.Time = *dto.Time
	}
	if dto.Reason != nil {
		appointment.Reason = validator.SanitizeString(*dto.Reason)
	}

	statusChanged := false
	if dto.Status != nil {
		if !dto.Status.Valid() {
			return errors.New("estado de cita inválido")
		}
		statusChanged = appointment.Status != *dto.Status
		appointment.Status = *dto.Status
	}

	if reschedule && appointment.Status != domain.AppointmentStatusCancelled {
		if err := s.checkSlot(ctx, appointment.DoctorID, appointment.Date, appointment.Time); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, *appointment); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrSlotTaken) {
			return err
		}
		s.logger.Error("error al actualizar la cita", zap.Int64("appointmentId", id), zap.Error(err))
		return errors.New("error al actualizar la cita")
	}

	if statusChanged {
		s.notification.AppointmentStatusChanged(*appointment)
	}

	return nil
}

// checkSlot verifica que el doctor atienda ese día, que el turno entre
// completo en el rango asignado y que nadie lo haya tomado.
func (s *AppointmentServiceImpl) checkSlot(ctx context.Context, doctorID int64, date, hour string) error {
	assignments, weekday, err := s.assignmentsForDate(ctx, doctorID, date)
	if err != nil {
		return err
	}

	var covering []domain.OfficeAssignment
	for _, assignment := range assignments {
		if schedule.ShareWeekday(assignment.WeekDays, []int{weekday}) {
			covering = append(covering, assignment)
		}
	}
	if len(covering) == 0 {
		return domain.ErrDoctorNotAssigned
	}

	fits := false
	for _, assignment := range covering {
		if schedule.FitsWithin(hour, assignment.StartTime, assignment.EndTime) {
			fits = true
			break
		}
	}
	if !fits {
		return domain.ErrTimeNotAvailable
	}

	count, err := s.repo.CountActiveAt(ctx, doctorID, date, hour)
	if err != nil {
		s.logger.Error("error al verificar el turno", zap.Int64("doctorId", doctorID), zap.Error(err))
		return errors.New("error al verificar el turno")
	}
	if count > 0 {
		return domain.ErrSlotTaken
	}

	return nil
}

func (s *AppointmentServiceImpl) assignmentsForDate(ctx context.Context, doctorID int64, date string) ([]domain.OfficeAssignment, int, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, 0, errors.New("la fecha debe tener formato AAAA-MM-DD")
	}

	weekday, err := schedule.Weekday(date)
	if err != nil {
		return nil, 0, err
	}

	assignments, err := s.assignmentRepo.ListByDoctorMonth(ctx, doctorID, int(parsed.Month()), parsed.Year())
	if err != nil {
		s.logger.Error("error al obtener las asignaciones", zap.Int64("doctorId", doctorID), zap.Error(err))
		return nil, 0, errors.New("error al obtener las asignaciones del doctor")
	}

	return assignments, weekday, nil
}
