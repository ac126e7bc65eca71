package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/schedule"
	"clinica/pkg/validator"
)

type AssignmentServiceImpl struct {
	repo            repository.AssignmentRepository
	officeRepo      repository.OfficeRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
}

func NewAssignmentService(
	repo repository.AssignmentRepository,
	officeRepo repository.OfficeRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		repo:            repo,
		officeRepo:      officeRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create valida la asignación contra las existentes del consultorio y del
// doctor en el mismo mes antes de guardarla. Dos asignaciones chocan solo
// si comparten algún día de la semana y sus rangos horarios se solapan.
func (s *AssignmentServiceImpl) Create(ctx context.Context, dto domain.AssignmentDTO) (int64, error) {
	if err := s.validate(&dto); err != nil {
		return 0, err
	}

	office, err := s.officeRepo.GetByID(ctx, dto.OfficeID)
	if err != nil {
		return 0, fmt.Errorf("consultorio no encontrado: %w", domain.ErrNotFound)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil {
		return 0, fmt.Errorf("doctor no encontrado: %w", domain.ErrNotFound)
	}

	if err := s.checkConflicts(ctx, dto, 0); err != nil {
		return 0, err
	}

	assignment := domain.OfficeAssignment{
		OfficeID:   office.ID,
		OfficeName: office.Name,
		DoctorID:   doctor.ID,
		DoctorName: doctor.FullName,
		Month:      dto.Month,
		Year:       dto.Year,
		WeekDays:   dto.WeekDays,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
	}

	id, err := s.repo.Create(ctx, assignment)
	if err != nil {
		s.logger.Error("error al crear la asignación", zap.Error(err))
		return 0, errors.New("error al crear la asignación")
	}

	s.logger.Info("asignación creada",
		zap.Int64("assignmentId", id),
		zap.Int64("officeId", office.ID),
		zap.Int64("doctorId", doctor.ID),
		zap.Int("month", dto.Month),
		zap.Int("year", dto.Year),
	)

	return id, nil
}

func (s *AssignmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.OfficeAssignment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssignmentServiceImpl) Update(ctx context.Context, id int64, dto domain.AssignmentDTO) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validate(&dto); err != nil {
		return err
	}

	office, err := s.officeRepo.GetByID(ctx, dto.OfficeID)
	if err != nil {
		return fmt.Errorf("consultorio no encontrado: %w", domain.ErrNotFound)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil {
		return fmt.Errorf("doctor no encontrado: %w", domain.ErrNotFound)
	}

	if err := s.checkConflicts(ctx, dto, current.ID); err != nil {
		return err
	}

	assignment := domain.OfficeAssignment{
		ID:         current.ID,
		OfficeID:   office.ID,
		OfficeName: office.Name,
		DoctorID:   doctor.ID,
		DoctorName: doctor.FullName,
		Month:      dto.Month,
		Year:       dto.Year,
		WeekDays:   dto.WeekDays,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar la asignación", zap.Int64("assignmentId", id), zap.Error(err))
		return errors.New("error al actualizar la asignación")
	}

	return nil
}

// Delete elimina la asignación sin tocar las citas ya reservadas. Si quedan
// citas activas que dependían de ella, se registra la advertencia para que
// el admin las reprograme o cancele a mano.
func (s *AssignmentServiceImpl) Delete(ctx context.Context, id int64) error {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	orphaned, err := s.orphanedAppointments(ctx, assignment)
	if err != nil {
		s.logger.Warn("no se pudieron verificar las citas dependientes", zap.Int64("assignmentId", id), zap.Error(err))
	} else if len(orphaned) > 0 {
		s.logger.Warn("la asignación eliminada deja citas activas sin respaldo",
			zap.Int64("assignmentId", id),
			zap.Int64("doctorId", assignment.DoctorID),
			zap.Int("appointments", len(orphaned)),
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al eliminar la asignación", zap.Int64("assignmentId", id), zap.Error(err))
		return errors.New("error al eliminar la asignación")
	}

	return nil
}

func (s *AssignmentServiceImpl) List(ctx context.Context) ([]domain.OfficeAssignment, error) {
	return s.repo.List(ctx)
}

func (s *AssignmentServiceImpl) ListByOffice(ctx context.Context, officeID int64, month, year int) ([]domain.OfficeAssignment, error) {
	return s.repo.ListByOfficeMonth(ctx, officeID, month, year)
}

func (s *AssignmentServiceImpl) ListByDoctor(ctx context.Context, doctorID int64, month, year int) ([]domain.OfficeAssignment, error) {
	return s.repo.ListByDoctorMonth(ctx, doctorID, month, year)
}

func (s *AssignmentServiceImpl) CheckOfficeAvailability(ctx context.Context, dto domain.AssignmentDTO, excludeID int64) (*domain.Availability, error) {
	existing, err := s.repo.ListByOfficeMonth(ctx, dto.OfficeID, dto.Month, dto.Year)
	if err != nil {
		return nil, fmt.Errorf("error al verificar el consultorio: %w", err)
	}

	conflicts := conflictingAssignments(existing, dto, excludeID)
	return &domain.Availability{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func (s *AssignmentServiceImpl) CheckDoctorAvailability(ctx context.Context, dto domain.AssignmentDTO, excludeID int64) (*domain.Availability, error) {
	existing, err := s.repo.ListByDoctorMonth(ctx, dto.DoctorID, dto.Month, dto.Year)
	if err != nil {
		return nil, fmt.Errorf("error al verificar el doctor: %w", err)
	}

	conflicts := conflictingAssignments(existing, dto, excludeID)
	return &domain.Availability{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func (s *AssignmentServiceImpl) validate(dto *domain.AssignmentDTO) error {
	if !validator.ValidateTime(dto.StartTime) || !validator.ValidateTime(dto.EndTime) {
		return errors.New("los horarios deben tener formato HH:MM")
	}

	start := schedule.MinutesOfDay(dto.StartTime)
	end := schedule.MinutesOfDay(dto.EndTime)
	if start >= end {
		return errors.New("la hora de inicio debe ser anterior a la hora de fin")
	}
	if end-start < schedule.SlotMinutes {
		return errors.New("el rango horario debe permitir al menos un turno de 30 minutos")
	}

	dto.WeekDays = schedule.NormalizeWeekdays(dto.WeekDays)
	if len(dto.WeekDays) == 0 {
		return errors.New("la asignación requiere al menos un día de la semana válido")
	}

	return nil
}

func (s *AssignmentServiceImpl) checkConflicts(ctx context.Context, dto domain.AssignmentDTO, excludeID int64) error {
	officeAvailability, err := s.CheckOfficeAvailability(ctx, dto, excludeID)
	if err != nil {
		return err
	}

	doctorAvailability, err := s.CheckDoctorAvailability(ctx, dto, excludeID)
	if err != nil {
		return err
	}

	conflicts := append(officeAvailability.Conflicts, doctorAvailability.Conflicts...)
	if len(conflicts) > 0 {
		return &domain.ConflictError{Conflicts: conflicts}
	}

	return nil
}

// orphanedAppointments devuelve las citas activas del mes que caen dentro
// de los días y el rango horario de la asignación.
func (s *AssignmentServiceImpl) orphanedAppointments(ctx context.Context, assignment *domain.OfficeAssignment) ([]domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListByDoctorMonth(ctx, assignment.DoctorID, assignment.Month, assignment.Year)
	if err != nil {
		return nil, err
	}

	var orphaned []domain.Appointment
	for _, appointment := range appointments {
		if appointment.Status == domain.AppointmentStatusCancelled ||
			appointment.Status == domain.AppointmentStatusCompleted {
			continue
		}

		weekday, err := schedule.Weekday(appointment.Date)
		if err != nil {
			continue
		}
		if !schedule.ShareWeekday(assignment.WeekDays, []int{weekday}) {
			continue
		}
		if schedule.FitsWithin(appointment.Time, assignment.StartTime, assignment.EndTime) {
			orphaned = append(orphaned, appointment)
		}
	}

	return orphaned, nil
}

func conflictingAssignments(existing []domain.OfficeAssignment, dto domain.AssignmentDTO, excludeID int64) []domain.OfficeAssignment {
	start := schedule.MinutesOfDay(dto.StartTime)
	end := schedule.MinutesOfDay(dto.EndTime)

	var conflicts []domain.OfficeAssignment
	for _, assignment := range existing {
		if excludeID != 0 && assignment.ID == excludeID {
			continue
		}
		if !schedule.ShareWeekday(assignment.WeekDays, dto.WeekDays) {
			continue
		}
		if schedule.RangesOverlap(start, end, schedule.MinutesOfDay(assignment.StartTime), schedule.MinutesOfDay(assignment.EndTime)) {
			conflicts = append(conflicts, assignment)
		}
	}

	return conflicts
}
