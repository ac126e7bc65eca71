package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// El escenario base: la doctora Ana García atiende en noviembre de 2030
// los lunes, miércoles y viernes de 08:00 a 10:00. El 4 de noviembre de
// 2030 es lunes.
func newAppointmentFixture() (*AppointmentServiceImpl, *fakeAppointmentRepo, *notificationRecorder) {
	appointmentRepo := newFakeAppointmentRepo()
	assignmentRepo := newFakeAssignmentRepo()
	doctorRepo := &fakeDoctorRepo{items: map[int64]domain.Doctor{
		1: {ID: 1, UserID: 10, FullName: "Ana García", Specialty: "Cardiología"},
	}}

	assignmentRepo.Create(context.Background(), domain.OfficeAssignment{
		OfficeID:   1,
		OfficeName: "Consultorio A",
		DoctorID:   1,
		DoctorName: "Ana García",
		Month:      11,
		Year:       2030,
		WeekDays:   []int{1, 3, 5},
		StartTime:  "08:00",
		EndTime:    "10:00",
	})

	recorder := &notificationRecorder{}
	svc := NewAppointmentService(appointmentRepo, assignmentRepo, doctorRepo, recorder, zap.NewNop())
	return svc, appointmentRepo, recorder
}

func baseAppointmentDTO() domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		PatientName:  "Juan López",
		PatientDNI:   "30123456",
		PatientEmail: "juan@example.com",
		DoctorID:     1,
		Date:         "2030-11-04",
		Time:         "08:30",
		Reason:       "Control anual",
	}
}

func TestAppointmentCreate(t *testing.T) {
	svc, repo, recorder := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	stored := repo.items[id]
	assert.Equal(t, domain.AppointmentStatusPending, stored.Status)
	assert.Equal(t, "Ana García", stored.DoctorName)
	assert.Equal(t, "Juan López", stored.PatientName)
	assert.Len(t, recorder.created, 1)
}

func TestAppointmentCreateDayWithoutAssignment(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	// El 5 de noviembre de 2030 es martes y la doctora no atiende.
	dto := baseAppointmentDTO()
	dto.Date = "2030-11-05"

	_, err := svc.Create(ctx, dto)
	assert.True(t, errors.Is(err, domain.ErrDoctorNotAssigned))
}

func TestAppointmentCreateOutsideRange(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	// 09:45 no deja lugar a un turno completo antes de las 10:00.
	dto := baseAppointmentDTO()
	dto.Time = "09:45"
	_, err := svc.Create(ctx, dto)
	assert.True(t, errors.Is(err, domain.ErrTimeNotAvailable))

	dto.Time = "07:30"
	_, err = svc.Create(ctx, dto)
	assert.True(t, errors.Is(err, domain.ErrTimeNotAvailable))
}

func TestAppointmentCreateSlotTaken(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	dto := baseAppointmentDTO()
	dto.PatientDNI = "28999888"
	dto.PatientEmail = "otra@example.com"

	_, err = svc.Create(ctx, dto)
	assert.True(t, errors.Is(err, domain.ErrSlotTaken))
}

func TestAppointmentCancelFreesSlot(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	err = svc.ChangeStatus(ctx, id, "admin@clinica.local", domain.UserRoleAdmin, domain.ChangeStatusDTO{
		Status:             domain.AppointmentStatusCancelled,
		CancellationReason: "El paciente no puede asistir",
	})
	require.NoError(t, err)

	// El turno cancelado vuelve a estar disponible.
	dto := baseAppointmentDTO()
	dto.PatientDNI = "28999888"
	_, err = svc.Create(ctx, dto)
	assert.NoError(t, err)
}

func TestAppointmentUnknownDoctor(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	dto := baseAppointmentDTO()
	dto.DoctorID = 42

	_, err := svc.Create(context.Background(), dto)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAppointmentStatusTransitions(t *testing.T) {
	svc, repo, recorder := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	// pendiente -> completada no está permitido.
	err = svc.ChangeStatus(ctx, id, "doctor", domain.UserRoleDoctor, domain.ChangeStatusDTO{
		Status: domain.AppointmentStatusCompleted,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	// pendiente -> confirmada -> completada sí.
	err = svc.ChangeStatus(ctx, id, "doctor", domain.UserRoleDoctor, domain.ChangeStatusDTO{
		Status: domain.AppointmentStatusConfirmed,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.items[id].ConfirmedBy)
	assert.Equal(t, "doctor", *repo.items[id].ConfirmedBy)

	err = svc.ChangeStatus(ctx, id, "doctor", domain.UserRoleDoctor, domain.ChangeStatusDTO{
		Status: domain.AppointmentStatusCompleted,
	})
	require.NoError(t, err)

	// completada es terminal.
	err = svc.ChangeStatus(ctx, id, "admin", domain.UserRoleAdmin, domain.ChangeStatusDTO{
		Status:             domain.AppointmentStatusCancelled,
		CancellationReason: "tarde",
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	assert.Len(t, recorder.changed, 2)
}

func TestAppointmentCancelRequiresReason(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	err = svc.ChangeStatus(ctx, id, "admin", domain.UserRoleAdmin, domain.ChangeStatusDTO{
		Status: domain.AppointmentStatusCancelled,
	})
	assert.True(t, errors.Is(err, domain.ErrReasonRequired))
}

func TestAppointmentPatientCancellationNotice(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()
	ctx := context.Background()

	// Cita dentro de dos horas, sembrada directamente en el repositorio.
	soon := time.Now().Add(2 * time.Hour)
	repo.items[99] = domain.Appointment{
		ID:           99,
		PatientName:  "Juan López",
		PatientDNI:   "30123456",
		PatientEmail: "juan@example.com",
		DoctorID:     1,
		Date:         soon.Format("2006-01-02"),
		Time:         soon.Format("15:04"),
		Status:       domain.AppointmentStatusPending,
	}

	dto := domain.ChangeStatusDTO{
		Status:             domain.AppointmentStatusCancelled,
		CancellationReason: "No puedo asistir",
	}

	// El paciente no llega al mínimo de 24 horas.
	err := svc.ChangeStatus(ctx, 99, "juan@example.com", domain.UserRolePatient, dto)
	assert.True(t, errors.Is(err, domain.ErrCancellationTooLate))

	// El admin puede cancelar igual.
	err = svc.ChangeStatus(ctx, 99, "admin", domain.UserRoleAdmin, dto)
	require.NoError(t, err)
	require.NotNil(t, repo.items[99].CancellationReason)
	assert.Equal(t, "No puedo asistir", *repo.items[99].CancellationReason)
}

func TestAppointmentPatientCancelsWithNotice(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	// 2030 queda muy por encima de las 24 horas.
	err = svc.ChangeStatus(ctx, id, "juan@example.com", domain.UserRolePatient, domain.ChangeStatusDTO{
		Status:             domain.AppointmentStatusCancelled,
		CancellationReason: "Viaje de trabajo",
	})
	assert.NoError(t, err)
}

func TestAppointmentFreeSlots(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	slots, err := svc.FreeSlots(ctx, 1, "2030-11-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30"}, slots)

	_, err = svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	slots, err = svc.FreeSlots(ctx, 1, "2030-11-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00", "09:30"}, slots)

	// Día sin asignación: lista vacía, no error.
	slots, err = svc.FreeSlots(ctx, 1, "2030-11-05")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAppointmentAdminUpdateReschedules(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAppointmentDTO())
	require.NoError(t, err)

	// Mover a otro turno válido del mismo día.
	newTime := "09:00"
	err = svc.AdminUpdate(ctx, id, domain.UpdateAppointmentDTO{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "09:00", repo.items[id].Time)

	// Mover a un día sin asignación debe fallar.
	badDate := "2030-11-05"
	err = svc.AdminUpdate(ctx, id, domain.UpdateAppointmentDTO{Date: &badDate})
	assert.True(t, errors.Is(err, domain.ErrDoctorNotAssigned))
}

func TestAppointmentNotificationFailureDoesNotBlock(t *testing.T) {
	appointmentRepo := newFakeAppointmentRepo()
	assignmentRepo := newFakeAssignmentRepo()
	doctorRepo := &fakeDoctorRepo{items: map[int64]domain.Doctor{
		1: {ID: 1, UserID: 10, FullName: "Ana García"},
	}}
	assignmentRepo.Create(context.Background(), domain.OfficeAssignment{
		OfficeID: 1, DoctorID: 1, Month: 11, Year: 2030,
		WeekDays: []int{1}, StartTime: "08:00", EndTime: "10:00",
	})

	notification := NewNotificationService(failingMailer{}, zap.NewNop())
	svc := NewAppointmentService(appointmentRepo, assignmentRepo, doctorRepo, notification, zap.NewNop())

	id, err := svc.Create(context.Background(), baseAppointmentDTO())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestAppointmentListFilter(t *testing.T) {
	svc, _, _ := newAppointmentFixture()
	ctx := context.Background()

	for i, hour := range []string{"08:00", "08:30", "09:00"} {
		dto := baseAppointmentDTO()
		dto.Time = hour
		dto.PatientDNI = fmt.Sprintf("3012345%d", i)
		_, err := svc.Create(ctx, dto)
		require.NoError(t, err)
	}

	email := "juan@example.com"
	appointments, err := svc.List(ctx, domain.AppointmentFilter{PatientEmail: &email})
	require.NoError(t, err)
	assert.Len(t, appointments, 3)

	other := "nadie@example.com"
	appointments, err = svc.List(ctx, domain.AppointmentFilter{PatientEmail: &other})
	require.NoError(t, err)
	assert.Empty(t, appointments)
}
