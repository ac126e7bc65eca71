package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

func newAssignmentFixture() (*AssignmentServiceImpl, *fakeAssignmentRepo) {
	assignmentRepo := newFakeAssignmentRepo()
	officeRepo := &fakeOfficeRepo{items: map[int64]domain.Office{
		1: {ID: 1, Name: "Consultorio A", Specialty: "Cardiología"},
		2: {ID: 2, Name: "Consultorio B", Specialty: "Pediatría"},
	}}
	doctorRepo := &fakeDoctorRepo{items: map[int64]domain.Doctor{
		1: {ID: 1, UserID: 10, FullName: "Ana García", Specialty: "Cardiología"},
		2: {ID: 2, UserID: 11, FullName: "Luis Pérez", Specialty: "Pediatría"},
	}}

	svc := NewAssignmentService(assignmentRepo, officeRepo, doctorRepo, newFakeAppointmentRepo(), zap.NewNop())
	return svc, assignmentRepo
}

func baseAssignmentDTO() domain.AssignmentDTO {
	return domain.AssignmentDTO{
		OfficeID:  1,
		DoctorID:  1,
		Month:     11,
		Year:      2030,
		WeekDays:  []int{1, 3, 5},
		StartTime: "08:00",
		EndTime:   "12:00",
	}
}

func TestAssignmentCreate(t *testing.T) {
	svc, repo := newAssignmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := repo.items[id]
	assert.Equal(t, "Consultorio A", stored.OfficeName)
	assert.Equal(t, "Ana García", stored.DoctorName)
	assert.Equal(t, []int{1, 3, 5}, stored.WeekDays)
}

func TestAssignmentCreateNormalizesWeekdays(t *testing.T) {
	svc, repo := newAssignmentFixture()
	ctx := context.Background()

	dto := baseAssignmentDTO()
	dto.WeekDays = []int{5, 1, 3, 1, 9, -1}

	id, err := svc.Create(ctx, dto)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, repo.items[id].WeekDays)
}

func TestAssignmentCreateInvalidRange(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	dto := baseAssignmentDTO()
	dto.StartTime = "12:00"
	dto.EndTime = "08:00"
	_, err := svc.Create(ctx, dto)
	assert.Error(t, err)

	dto = baseAssignmentDTO()
	dto.EndTime = "08:20"
	_, err = svc.Create(ctx, dto)
	assert.Error(t, err)

	dto = baseAssignmentDTO()
	dto.WeekDays = []int{7, -2}
	_, err = svc.Create(ctx, dto)
	assert.Error(t, err)
}

func TestAssignmentOfficeConflict(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	// Otro doctor, mismo consultorio, rango solapado en días compartidos.
	dto := baseAssignmentDTO()
	dto.DoctorID = 2
	dto.StartTime = "10:00"
	dto.EndTime = "14:00"

	_, err = svc.Create(ctx, dto)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScheduleConflict))

	var conflictErr *domain.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "Ana García", conflictErr.Conflicts[0].DoctorName)
	assert.Contains(t, conflictErr.Error(), "Consultorio A")
}

func TestAssignmentDoctorConflictAcrossOffices(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	// Mismo doctor en otro consultorio con horario solapado.
	dto := baseAssignmentDTO()
	dto.OfficeID = 2
	dto.StartTime = "11:00"
	dto.EndTime = "15:00"

	_, err = svc.Create(ctx, dto)
	assert.True(t, errors.Is(err, domain.ErrScheduleConflict))
}

func TestAssignmentDisjointWeekdaysAllowed(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	// Mismo consultorio y horario pero días sin intersección.
	dto := baseAssignmentDTO()
	dto.DoctorID = 2
	dto.WeekDays = []int{2}

	_, err = svc.Create(ctx, dto)
	assert.NoError(t, err)
}

func TestAssignmentAdjacentRangesAllowed(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	// Rango que empieza exactamente donde termina el anterior.
	dto := baseAssignmentDTO()
	dto.DoctorID = 2
	dto.StartTime = "12:00"
	dto.EndTime = "16:00"

	_, err = svc.Create(ctx, dto)
	assert.NoError(t, err)
}

func TestAssignmentUpdateExcludesSelf(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	id, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	// Actualizar la asignación sobre su propio horario no debe chocar
	// consigo misma.
	dto := baseAssignmentDTO()
	dto.StartTime = "09:00"
	dto.EndTime = "13:00"

	err = svc.Update(ctx, id, dto)
	assert.NoError(t, err)
}

func TestAssignmentUpdateDetectsConflict(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	second := baseAssignmentDTO()
	second.DoctorID = 2
	second.StartTime = "14:00"
	second.EndTime = "18:00"
	secondID, err := svc.Create(ctx, second)
	require.NoError(t, err)

	// Mover la segunda sobre la primera debe fallar.
	second.StartTime = "08:00"
	second.EndTime = "12:00"
	err = svc.Update(ctx, secondID, second)
	assert.True(t, errors.Is(err, domain.ErrScheduleConflict))
}

func TestAssignmentDeleteNotFound(t *testing.T) {
	svc, _ := newAssignmentFixture()

	err := svc.Delete(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAssignmentCheckAvailability(t *testing.T) {
	svc, _ := newAssignmentFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, baseAssignmentDTO())
	require.NoError(t, err)

	dto := baseAssignmentDTO()
	dto.DoctorID = 2

	availability, err := svc.CheckOfficeAvailability(ctx, dto, 0)
	require.NoError(t, err)
	assert.False(t, availability.Available)
	require.Len(t, availability.Conflicts, 1)

	dto.OfficeID = 2
	availability, err = svc.CheckOfficeAvailability(ctx, dto, 0)
	require.NoError(t, err)
	assert.True(t, availability.Available)
}
