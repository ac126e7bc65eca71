package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clinica/internal/domain"
)

type fakeOfficeRepo struct {
	items map[int64]domain.Office
}

func (f *fakeOfficeRepo) Create(ctx context.Context, dto domain.CreateOfficeDTO) (int64, error) {
	id := int64(len(f.items) + 1)
	f.items[id] = domain.Office{ID: id, Name: dto.Name, Specialty: dto.Specialty, Capacity: dto.Capacity}
	return id, nil
}

func (f *fakeOfficeRepo) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	office, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &office, nil
}

func (f *fakeOfficeRepo) Update(ctx context.Context, id int64, dto domain.UpdateOfficeDTO) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeOfficeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeOfficeRepo) List(ctx context.Context) ([]domain.Office, error) {
	offices := make([]domain.Office, 0, len(f.items))
	for _, office := range f.items {
		offices = append(offices, office)
	}
	return offices, nil
}

type fakeDoctorRepo struct {
	items map[int64]domain.Doctor
}

func (f *fakeDoctorRepo) Create(ctx context.Context, userID int64, dto domain.CreateDoctorDTO) (int64, error) {
	id := int64(len(f.items) + 1)
	f.items[id] = domain.Doctor{ID: id, UserID: userID, Specialty: dto.Specialty, LicenseNumber: dto.LicenseNumber}
	return id, nil
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doctor, nil
}

func (f *fakeDoctorRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	for _, doctor := range f.items {
		if doctor.UserID == userID {
			return &doctor, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDoctorRepo) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeDoctorRepo) List(ctx context.Context, specialty *string, limit, offset int) ([]domain.Doctor, error) {
	doctors := make([]domain.Doctor, 0, len(f.items))
	for _, doctor := range f.items {
		if specialty != nil && doctor.Specialty != *specialty {
			continue
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}

type fakeAssignmentRepo struct {
	items  map[int64]domain.OfficeAssignment
	nextID int64
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: make(map[int64]domain.OfficeAssignment)}
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment domain.OfficeAssignment) (int64, error) {
	f.nextID++
	assignment.ID = f.nextID
	f.items[assignment.ID] = assignment
	return assignment.ID, nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id int64) (*domain.OfficeAssignment, error) {
	assignment, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &assignment, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, assignment domain.OfficeAssignment) error {
	if _, ok := f.items[assignment.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAssignmentRepo) List(ctx context.Context) ([]domain.OfficeAssignment, error) {
	assignments := make([]domain.OfficeAssignment, 0, len(f.items))
	for _, assignment := range f.items {
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func (f *fakeAssignmentRepo) ListByOfficeMonth(ctx context.Context, officeID int64, month, year int) ([]domain.OfficeAssignment, error) {
	var assignments []domain.OfficeAssignment
	for _, assignment := range f.items {
		if assignment.OfficeID == officeID && assignment.Month == month && assignment.Year == year {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

func (f *fakeAssignmentRepo) ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.OfficeAssignment, error) {
	var assignments []domain.OfficeAssignment
	for _, assignment := range f.items {
		if assignment.DoctorID == doctorID && assignment.Month == month && assignment.Year == year {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

type fakeAppointmentRepo struct {
	items  map[int64]domain.Appointment
	nextID int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[int64]domain.Appointment)}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	count, _ := f.CountActiveAt(ctx, appointment.DoctorID, appointment.Date, appointment.Time)
	if count > 0 {
		return 0, domain.ErrSlotTaken
	}

	f.nextID++
	appointment.ID = f.nextID
	f.items[appointment.ID] = appointment
	return appointment.ID, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &appointment, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	if _, ok := f.items[appointment.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for _, appointment := range f.items {
		if filter.DoctorID != nil && appointment.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.PatientEmail != nil && appointment.PatientEmail != *filter.PatientEmail {
			continue
		}
		if filter.Date != nil && appointment.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func (f *fakeAppointmentRepo) CountActiveAt(ctx context.Context, doctorID int64, date, hour string) (int, error) {
	count := 0
	for _, appointment := range f.items {
		if appointment.DoctorID == doctorID && appointment.Date == date && appointment.Time == hour &&
			appointment.Status != domain.AppointmentStatusCancelled {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepo) ListActiveByDoctorDate(ctx context.Context, doctorID int64, date string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for _, appointment := range f.items {
		if appointment.DoctorID == doctorID && appointment.Date == date &&
			appointment.Status != domain.AppointmentStatusCancelled {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (f *fakeAppointmentRepo) ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for _, appointment := range f.items {
		if appointment.DoctorID != doctorID || len(appointment.Date) != 10 {
			continue
		}
		if appointment.Date[:7] == fmt.Sprintf("%04d-%02d", year, month) {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

// notificationRecorder captura las notificaciones de forma sincrónica.
type notificationRecorder struct {
	mu      sync.Mutex
	created []domain.Appointment
	changed []domain.Appointment
}

func (r *notificationRecorder) AppointmentCreated(appointment domain.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, appointment)
}

func (r *notificationRecorder) AppointmentStatusChanged(appointment domain.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, appointment)
}

// failingMailer simula un proveedor de correo caído.
type failingMailer struct{}

func (failingMailer) Send(to, subject, body string) error {
	return errors.New("smtp no disponible")
}
