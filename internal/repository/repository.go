package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Doctor      DoctorRepository
	Office      OfficeRepository
	Specialty   SpecialtyRepository
	Assignment  AssignmentRepository
	Appointment AppointmentRepository
	Record      RecordRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Doctor:      NewDoctorRepository(db),
		Office:      NewOfficeRepository(db),
		Specialty:   NewSpecialtyRepository(db),
		Assignment:  NewAssignmentRepository(db),
		Appointment: NewAppointmentRepository(db),
		Record:      NewRecordRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByDNI(ctx context.Context, dni string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type DoctorRepository interface {
	Create(ctx context.Context, userID int64, doctor domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, doctor domain.UpdateDoctorDTO) error
	List(ctx context.Context, specialty *string, limit, offset int) ([]domain.Doctor, error)
}

type OfficeRepository interface {
	Create(ctx context.Context, office domain.CreateOfficeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	Update(ctx context.Context, id int64, office domain.UpdateOfficeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Office, error)
}

type SpecialtyRepository interface {
	Create(ctx context.Context, specialty domain.CreateSpecialtyDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	Update(ctx context.Context, id int64, specialty domain.UpdateSpecialtyDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Specialty, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment domain.OfficeAssignment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.OfficeAssignment, error)
	Update(ctx context.Context, assignment domain.OfficeAssignment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.OfficeAssignment, error)
	ListByOfficeMonth(ctx context.Context, officeID int64, month, year int) ([]domain.OfficeAssignment, error)
	ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.OfficeAssignment, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appointment domain.Appointment) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountActiveAt(ctx context.Context, doctorID int64, date, time string) (int, error)
	ListActiveByDoctorDate(ctx context.Context, doctorID int64, date string) ([]domain.Appointment, error)
	ListByDoctorMonth(ctx context.Context, doctorID int64, month, year int) ([]domain.Appointment, error)
}

type RecordRepository interface {
	Create(ctx context.Context, doctorID int64, doctorName string, record domain.CreateRecordDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.MedicalRecord, error)
	ListByPatientDNI(ctx context.Context, dni string) ([]domain.MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.MedicalRecord, error)
	GetStudyByID(ctx context.Context, id int64) (*domain.Study, error)
	SetStudyFileURL(ctx context.Context, id int64, fileURL string) error
}
