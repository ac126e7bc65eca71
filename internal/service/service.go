package service

import (
	"context"

	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
	"clinica/pkg/mailer"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Mailer      mailer.Mailer
}

type Services struct {
	User         UserService
	Auth         AuthService
	Doctor       DoctorService
	Office       OfficeService
	Specialty    SpecialtyService
	Assignment   AssignmentService
	Appointment  AppointmentService
	Record       RecordService
	Notification NotificationService
}

func NewServices(deps Deps) *Services {
	notification := NewNotificationService(deps.Mailer, deps.Logger)

	return &Services{
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Repos.Doctor, deps.Config.JWT, deps.Logger),
		Doctor:       NewDoctorService(deps.Repos.Doctor, deps.Logger),
		Office:       NewOfficeService(deps.Repos.Office, deps.Logger),
		Specialty:    NewSpecialtyService(deps.Repos.Specialty, deps.Logger),
		Assignment:   NewAssignmentService(deps.Repos.Assignment, deps.Repos.Office, deps.Repos.Doctor, deps.Repos.Appointment, deps.Logger),
		Appointment:  NewAppointmentService(deps.Repos.Appointment, deps.Repos.Assignment, deps.Repos.Doctor, notification, deps.Logger),
		Record:       NewRecordService(deps.Repos.Record, deps.Repos.Doctor, deps.FileStorage, deps.Logger),
		Notification: notification,
	}
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type DoctorService interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	List(ctx context.Context, specialty *string, limit, offset int) ([]domain.Doctor, error)
}

type OfficeService interface {
	Create(ctx context.Context, dto domain.CreateOfficeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	Update(ctx context.Context, id int64, dto domain.UpdateOfficeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Office, error)
}

type SpecialtyService interface {
	Create(ctx context.Context, dto domain.CreateSpecialtyDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	Update(ctx context.Context, id int64, dto domain.UpdateSpecialtyDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Specialty, error)
}

type AssignmentService interface {
	Create(ctx context.Context, dto domain.AssignmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.OfficeAssignment, error)
	Update(ctx context.Context, id int64, dto domain.AssignmentDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.OfficeAssignment, error)
	ListByOffice(ctx context.Context, officeID int64, month, year int) ([]domain.OfficeAssignment, error)
	ListByDoctor(ctx context.Context, doctorID int64, month, year int) ([]domain.OfficeAssignment, error)
	CheckOfficeAvailability(ctx context.Context, dto domain.AssignmentDTO, excludeID int64) (*domain.Availability, error)
	CheckDoctorAvailability(ctx context.Context, dto domain.AssignmentDTO, excludeID int64) (*domain.Availability, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	FreeSlots(ctx context.Context, doctorID int64, date string) ([]string, error)
	ChangeStatus(ctx context.Context, id int64, actor string, role domain.UserRole, dto domain.ChangeStatusDTO) error
	AdminUpdate(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
}

type RecordService interface {
	Create(ctx context.Context, doctorUserID int64, dto domain.CreateRecordDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.MedicalRecord, error)
	ListByPatientDNI(ctx context.Context, dni string) ([]domain.MedicalRecord, error)
	ListByDoctorUserID(ctx context.Context, doctorUserID int64) ([]domain.MedicalRecord, error)
	UploadStudyFile(ctx context.Context, studyID int64, data []byte, filename string) (string, error)
	StudyDownloadURL(ctx context.Context, studyID int64) (string, error)
}

// NotificationService envía los correos de ciclo de vida de las citas.
// El envío es asíncrono: un fallo de correo nunca afecta la operación.
type NotificationService interface {
	AppointmentCreated(appointment domain.Appointment)
	AppointmentStatusChanged(appointment domain.Appointment)
}
