package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.GET("/", h.getUsers)
				admin.GET("/:id", h.getUserByID)
				admin.PUT("/:id", h.updateUser)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/me", h.authMiddleware(), h.doctorMiddleware(), h.getMyDoctorProfile)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.GET("/:id/slots", h.getDoctorFreeSlots)
			doctors.GET("/:id/assignments", h.authMiddleware(), h.getDoctorAssignments)
			doctors.PUT("/:id", h.authMiddleware(), h.adminMiddleware(), h.updateDoctor)
		}

		specialties := api.Group("/specialties")
		{
			specialties.GET("/", h.getSpecialties)
			specialties.GET("/:id", h.getSpecialtyByID)

			admin := specialties.Group("/")
			admin.Use(h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createSpecialty)
				admin.PUT("/:id", h.updateSpecialty)
				admin.DELETE("/:id", h.deleteSpecialty)
			}
		}

		offices := api.Group("/offices")
		offices.Use(h.authMiddleware())
		{
			offices.GET("/", h.getOffices)
			offices.GET("/:id", h.getOfficeByID)
			offices.GET("/:id/assignments", h.getOfficeAssignments)

			admin := offices.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createOffice)
				admin.PUT("/:id", h.updateOffice)
				admin.DELETE("/:id", h.deleteOffice)
			}
		}

		assignments := api.Group("/office-assignments")
		assignments.Use(h.authMiddleware())
		{
			assignments.GET("/", h.getAssignments)
			assignments.GET("/:id", h.getAssignmentByID)

			admin := assignments.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createAssignment)
				admin.POST("/check", h.checkAssignmentAvailability)
				admin.PATCH("/:id", h.updateAssignment)
				admin.DELETE("/:id", h.deleteAssignment)
			}
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PATCH("/:id/status", h.changeAppointmentStatus)
			appointments.PUT("/:id", h.adminMiddleware(), h.updateAppointment)
		}

		records := api.Group("/records")
		records.Use(h.authMiddleware())
		{
			records.GET("/mine", h.getMyRecords)

			doctor := records.Group("/")
			doctor.Use(h.doctorMiddleware())
			{
				doctor.POST("/", h.createRecord)
				doctor.GET("/", h.getRecordsByPatient)
				doctor.GET("/own", h.getDoctorRecords)
				doctor.POST("/studies/:id/file", h.uploadStudyFile)
			}

			records.GET("/:id", h.getRecordByID)
			records.GET("/studies/:id/file", h.getStudyFileURL)
		}
	}
}

// serviceErrorResponse traduce los errores de negocio a códigos HTTP.
func (h *Handler) serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, err.Error())
	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrScheduleConflict),
		errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrDNIAlreadyRegistered):
		conflictResponse(c, err.Error())
	case errors.Is(err, domain.ErrDoctorNotAssigned),
		errors.Is(err, domain.ErrTimeNotAvailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrCancellationTooLate):
		badRequestResponse(c, err.Error())
	default:
		badRequestResponse(c, err.Error())
	}
}
