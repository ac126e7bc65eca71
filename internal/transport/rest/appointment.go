package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Reservar cita
// @Description Reserva una cita de 30 minutos con un doctor. El doctor debe tener asignación vigente ese día y el turno debe estar libre. Los pacientes reservan a su propio nombre.
// @Tags Citas
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Datos de la cita"
// @Success 201 {object} map[string]interface{} "ID de la cita creada"
// @Failure 400 {object} errorResponseBody "Error de validación o doctor sin asignación"
// @Failure 404 {object} errorResponseBody "Doctor no encontrado"
// @Failure 409 {object} errorResponseBody "El turno ya está ocupado"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	role, _ := getUserRole(c)
	if role == domain.UserRolePatient {
		user, err := h.services.User.GetByID(c.Request.Context(), userID)
		if err != nil {
			unauthorizedResponse(c)
			return
		}
		// Un paciente solo reserva para sí mismo y nunca fija el estado.
		input.PatientName = user.FirstName + " " + user.LastName
		input.PatientDNI = user.DNI
		input.PatientEmail = user.Email
		input.Status = ""
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Listar citas
// @Description Devuelve las citas visibles según el rol: los pacientes ven las suyas, los doctores las de su agenda y los admins todas.
// @Tags Citas
// @Produce json
// @Param date query string false "Fecha (AAAA-MM-DD)"
// @Param status query string false "Estado (pendiente, confirmada, completada, cancelada)"
// @Param doctorId query int false "ID del doctor (solo admin)"
// @Param limit query int false "Cantidad máxima de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {array} domain.Appointment "Lista de citas"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var filter domain.AppointmentFilter
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}
	if status := c.Query("status"); status != "" {
		s := domain.AppointmentStatus(status)
		if !s.Valid() {
			badRequestResponse(c, "estado de cita inválido")
			return
		}
		filter.Status = &s
	}

	role, _ := getUserRole(c)
	switch role {
	case domain.UserRolePatient:
		user, err := h.services.User.GetByID(c.Request.Context(), userID)
		if err != nil {
			unauthorizedResponse(c)
			return
		}
		filter.PatientEmail = &user.Email

	case domain.UserRoleDoctor:
		doctor, err := h.services.Doctor.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			forbiddenResponse(c, "perfil de doctor no encontrado")
			return
		}
		filter.DoctorID = &doctor.ID

	default:
		if doctorID := c.Query("doctorId"); doctorID != "" {
			id, err := strconv.ParseInt(doctorID, 10, 64)
			if err != nil {
				badRequestResponse(c, "formato de doctorId inválido")
				return
			}
			filter.DoctorID = &id
		}
	}

	appointments, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Obtener cita por ID
// @Tags Citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} domain.Appointment "Cita"
// @Failure 403 {object} errorResponseBody "Acceso denegado"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "cita no encontrada")
		return
	}

	if !h.canAccessAppointment(c, appointment) {
		forbiddenResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Cambiar estado de una cita
// @Description Aplica una transición de estado: pendiente a confirmada o cancelada, confirmada a completada o cancelada. La cancelación requiere motivo y, para pacientes, 24 horas de anticipación.
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path int true "ID de la cita"
// @Param input body domain.ChangeStatusDTO true "Nuevo estado"
// @Success 200 {object} messageResponseType "Estado actualizado"
// @Failure 400 {object} errorResponseBody "Transición no permitida o motivo faltante"
// @Failure 403 {object} errorResponseBody "Acceso denegado"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /appointments/{id}/status [patch]
func (h *Handler) changeAppointmentStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.ChangeStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "cita no encontrada")
		return
	}

	if !h.canAccessAppointment(c, appointment) {
		forbiddenResponse(c)
		return
	}

	role, _ := getUserRole(c)

	// Los pacientes solo pueden cancelar; confirmar y completar es de
	// doctores y admins.
	if role == domain.UserRolePatient && input.Status != domain.AppointmentStatusCancelled {
		forbiddenResponse(c, "los pacientes solo pueden cancelar sus citas")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Appointment.ChangeStatus(c.Request.Context(), id, user.Email, role, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "estado actualizado")
}

// @Summary Actualizar cita
// @Description Reemplazo de campos arbitrarios sin pasar por la tabla de transiciones. Solo para administradores.
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path int true "ID de la cita"
// @Param input body domain.UpdateAppointmentDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Cita actualizada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Failure 409 {object} errorResponseBody "El turno ya está ocupado"
// @Security ApiKeyAuth
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Appointment.AdminUpdate(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "cita actualizada")
}

// canAccessAppointment verifica que el usuario sea el paciente de la cita,
// el doctor de la agenda o un admin.
func (h *Handler) canAccessAppointment(c *gin.Context, appointment *domain.Appointment) bool {
	userID, err := getUserID(c)
	if err != nil {
		return false
	}

	role, _ := getUserRole(c)
	switch role {
	case domain.UserRoleAdmin:
		return true

	case domain.UserRoleDoctor:
		doctor, err := h.services.Doctor.GetByUserID(c.Request.Context(), userID)
		return err == nil && doctor != nil && doctor.ID == appointment.DoctorID

	default:
		user, err := h.services.User.GetByID(c.Request.Context(), userID)
		return err == nil && user != nil && user.Email == appointment.PatientEmail
	}
}
