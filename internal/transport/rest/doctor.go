package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Listar doctores
// @Description Devuelve los doctores, opcionalmente filtrados por especialidad
// @Tags Doctores
// @Produce json
// @Param specialty query string false "Especialidad"
// @Param limit query int false "Cantidad máxima de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {array} domain.Doctor "Lista de doctores"
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var specialty *string
	if s := c.Query("specialty"); s != "" {
		specialty = &s
	}

	doctors, err := h.services.Doctor.List(c.Request.Context(), specialty, limit, offset)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, doctors)
}

// @Summary Obtener doctor por ID
// @Tags Doctores
// @Produce json
// @Param id path int true "ID del doctor"
// @Success 200 {object} domain.Doctor "Doctor"
// @Failure 404 {object} errorResponseBody "Doctor no encontrado"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "doctor no encontrado")
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Obtener el perfil de doctor propio
// @Tags Doctores
// @Produce json
// @Success 200 {object} domain.Doctor "Perfil del doctor"
// @Failure 404 {object} errorResponseBody "Perfil no encontrado"
// @Security ApiKeyAuth
// @Router /doctors/me [get]
func (h *Handler) getMyDoctorProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	doctor, err := h.services.Doctor.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, "perfil de doctor no encontrado")
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Turnos libres de un doctor
// @Description Devuelve los turnos de 30 minutos disponibles del doctor en una fecha
// @Tags Doctores
// @Produce json
// @Param id path int true "ID del doctor"
// @Param date query string true "Fecha (AAAA-MM-DD)"
// @Success 200 {array} string "Turnos disponibles"
// @Failure 400 {object} errorResponseBody "Fecha inválida"
// @Router /doctors/{id}/slots [get]
func (h *Handler) getDoctorFreeSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "el parámetro date es obligatorio")
		return
	}

	slots, err := h.services.Appointment.FreeSlots(c.Request.Context(), id, date)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Asignaciones de un doctor
// @Description Devuelve las asignaciones de consultorio del doctor en un mes
// @Tags Doctores
// @Produce json
// @Param id path int true "ID del doctor"
// @Param month query int true "Mes (1-12)"
// @Param year query int true "Año"
// @Success 200 {array} domain.OfficeAssignment "Asignaciones"
// @Security ApiKeyAuth
// @Router /doctors/{id}/assignments [get]
func (h *Handler) getDoctorAssignments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		badRequestResponse(c, "el parámetro month debe estar entre 1 y 12")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequestResponse(c, "el parámetro year es obligatorio")
		return
	}

	assignments, err := h.services.Assignment.ListByDoctor(c.Request.Context(), id, month, year)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, assignments)
}

// @Summary Actualizar doctor
// @Description Actualiza el perfil profesional de un doctor. Solo para administradores.
// @Tags Doctores
// @Accept json
// @Produce json
// @Param id path int true "ID del doctor"
// @Param input body domain.UpdateDoctorDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Doctor actualizado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 404 {object} errorResponseBody "Doctor no encontrado"
// @Security ApiKeyAuth
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Doctor.Update(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "doctor actualizado")
}
