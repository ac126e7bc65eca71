package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Crear asignación mensual
// @Description Asigna un doctor a un consultorio durante un mes, en días de la semana y rango horario fijos. Rechaza la operación si el consultorio o el doctor ya están ocupados en un horario solapado. Solo para administradores.
// @Tags Asignaciones
// @Accept json
// @Produce json
// @Param input body domain.AssignmentDTO true "Datos de la asignación"
// @Success 201 {object} map[string]interface{} "ID de la asignación creada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 404 {object} errorResponseBody "Consultorio o doctor no encontrado"
// @Failure 409 {object} errorResponseBody "Conflicto con asignaciones existentes"
// @Security ApiKeyAuth
// @Router /office-assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	var input domain.AssignmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Assignment.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Verificar disponibilidad
// @Description Verifica si el consultorio y el doctor están libres para la asignación propuesta, sin crearla. Solo para administradores.
// @Tags Asignaciones
// @Accept json
// @Produce json
// @Param input body domain.AssignmentDTO true "Asignación propuesta"
// @Success 200 {object} map[string]domain.Availability "Disponibilidad del consultorio y del doctor"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Security ApiKeyAuth
// @Router /office-assignments/check [post]
func (h *Handler) checkAssignmentAvailability(c *gin.Context) {
	var input domain.AssignmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	office, err := h.services.Assignment.CheckOfficeAvailability(c.Request.Context(), input, 0)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	doctor, err := h.services.Assignment.CheckDoctorAvailability(c.Request.Context(), input, 0)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"office": office,
		"doctor": doctor,
	})
}

// @Summary Listar asignaciones
// @Tags Asignaciones
// @Produce json
// @Success 200 {array} domain.OfficeAssignment "Lista de asignaciones"
// @Security ApiKeyAuth
// @Router /office-assignments [get]
func (h *Handler) getAssignments(c *gin.Context) {
	assignments, err := h.services.Assignment.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, assignments)
}

// @Summary Obtener asignación por ID
// @Tags Asignaciones
// @Produce json
// @Param id path int true "ID de la asignación"
// @Success 200 {object} domain.OfficeAssignment "Asignación"
// @Failure 404 {object} errorResponseBody "Asignación no encontrada"
// @Security ApiKeyAuth
// @Router /office-assignments/{id} [get]
func (h *Handler) getAssignmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	assignment, err := h.services.Assignment.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "asignación no encontrada")
		return
	}

	successResponse(c, http.StatusOK, assignment)
}

// @Summary Actualizar asignación
// @Description Reemplaza la asignación validando conflictos contra las demás. Solo para administradores.
// @Tags Asignaciones
// @Accept json
// @Produce json
// @Param id path int true "ID de la asignación"
// @Param input body domain.AssignmentDTO true "Nuevos datos"
// @Success 200 {object} messageResponseType "Asignación actualizada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 404 {object} errorResponseBody "Asignación no encontrada"
// @Failure 409 {object} errorResponseBody "Conflicto con asignaciones existentes"
// @Security ApiKeyAuth
// @Router /office-assignments/{id} [patch]
func (h *Handler) updateAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.AssignmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Assignment.Update(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "asignación actualizada")
}

// @Summary Eliminar asignación
// @Description Elimina la asignación. Las citas ya reservadas se conservan. Solo para administradores.
// @Tags Asignaciones
// @Produce json
// @Param id path int true "ID de la asignación"
// @Success 204 {object} nil "Asignación eliminada"
// @Failure 404 {object} errorResponseBody "Asignación no encontrada"
// @Security ApiKeyAuth
// @Router /office-assignments/{id} [delete]
func (h *Handler) deleteAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.Assignment.Delete(c.Request.Context(), id); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
