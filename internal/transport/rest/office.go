package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Listar consultorios
// @Tags Consultorios
// @Produce json
// @Success 200 {array} domain.Office "Lista de consultorios"
// @Security ApiKeyAuth
// @Router /offices [get]
func (h *Handler) getOffices(c *gin.Context) {
	offices, err := h.services.Office.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, offices)
}

// @Summary Obtener consultorio por ID
// @Tags Consultorios
// @Produce json
// @Param id path int true "ID del consultorio"
// @Success 200 {object} domain.Office "Consultorio"
// @Failure 404 {object} errorResponseBody "Consultorio no encontrado"
// @Security ApiKeyAuth
// @Router /offices/{id} [get]
func (h *Handler) getOfficeByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	office, err := h.services.Office.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "consultorio no encontrado")
		return
	}

	successResponse(c, http.StatusOK, office)
}

// @Summary Asignaciones de un consultorio
// @Description Devuelve las asignaciones del consultorio en un mes
// @Tags Consultorios
// @Produce json
// @Param id path int true "ID del consultorio"
// @Param month query int true "Mes (1-12)"
// @Param year query int true "Año"
// @Success 200 {array} domain.OfficeAssignment "Asignaciones"
// @Security ApiKeyAuth
// @Router /offices/{id}/assignments [get]
func (h *Handler) getOfficeAssignments(c *gin.Context) {
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

	assignments, err := h.services.Assignment.ListByOffice(c.Request.Context(), id, month, year)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, assignments)
}

// @Summary Crear consultorio
// @Description Crea un consultorio. Solo para administradores.
// @Tags Consultorios
// @Accept json
// @Produce json
// @Param input body domain.CreateOfficeDTO true "Datos del consultorio"
// @Success 201 {object} map[string]interface{} "ID del consultorio creado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Security ApiKeyAuth
// @Router /offices [post]
func (h *Handler) createOffice(c *gin.Context) {
	var input domain.CreateOfficeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Office.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Actualizar consultorio
// @Tags Consultorios
// @Accept json
// @Produce json
// @Param id path int true "ID del consultorio"
// @Param input body domain.UpdateOfficeDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Consultorio actualizado"
// @Failure 404 {object} errorResponseBody "Consultorio no encontrado"
// @Security ApiKeyAuth
// @Router /offices/{id} [put]
func (h *Handler) updateOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.UpdateOfficeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Office.Update(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "consultorio actualizado")
}

// @Summary Eliminar consultorio
// @Tags Consultorios
// @Produce json
// @Param id path int true "ID del consultorio"
// @Success 204 {object} nil "Consultorio eliminado"
// @Failure 404 {object} errorResponseBody "Consultorio no encontrado"
// @Security ApiKeyAuth
// @Router /offices/{id} [delete]
func (h *Handler) deleteOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.Office.Delete(c.Request.Context(), id); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
