package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Listar especialidades
// @Tags Especialidades
// @Produce json
// @Success 200 {array} domain.Specialty "Catálogo de especialidades"
// @Router /specialties [get]
func (h *Handler) getSpecialties(c *gin.Context) {
	specialties, err := h.services.Specialty.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, specialties)
}

// @Summary Obtener especialidad por ID
// @Tags Especialidades
// @Produce json
// @Param id path int true "ID de la especialidad"
// @Success 200 {object} domain.Specialty "Especialidad"
// @Failure 404 {object} errorResponseBody "Especialidad no encontrada"
// @Router /specialties/{id} [get]
func (h *Handler) getSpecialtyByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	specialty, err := h.services.Specialty.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "especialidad no encontrada")
		return
	}

	successResponse(c, http.StatusOK, specialty)
}

// @Summary Crear especialidad
// @Description Crea una especialidad del catálogo. Solo para administradores.
// @Tags Especialidades
// @Accept json
// @Produce json
// @Param input body domain.CreateSpecialtyDTO true "Datos de la especialidad"
// @Success 201 {object} map[string]interface{} "ID de la especialidad creada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Security ApiKeyAuth
// @Router /specialties [post]
func (h *Handler) createSpecialty(c *gin.Context) {
	var input domain.CreateSpecialtyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Specialty.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Actualizar especialidad
// @Tags Especialidades
// @Accept json
// @Produce json
// @Param id path int true "ID de la especialidad"
// @Param input body domain.UpdateSpecialtyDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Especialidad actualizada"
// @Failure 404 {object} errorResponseBody "Especialidad no encontrada"
// @Security ApiKeyAuth
// @Router /specialties/{id} [put]
func (h *Handler) updateSpecialty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.UpdateSpecialtyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Specialty.Update(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "especialidad actualizada")
}

// @Summary Eliminar especialidad
// @Tags Especialidades
// @Produce json
// @Param id path int true "ID de la especialidad"
// @Success 204 {object} nil "Especialidad eliminada"
// @Failure 404 {object} errorResponseBody "Especialidad no encontrada"
// @Security ApiKeyAuth
// @Router /specialties/{id} [delete]
func (h *Handler) deleteSpecialty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.Specialty.Delete(c.Request.Context(), id); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
