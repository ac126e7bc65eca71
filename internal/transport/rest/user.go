package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Obtener el usuario actual
// @Description Devuelve el perfil del usuario autenticado
// @Tags Usuarios
// @Produce json
// @Success 200 {object} domain.User "Perfil del usuario"
// @Failure 401 {object} errorResponseBody "No autenticado"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, "usuario no encontrado")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Actualizar el usuario actual
// @Description Actualiza nombre, apellido o email del usuario autenticado
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param input body domain.UpdateUserDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Usuario actualizado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autenticado"
// @Security ApiKeyAuth
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	// El usuario no puede desactivarse a sí mismo por esta vía.
	input.IsActive = nil

	if err := h.services.User.Update(c.Request.Context(), userID, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "usuario actualizado")
}

// @Summary Cambiar contraseña
// @Description Cambia la contraseña del usuario autenticado verificando la actual
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param input body domain.PasswordUpdateDTO true "Contraseña actual y nueva"
// @Success 200 {object} messageResponseType "Contraseña actualizada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "No autenticado"
// @Security ApiKeyAuth
// @Router /users/me/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), userID, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "contraseña actualizada")
}

// @Summary Listar usuarios
// @Description Devuelve el padrón de usuarios. Solo para administradores.
// @Tags Usuarios
// @Produce json
// @Param limit query int false "Cantidad máxima de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {array} domain.User "Lista de usuarios"
// @Failure 403 {object} errorResponseBody "Acceso denegado"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, users)
}

// @Summary Obtener usuario por ID
// @Tags Usuarios
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} domain.User "Usuario"
// @Failure 404 {object} errorResponseBody "Usuario no encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "usuario no encontrado")
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Actualizar usuario
// @Description Actualiza cualquier usuario, incluida su activación. Solo para administradores.
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param input body domain.UpdateUserDTO true "Campos a actualizar"
// @Success 200 {object} messageResponseType "Usuario actualizado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 404 {object} errorResponseBody "Usuario no encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), id, input); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "usuario actualizado")
}

// @Summary Eliminar usuario
// @Tags Usuarios
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 204 {object} nil "Usuario eliminado"
// @Failure 404 {object} errorResponseBody "Usuario no encontrado"
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), id); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
