package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Registrar un nuevo usuario
// @Description Registra un paciente o un doctor. El registro de doctores requiere especialidad y matrícula.
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Datos de registro"
// @Success 201 {object} map[string]interface{} "ID del usuario creado"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 409 {object} errorResponseBody "Email o DNI ya registrados"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Iniciar sesión
// @Description Autentica al usuario y devuelve los tokens de acceso
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credenciales"
// @Success 200 {object} domain.Tokens "Tokens de acceso y renovación"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "Credenciales inválidas"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), input, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Renovar tokens
// @Description Renueva los tokens de acceso usando el refresh token
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} domain.Tokens "Nuevos tokens"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 401 {object} errorResponseBody "Refresh token inválido"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var input domain.RefreshTokenRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), input.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Cerrar sesión
// @Description Invalida la sesión asociada al refresh token
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 204 {object} nil "Sesión cerrada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var input domain.RefreshTokenRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
