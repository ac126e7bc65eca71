package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

const maxStudyFileSize = 10 << 20 // 10 MB

// @Summary Crear historia clínica
// @Description Registra una entrada de historia clínica con diagnóstico, recetas y estudios solicitados. Solo para doctores.
// @Tags Historias clínicas
// @Accept json
// @Produce json
// @Param input body domain.CreateRecordDTO true "Datos de la historia"
// @Success 201 {object} map[string]interface{} "ID de la historia creada"
// @Failure 400 {object} errorResponseBody "Error de validación"
// @Failure 403 {object} errorResponseBody "Se requiere rol de doctor"
// @Security ApiKeyAuth
// @Router /records [post]
func (h *Handler) createRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateRecordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de datos inválido", zap.Error(err))
		badRequestResponse(c, "formato de datos inválido")
		return
	}

	id, err := h.services.Record.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Obtener historia clínica por ID
// @Description Los pacientes solo acceden a sus propias historias.
// @Tags Historias clínicas
// @Produce json
// @Param id path int true "ID de la historia"
// @Success 200 {object} domain.MedicalRecord "Historia clínica"
// @Failure 403 {object} errorResponseBody "Acceso denegado"
// @Failure 404 {object} errorResponseBody "Historia no encontrada"
// @Security ApiKeyAuth
// @Router /records/{id} [get]
func (h *Handler) getRecordByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	record, err := h.services.Record.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "historia clínica no encontrada")
		return
	}

	role, _ := getUserRole(c)
	if role == domain.UserRolePatient {
		userID, err := getUserID(c)
		if err != nil {
			unauthorizedResponse(c)
			return
		}
		user, err := h.services.User.GetByID(c.Request.Context(), userID)
		if err != nil || user.DNI != record.PatientDNI {
			forbiddenResponse(c)
			return
		}
	}

	successResponse(c, http.StatusOK, record)
}

// @Summary Historias clínicas de un paciente
// @Description Busca las historias por DNI del paciente. Solo para doctores y admins.
// @Tags Historias clínicas
// @Produce json
// @Param patientDni query string true "DNI del paciente"
// @Success 200 {array} domain.MedicalRecord "Historias del paciente"
// @Failure 400 {object} errorResponseBody "DNI inválido"
// @Security ApiKeyAuth
// @Router /records [get]
func (h *Handler) getRecordsByPatient(c *gin.Context) {
	dni := c.Query("patientDni")
	if dni == "" {
		badRequestResponse(c, "el parámetro patientDni es obligatorio")
		return
	}

	records, err := h.services.Record.ListByPatientDNI(c.Request.Context(), dni)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, records)
}

// @Summary Historias clínicas propias del paciente
// @Tags Historias clínicas
// @Produce json
// @Success 200 {array} domain.MedicalRecord "Historias del paciente autenticado"
// @Failure 401 {object} errorResponseBody "No autenticado"
// @Security ApiKeyAuth
// @Router /records/mine [get]
func (h *Handler) getMyRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	records, err := h.services.Record.ListByPatientDNI(c.Request.Context(), user.DNI)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, records)
}

// @Summary Historias clínicas escritas por el doctor
// @Tags Historias clínicas
// @Produce json
// @Success 200 {array} domain.MedicalRecord "Historias escritas por el doctor autenticado"
// @Failure 403 {object} errorResponseBody "Se requiere rol de doctor"
// @Security ApiKeyAuth
// @Router /records/own [get]
func (h *Handler) getDoctorRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	records, err := h.services.Record.ListByDoctorUserID(c.Request.Context(), userID)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, records)
}

// @Summary Subir archivo de un estudio
// @Description Adjunta el archivo (PDF o imagen) al estudio indicado. Solo para doctores.
// @Tags Historias clínicas
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID del estudio"
// @Param file formData file true "Archivo del estudio"
// @Success 200 {object} map[string]interface{} "URL del archivo"
// @Failure 400 {object} errorResponseBody "Archivo inválido"
// @Failure 404 {object} errorResponseBody "Estudio no encontrado"
// @Security ApiKeyAuth
// @Router /records/studies/{id}/file [post]
func (h *Handler) uploadStudyFile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "el archivo es obligatorio")
		return
	}

	if fileHeader.Size > maxStudyFileSize {
		badRequestResponse(c, "el archivo supera el tamaño máximo de 10 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	fileURL, err := h.services.Record.UploadStudyFile(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"fileUrl": fileURL})
}

// @Summary Descargar archivo de un estudio
// @Description Devuelve una URL prefirmada de descarga con vigencia limitada.
// @Tags Historias clínicas
// @Produce json
// @Param id path int true "ID del estudio"
// @Success 200 {object} map[string]interface{} "URL de descarga"
// @Failure 404 {object} errorResponseBody "Estudio no encontrado"
// @Security ApiKeyAuth
// @Router /records/studies/{id}/file [get]
func (h *Handler) getStudyFileURL(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	url, err := h.services.Record.StudyDownloadURL(c.Request.Context(), id)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"url": url})
}
