package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/internal/storage"
	"clinica/pkg/validator"
)

const studyURLExpiry = 15 * time.Minute

type RecordServiceImpl struct {
	repo        repository.RecordRepository
	doctorRepo  repository.DoctorRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewRecordService(
	repo repository.RecordRepository,
	doctorRepo repository.DoctorRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *RecordServiceImpl {
	return &RecordServiceImpl{
		repo:        repo,
		doctorRepo:  doctorRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *RecordServiceImpl) Create(ctx context.Context, doctorUserID int64, dto domain.CreateRecordDTO) (int64, error) {
	if !validator.ValidateDNI(dto.PatientDNI) {
		return 0, errors.New("el formato del DNI es inválido")
	}
	if !validator.ValidateEmail(dto.PatientEmail) {
		return 0, errors.New("el formato del email es inválido")
	}

	doctor, err := s.doctorRepo.GetByUserID(ctx, doctorUserID)
	if err != nil || doctor == nil {
		return 0, errors.New("perfil de doctor no encontrado")
	}

	dto.Diagnosis = validator.SanitizeString(dto.Diagnosis)
	dto.Notes = validator.SanitizeString(dto.Notes)

	id, err := s.repo.Create(ctx, doctor.ID, doctor.FullName, dto)
	if err != nil {
		s.logger.Error("error al crear la historia clínica", zap.Int64("doctorId", doctor.ID), zap.Error(err))
		return 0, errors.New("error al crear la historia clínica")
	}

	s.logger.Info("historia clínica creada",
		zap.Int64("recordId", id),
		zap.Int64("doctorId", doctor.ID),
		zap.String("patientDni", dto.PatientDNI),
	)

	return id, nil
}

func (s *RecordServiceImpl) GetByID(ctx context.Context, id int64) (*domain.MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RecordServiceImpl) ListByPatientDNI(ctx context.Context, dni string) ([]domain.MedicalRecord, error) {
	if !validator.ValidateDNI(dni) {
		return nil, errors.New("el formato del DNI es inválido")
	}

	return s.repo.ListByPatientDNI(ctx, dni)
}

func (s *RecordServiceImpl) ListByDoctorUserID(ctx context.Context, doctorUserID int64) ([]domain.MedicalRecord, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, doctorUserID)
	if err != nil || doctor == nil {
		return nil, errors.New("perfil de doctor no encontrado")
	}

	return s.repo.ListByDoctor(ctx, doctor.ID)
}

// UploadStudyFile sube el archivo al almacenamiento de objetos y guarda la
// URL en el estudio. Si ya había un archivo, el anterior se elimina.
func (s *RecordServiceImpl) UploadStudyFile(ctx context.Context, studyID int64, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("el almacenamiento de archivos no está configurado")
	}

	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return "", err
	}

	fileURL, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("error al subir el archivo del estudio", zap.Int64("studyId", studyID), zap.Error(err))
		return "", errors.New("error al subir el archivo del estudio")
	}

	if study.FileURL != nil && *study.FileURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, *study.FileURL); err != nil {
			s.logger.Warn("error al eliminar el archivo anterior", zap.Int64("studyId", studyID), zap.Error(err))
		}
	}

	if err := s.repo.SetStudyFileURL(ctx, studyID, fileURL); err != nil {
		s.logger.Error("error al guardar la URL del estudio", zap.Int64("studyId", studyID), zap.Error(err))
		return "", errors.New("error al guardar el archivo del estudio")
	}

	return fileURL, nil
}

func (s *RecordServiceImpl) StudyDownloadURL(ctx context.Context, studyID int64) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("el almacenamiento de archivos no está configurado")
	}

	study, err := s.repo.GetStudyByID(ctx, studyID)
	if err != nil {
		return "", err
	}

	if study.FileURL == nil || *study.FileURL == "" {
		return "", errors.New("el estudio no tiene archivo adjunto")
	}

	url, err := s.fileStorage.GetPresignedURL(ctx, *study.FileURL, studyURLExpiry)
	if err != nil {
		s.logger.Error("error al generar la URL de descarga", zap.Int64("studyId", studyID), zap.Error(err))
		return "", errors.New("error al generar la URL de descarga")
	}

	return url, nil
}
