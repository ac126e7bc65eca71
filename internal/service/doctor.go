package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/validator"
)

type DoctorServiceImpl struct {
	repo   repository.DoctorRepository
	logger *zap.Logger
}

func NewDoctorService(repo repository.DoctorRepository, logger *zap.Logger) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	if dto.SlotLabels != nil {
		for _, slot := range *dto.SlotLabels {
			if !validator.ValidateTime(slot) {
				return errors.New("los horarios deben tener formato HH:MM")
			}
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar el doctor", zap.Int64("doctorId", id), zap.Error(err))
		return errors.New("error al actualizar el doctor")
	}

	return nil
}

func (s *DoctorServiceImpl) List(ctx context.Context, specialty *string, limit, offset int) ([]domain.Doctor, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, specialty, limit, offset)
}
