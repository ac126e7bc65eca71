package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
)

type OfficeServiceImpl struct {
	repo   repository.OfficeRepository
	logger *zap.Logger
}

func NewOfficeService(repo repository.OfficeRepository, logger *zap.Logger) *OfficeServiceImpl {
	return &OfficeServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *OfficeServiceImpl) Create(ctx context.Context, dto domain.CreateOfficeDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear el consultorio", zap.Error(err))
		return 0, errors.New("error al crear el consultorio")
	}

	return id, nil
}

func (s *OfficeServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OfficeServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateOfficeDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar el consultorio", zap.Int64("officeId", id), zap.Error(err))
		return errors.New("error al actualizar el consultorio")
	}

	return nil
}

func (s *OfficeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al eliminar el consultorio", zap.Int64("officeId", id), zap.Error(err))
		return errors.New("error al eliminar el consultorio")
	}

	return nil
}

func (s *OfficeServiceImpl) List(ctx context.Context) ([]domain.Office, error) {
	return s.repo.List(ctx)
}
