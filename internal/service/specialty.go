package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
)

type SpecialtyServiceImpl struct {
	repo   repository.SpecialtyRepository
	logger *zap.Logger
}

func NewSpecialtyService(repo repository.SpecialtyRepository, logger *zap.Logger) *SpecialtyServiceImpl {
	return &SpecialtyServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *SpecialtyServiceImpl) Create(ctx context.Context, dto domain.CreateSpecialtyDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear la especialidad", zap.Error(err))
		return 0, errors.New("error al crear la especialidad")
	}

	return id, nil
}

func (s *SpecialtyServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpecialtyServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateSpecialtyDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar la especialidad", zap.Int64("specialtyId", id), zap.Error(err))
		return errors.New("error al actualizar la especialidad")
	}

	return nil
}

func (s *SpecialtyServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al eliminar la especialidad", zap.Int64("specialtyId", id), zap.Error(err))
		return errors.New("error al eliminar la especialidad")
	}

	return nil
}

func (s *SpecialtyServiceImpl) List(ctx context.Context) ([]domain.Specialty, error) {
	return s.repo.List(ctx)
}
