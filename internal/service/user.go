package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/auth"
	"clinica/pkg/validator"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	if dto.Email != nil && !validator.ValidateEmail(*dto.Email) {
		return errors.New("el formato del email es inválido")
	}
	if dto.FirstName != nil {
		formatted := validator.FormatName(*dto.FirstName)
		dto.FirstName = &formatted
	}
	if dto.LastName != nil {
		formatted := validator.FormatName(*dto.LastName)
		dto.LastName = &formatted
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al actualizar el usuario", zap.Int64("userId", id), zap.Error(err))
		return errors.New("error al actualizar el usuario")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		return errors.New("la contraseña actual es incorrecta")
	}

	if !validator.ValidatePassword(dto.NewPassword) {
		return errors.New("la contraseña debe tener al menos 6 caracteres")
	}

	hashed, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("error al hashear la contraseña", zap.Error(err))
		return errors.New("error al actualizar la contraseña")
	}

	if err := s.repo.UpdatePassword(ctx, id, hashed); err != nil {
		s.logger.Error("error al actualizar la contraseña", zap.Int64("userId", id), zap.Error(err))
		return errors.New("error al actualizar la contraseña")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("error al eliminar el usuario", zap.Int64("userId", id), zap.Error(err))
		return errors.New("error al eliminar el usuario")
	}

	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, limit, offset)
}
