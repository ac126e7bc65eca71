package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/auth"
	"clinica/pkg/validator"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

type AuthServiceImpl struct {
	authRepo   repository.AuthRepository
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	jwtConfig  config.JWTConfig
	logger     *zap.Logger
}

func NewAuthService(
	authRepo repository.AuthRepository,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		authRepo:   authRepo,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		jwtConfig:  jwtConfig,
		logger:     logger,
	}
}

// Register crea el usuario y, si el rol es doctor, también su perfil
// profesional con especialidad y matrícula.
func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (int64, error) {
	if !validator.ValidateEmail(dto.Email) {
		return 0, errors.New("el formato del email es inválido")
	}
	if !validator.ValidateDNI(dto.DNI) {
		return 0, errors.New("el formato del DNI es inválido")
	}
	if !validator.ValidatePassword(dto.Password) {
		return 0, errors.New("la contraseña debe tener al menos 6 caracteres")
	}

	if existing, err := s.userRepo.GetByEmail(ctx, dto.Email); err == nil && existing != nil {
		return 0, domain.ErrEmailAlreadyRegistered
	}
	if existing, err := s.userRepo.GetByDNI(ctx, dto.DNI); err == nil && existing != nil {
		return 0, domain.ErrDNIAlreadyRegistered
	}

	if dto.Role == domain.UserRoleDoctor && (dto.Specialty == "" || dto.LicenseNumber == "") {
		return 0, errors.New("el registro de un doctor requiere especialidad y matrícula")
	}

	hashedPassword, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("error al hashear la contraseña", zap.Error(err))
		return 0, errors.New("error al registrar el usuario")
	}

	createUserDTO := domain.CreateUserDTO{
		FirstName: validator.FormatName(dto.FirstName),
		LastName:  validator.FormatName(dto.LastName),
		DNI:       dto.DNI,
		Email:     dto.Email,
		Password:  hashedPassword,
		Role:      dto.Role,
	}

	userID, err := s.userRepo.Create(ctx, createUserDTO)
	if err != nil {
		s.logger.Error("error al crear el usuario", zap.Error(err))
		return 0, errors.New("error al registrar el usuario")
	}

	if dto.Role == domain.UserRoleDoctor {
		_, err = s.doctorRepo.Create(ctx, userID, domain.CreateDoctorDTO{
			Specialty:     dto.Specialty,
			LicenseNumber: dto.LicenseNumber,
		})
		if err != nil {
			s.logger.Error("error al crear el perfil del doctor", zap.Int64("userId", userID), zap.Error(err))
			return 0, errors.New("error al registrar el doctor")
		}
	}

	return userID, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil || user == nil {
		s.logger.Warn("usuario no encontrado", zap.String("email", dto.Email))
		return nil, errors.New("email o contraseña incorrectos")
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil || !ok {
		s.logger.Warn("contraseña incorrecta", zap.Int64("userId", user.ID))
		return nil, errors.New("email o contraseña incorrectos")
	}

	if !user.IsActive {
		return nil, errors.New("la cuenta está desactivada")
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("error al generar los tokens", zap.Error(err))
		return nil, errors.New("error al iniciar sesión")
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("error al guardar la sesión", zap.Error(err))
		return nil, errors.New("error al iniciar sesión")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("sesión no encontrada", zap.Error(err))
		return nil, errors.New("refresh token inválido")
	}

	if session.ExpiresAt.Before(time.Now()) {
		if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
			s.logger.Warn("error al eliminar la sesión vencida", zap.Error(err))
		}
		return nil, errors.New("el refresh token expiró")
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		s.logger.Error("usuario de la sesión no encontrado", zap.Int64("userId", session.UserID))
		return nil, errors.New("usuario no encontrado")
	}

	if !user.IsActive {
		return nil, errors.New("la cuenta está desactivada")
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Warn("error al eliminar la sesión anterior", zap.Error(err))
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("error al generar los tokens", zap.Error(err))
		return nil, errors.New("error al renovar los tokens")
	}

	newSession := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, newSession); err != nil {
		s.logger.Error("error al guardar la nueva sesión", zap.Error(err))
		return nil, errors.New("error al renovar los tokens")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("sesión no encontrada al cerrar sesión", zap.Error(err))
		return nil
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Error("error al eliminar la sesión", zap.Error(err))
		return errors.New("error al cerrar sesión")
	}

	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (int64, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})

	if err != nil {
		return 0, "", fmt.Errorf("error al parsear el token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("token inválido")
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) generateTokens(userID int64, role domain.UserRole) (*domain.Tokens, error) {
	accessTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("error al firmar el access token: %w", err)
	}

	refreshTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshTokenClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("error al firmar el refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
	}, nil
}
