package service

import (
	"context"
	"strings"

	"room-booking-api/core/cache"
	"room-booking-api/core/constants"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/utils"
	"room-booking-api/modules/auth/dto"
	"room-booking-api/modules/auth/entity"
	"room-booking-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepositoryInterface
	cache    cache.Cache
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	ValidateAccessToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError)
}

func NewAuthService(userRepo repository.UserRepositoryInterface, c cache.Cache) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if username == "" || email == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Username and email are required", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("AuthService:Register:GetByUsername", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", nil)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Username is already taken", nil)
	}
	existing, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Register:GetByEmail", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", nil)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email is already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("AuthService:Register:Hash", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", nil)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		IsManager:    false,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("AuthService:Register:Create", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to register user", nil)
	}

	logger.Info("AuthService:Register:Done", "user_id", user.ID, "username", user.Username)
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Username and password are required", nil)
	}

	attempts, err := s.cache.IsLoginBlocked(ctx, username)
	if err != nil {
		logger.Warn("AuthService:Login:AttemptCheck", "error", err)
	}
	if attempts >= constants.MaxLoginAttempts {
		return nil, errors.NewAppError(errors.ErrForbidden, "Too many failed attempts, try again later", nil)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("AuthService:Login:GetByUsername", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to log in", nil)
	}
	if user == nil || !user.IsActive {
		s.recordFailedAttempt(ctx, username)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid username or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, username)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid username or password", nil)
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Username, user.IsManager)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to log in", nil)
	}

	logger.Info("AuthService:Login:Done", "user_id", user.ID)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        dto.ToUserResponse(user),
	}, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, username string) {
	if err := s.cache.IncrementLoginAttempt(ctx, username); err != nil {
		logger.Warn("AuthService:Login:IncrementAttempt", "error", err)
	}
}

func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if err := s.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:Blacklist", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to log out", nil)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:Me:GetByID", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load user", nil)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ValidateAccessToken satisfies middleware.TokenValidator. Blacklisted
// tokens are rejected even when the signature is still valid.
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Warn("AuthService:ValidateAccessToken:BlacklistCheck", "error", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Token has been revoked", nil)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired token", nil)
	}
	return claims, nil
}
