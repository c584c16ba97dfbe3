package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/logger"
	"cattle-tracker/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	blacklist  repositories.TokenBlacklist
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	blacklist repositories.TokenBlacklist,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) services.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}
	if req.Password != req.Password2 {
		return nil, models.NewValidationError("password2", "passwords do not match")
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, &models.ConflictError{Message: "a user with that username already exists"}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, &models.ConflictError{Message: "a user with that email already exists"}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleViewer,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.AuthError("register", "failed to create user", err, map[string]interface{}{"username": req.Username})
		return nil, err
	}
	logger.Auth("register", "user registered", map[string]interface{}{"username": user.Username})

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, models.ErrNotFound) {
		logger.Auth("login_failed", "unknown username", map[string]interface{}{"username": req.Username})
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive || !utils.CheckPassword(user.Password, req.Password) {
		logger.Auth("login_failed", "bad credentials", map[string]interface{}{"username": req.Username})
		return nil, models.ErrInvalidCredentials
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.AuthError("login", "failed to record last login", err, map[string]interface{}{"username": user.Username})
	}
	logger.Auth("login", "user logged in", map[string]interface{}{"username": user.Username})

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.ParseRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		return err
	}

	if err := s.blacklist.Add(ctx, claims.ID, s.remainingTTL(claims.ExpiresAt.Time)); err != nil {
		return err
	}
	logger.Auth("logout", "refresh token revoked", map[string]interface{}{"user_id": claims.UserID})
	return nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		logger.Auth("refresh_denied", "blacklisted refresh token", map[string]interface{}{"user_id": claims.UserID})
		return nil, utils.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, utils.ErrInvalidToken
	}

	// Rotation: the presented token is dead once the new pair is issued.
	if err := s.blacklist.Add(ctx, claims.ID, s.remainingTTL(claims.ExpiresAt.Time)); err != nil {
		return nil, err
	}

	access, refresh, err := utils.GenerateTokenPair(user.ID, user.Username, user.Email, user.Role, s.jwtSecret, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	logger.Auth("refresh", "token pair rotated", map[string]interface{}{"user_id": user.ID.String()})

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *AuthServiceImpl) Verify(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return err
	}

	if claims.TokenType == utils.TokenTypeRefresh {
		revoked, err := s.blacklist.Contains(ctx, claims.ID)
		if err != nil {
			return err
		}
		if revoked {
			return utils.ErrInvalidToken
		}
	}
	return nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.UserToResponse(user), nil
}

func (s *AuthServiceImpl) UpdateCurrentUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != userID {
			return nil, &models.ConflictError{Message: "a user with that email already exists"}
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.Auth("profile_update", "profile updated", map[string]interface{}{"user_id": userID.String()})

	return dto.UserToResponse(user), nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	access, refresh, err := utils.GenerateTokenPair(user.ID, user.Username, user.Email, user.Role, s.jwtSecret, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Access:  access,
		Refresh: refresh,
		User:    *dto.UserToResponse(user),
	}, nil
}

func (s *AuthServiceImpl) remainingTTL(expiresAt time.Time) time.Duration {
	return expiresAt.Sub(s.now())
}
