package services

import (
	"context"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// Logout blacklists the refresh token until it would have expired.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh rotates the pair: the old refresh token is blacklisted and a
	// new access/refresh pair issued.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)

	// Verify checks an access or refresh token's signature and expiry.
	Verify(ctx context.Context, token string) error

	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateCurrentUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}
