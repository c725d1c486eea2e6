package usecase

import (
	authdomain "github.com/prajithravisankar/focusflow/internal/auth/domain"
	authdto "github.com/prajithravisankar/focusflow/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user account and returns tokens
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login authenticates an email/password pair and returns tokens
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a stored refresh token for a fresh token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout invalidates a refresh token
	Logout(refreshToken string) error

	// ValidateToken verifies an access token and returns its user
	ValidateToken(tokenString string) (*authdomain.User, error)

	// GetProfile returns the user for an id
	GetProfile(userID string) (*authdomain.User, error)
}
