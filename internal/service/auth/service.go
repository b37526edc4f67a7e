package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/auth"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/user"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.User = auth.SessionUser{
		ID:       userData.ID,
		Username: userData.Username,
		Role:     string(userData.Role),
	}

	return tokenResponse, nil
}

// Verify implements auth.AuthService. The JWT middleware has already
// validated the token; this resolves the claims back to a live user so
// a deactivated account stops working before the token expires.
func (a *AuthServiceImpl) Verify(ctx context.Context) (auth.SessionUser, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return auth.SessionUser{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.SessionUser{}, auth.ErrInvalidToken
		}
		return auth.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return auth.SessionUser{}, auth.ErrInvalidToken
	}

	return auth.SessionUser{
		ID:       userData.ID,
		Username: userData.Username,
		Role:     string(userData.Role),
	}, nil
}

// UpdateProfile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (auth.SessionUser, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return auth.SessionUser{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.SessionUser{}, auth.ErrInvalidToken
		}
		return auth.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if req.Username != userData.Username {
		existing, err := a.UserRepository.GetByUsername(ctx, req.Username)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return auth.SessionUser{}, fmt.Errorf("failed to check username: %w", err)
		}
		if err == nil && existing.ID != userData.ID {
			return auth.SessionUser{}, user.ErrUsernameExists
		}
		userData.Username = req.Username
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(*req.CurrentPassword)); err != nil {
			return auth.SessionUser{}, auth.ErrWrongPassword
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return auth.SessionUser{}, fmt.Errorf("failed to hash password: %w", err)
		}
		userData.PasswordHash = string(hash)
	}

	if err := a.UserRepository.Update(ctx, userData); err != nil {
		return auth.SessionUser{}, fmt.Errorf("failed to update user: %w", err)
	}

	return auth.SessionUser{
		ID:       userData.ID,
		Username: userData.Username,
		Role:     string(userData.Role),
	}, nil
}

// sessionUserID pulls the authenticated user id out of the JWT claims
// that jwtauth.Verifier stored on the context.
func sessionUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
