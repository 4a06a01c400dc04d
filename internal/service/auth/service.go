package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/auth"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/jwt"
	"github.com/livehost-agency/agency-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	auth.RefreshTokenRepository
	activity.ActivityRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, refreshTokenRepository auth.RefreshTokenRepository, activityRepository activity.ActivityRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		ActivityRepository:     activityRepository,
		Service:                jwtService,
	}
}

// hashToken keeps raw refresh tokens out of the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.IsActive() {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.FullName, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.RefreshTokenRepository.Store(txCtx, userData.ID, hashToken(tokenResponse.RefreshToken), time.Unix(tokenResponse.RefreshTokenExpiresIn, 0))
		if err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}

		return a.logActivity(txCtx, userData.ID, activity.ActionLogin, nil, session)
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = auth.UserSummary{
		ID:               userData.ID,
		Username:         userData.Username,
		FullName:         userData.FullName,
		Role:             string(userData.Role),
		ExperienceStatus: string(userData.ExperienceStatus),
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, session auth.SessionTrackingRequest) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ErrInvalidToken
	}

	if err := a.RefreshTokenRepository.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return a.logActivity(ctx, userID, activity.ActionLogout, nil, session)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims := token.PrivateClaims()
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	live, err := a.RefreshTokenRepository.Exists(ctx, userID, hashToken(req.RefreshToken))
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !live {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive() {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.FullName, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return resp, nil
}

func (a *AuthServiceImpl) logActivity(ctx context.Context, userID, action string, details *string, session auth.SessionTrackingRequest) error {
	log := &activity.Log{
		UserID:  &userID,
		Action:  action,
		Details: details,
	}
	if session.IPAddress != "" {
		log.IPAddress = &session.IPAddress
	}
	if session.UserAgent != "" {
		log.UserAgent = &session.UserAgent
	}
	if err := a.ActivityRepository.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}
