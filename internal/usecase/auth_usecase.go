package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-clinic-scheduling/internal/converter"
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/internal/service"
	"go-clinic-scheduling/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; the caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	// Register creates a patient account.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64, tokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)

	// VerifyCredential recomputes the digest from the supplied secret and
	// compares it to the stored one. Side-effect free.
	VerifyCredential(ctx context.Context, username, secret string) (bool, error)
}

type authUsecase struct {
	log           *logrus.Logger
	userRepo      repository.UserRepository
	notifications service.NotificationService
	jwtService    *jwt.JWTService
	redisClient   *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	notifications service.NotificationService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:           log,
		userRepo:      userRepo,
		notifications: notifications,
		jwtService:    jwtService,
		redisClient:   redisClient,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Role:         entity.RolePatient,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}

	if err := u.userRepo.Register(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUsernameTaken) {
			u.log.Warnf("Failed to register user: %+v", err)
		}
		return nil, err
	}

	u.notifications.Record(ctx, entity.EventUserRegistered,
		fmt.Sprintf("New patient registered: %s", user.Username))

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, user.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int64, tokenID string) error {
	if u.redisClient == nil {
		return nil
	}

	accessKey := fmt.Sprintf("access_token:%d:%s", userID, tokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Drop every refresh token for the user as well; a logout invalidates
	// the whole session.
	refreshPattern := fmt.Sprintf("refresh_token:%d:*", userID)
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	if u.redisClient != nil {
		refreshKey := fmt.Sprintf("refresh_token:%d:%s", claims.UserID, claims.TokenID)
		exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
		if err != nil {
			u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
			return nil, err
		}
		if exists == 0 {
			return nil, ErrTokenRevoked
		}
		if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
			u.log.Warnf("Failed to delete old refresh token: %+v", err)
			return nil, err
		}
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, user.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) VerifyCredential(ctx context.Context, username, secret string) (bool, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) == nil, nil
}

func (u *authUsecase) storeTokens(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error {
	if u.redisClient == nil {
		return nil
	}

	accessKey := fmt.Sprintf("access_token:%d:%s", userID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%d:%s", userID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return err
	}
	return nil
}
