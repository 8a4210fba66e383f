package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
	"blog-api/internal/util"
)

const tokenTypeBearer = "Bearer"

// AuthService defines the interface for registration, login and logout
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context, actorID uint) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	tokens     *util.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens *util.TokenManager, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Register creates a user account and signs it in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email is already registered", domain.ErrEmailTaken.Error())
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewInternalError("Failed to check email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, response.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email is already registered", domain.ErrEmailTaken.Error())
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, response.NewInternalError("Failed to create user", err)
	}

	s.logger.Info("User registered", zap.Uint("user_id", user.ID))
	return s.issue(user)
}

// Login verifies credentials and issues a token; unknown email and wrong
// password give the same error
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, response.NewInternalError("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	return s.issue(user)
}

// Logout revokes the token until it would have expired anyway
func (s *authServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.tokenRepo.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		s.logger.Error("Failed to revoke token", zap.String("jti", tokenID), zap.Error(err))
		return response.NewInternalError("Failed to log out", err)
	}
	return nil
}

// Me returns the actor's profile
func (s *authServiceImpl) Me(ctx context.Context, actorID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewInternalError("Failed to load user", err)
	}
	return toUserResponse(user), nil
}

func (s *authServiceImpl) issue(user *domain.User) (*dto.AuthResponse, error) {
	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		return nil, response.NewInternalError("Failed to issue token", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      toUserResponse(user),
	}, nil
}

func invalidCredentials() error {
	return response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", domain.ErrInvalidCredentials.Error())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
