package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	domainrepo "github.com/content-studio-team/content-studio/internal/domain/repositories"
	pkgjwt "github.com/content-studio-team/content-studio/pkg/jwt"
)

// TokenPair bundles the tokens returned after a successful login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Service defines authentication methods
type Service interface {
	Register(ctx context.Context, email, name, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*entities.User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authService struct {
	userRepo   domainrepo.UserRepository
	jwtManager *pkgjwt.Manager
	logger     *zap.Logger
}

// NewService constructs the auth service
func NewService(userRepo domainrepo.UserRepository, jwtManager *pkgjwt.Manager, logger *zap.Logger) Service {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, email, name, password string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, entities.ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: must be at least 8 characters", entities.ErrInvalidPassword)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, entities.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(email, name, string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*entities.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil, entities.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, nil, entities.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, entities.ErrUnauthorized
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil && s.logger != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return user, pair, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *entities.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
