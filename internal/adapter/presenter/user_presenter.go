package presenter

import (
	authDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/auth"
	"github.com/content-studio-team/content-studio/internal/domain/entities"
	"github.com/content-studio-team/content-studio/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Language:    u.Language,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAuthResponse converts a token pair plus user into the auth response DTO
func ToAuthResponse(user *entities.User, pair *auth.TokenPair) *authDTO.AuthResponse {
	if pair == nil {
		return nil
	}
	return &authDTO.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		TokenType:    "Bearer",
		User:         ToUserResponse(user),
	}
}
