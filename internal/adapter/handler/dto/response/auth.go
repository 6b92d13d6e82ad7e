package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

type RefreshResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Identifier: u.Identifier,
		Name:       u.Name,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}
