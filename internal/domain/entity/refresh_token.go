package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
)

// RefreshToken is a single-use credential. Each refresh revokes the token and
// issues a new one; a login revokes every token of the user.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

func NewRefreshToken(userID uuid.UUID, token string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

func (rt *RefreshToken) Revoke() {
	now := time.Now().UTC()
	rt.RevokedAt = &now
}

// Usable reports why the token can no longer be exchanged, revocation
// taking precedence over expiry.
func (rt *RefreshToken) Usable(now time.Time) error {
	if rt.RevokedAt != nil {
		return domain.ErrTokenRevoked
	}
	if !rt.ExpiresAt.After(now) {
		return domain.ErrTokenExpired
	}
	return nil
}
