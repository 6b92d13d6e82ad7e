package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
)

func TestRefreshToken_Usable(t *testing.T) {
	now := time.Now().UTC()

	rt := entity.NewRefreshToken(uuid.New(), "token", now.Add(time.Hour))
	assert.NoError(t, rt.Usable(now))

	assert.ErrorIs(t, rt.Usable(now.Add(2*time.Hour)), domain.ErrTokenExpired)

	rt.Revoke()
	assert.ErrorIs(t, rt.Usable(now), domain.ErrTokenRevoked)
	assert.ErrorIs(t, rt.Usable(now.Add(2*time.Hour)), domain.ErrTokenRevoked)
}
