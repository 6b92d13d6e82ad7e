package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser     = "user"
	RoleBusiness = "business"
)

type User struct {
	ID           uuid.UUID
	Identifier   string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(identifier, passwordHash, name, role string) *User {
	if role == "" {
		role = RoleUser
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Identifier:   identifier,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *User) Update(name, passwordHash string) {
	u.Name = name
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
}
