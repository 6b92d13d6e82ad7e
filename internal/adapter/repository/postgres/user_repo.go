package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, identifier, password_hash, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Identifier, user.PasswordHash, user.Name, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, identifier, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepo) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	query := `
		SELECT id, identifier, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE identifier = $1
	`
	user, err := r.scanUser(r.pool.QueryRow(ctx, query, identifier))
	if err != nil {
		return nil, fmt.Errorf("querying user by identifier: %w", err)
	}
	return user, nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID, &user.Identifier, &user.PasswordHash, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET password_hash = $2, name = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		user.ID, user.PasswordHash, user.Name, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) ExistsByIdentifier(ctx context.Context, identifier string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE identifier = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, identifier).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking identifier existence: %w", err)
	}
	return exists, nil
}
