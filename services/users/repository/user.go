package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

// UserRepo implements users.UserRepo on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser persists a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (
			id, email, password_hash, name, photo_url, mobile,
			home_address, work_address, created_at, updated_at
		) VALUES (
			:id, :email, :password_hash, :name, :photo_url, :mobile,
			:home_address, :work_address, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail loads an account by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID loads an account by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// SetHomeAddress updates the user's saved home address
func (r *UserRepo) SetHomeAddress(ctx context.Context, userID uuid.UUID, address string) error {
	return r.setAddress(ctx, userID, "home_address", address)
}

// SetWorkAddress updates the user's saved work address
func (r *UserRepo) SetWorkAddress(ctx context.Context, userID uuid.UUID, address string) error {
	return r.setAddress(ctx, userID, "work_address", address)
}

func (r *UserRepo) setAddress(ctx context.Context, userID uuid.UUID, column, address string) error {
	query := fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = $2 WHERE id = $3`, column)
	res, err := r.db.ExecContext(ctx, query, address, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// SearchUsers returns a page of public profiles whose name matches the
// search text
func (r *UserRepo) SearchUsers(ctx context.Context, search string, page, limit int) (*models.UserPage, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + search + "%"

	query := `
		SELECT id, name, COALESCE(photo_url, '') AS photo_url
		FROM users
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	var summaries []*models.UserSummary
	if err := r.db.SelectContext(ctx, &summaries, query, pattern, limit, page*limit); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users WHERE name ILIKE $1`, pattern); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &models.UserPage{
		Users:      summaries,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
