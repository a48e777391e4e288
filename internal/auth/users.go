// internal/auth/users.go
//
// User accounts in SQLite.
// Responsibilities:
//   - Signup validation (username charset/length, password length).
//   - bcrypt password hashing and verification.
//   - Lookups by id and by case-insensitive username.

// Package auth provides user accounts, JWT sessions and the auth middleware.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError is a rejected signup field.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// User is an account row.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Users is the account repository.
type Users struct {
	db   *sql.DB
	cost int
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db, cost: bcrypt.DefaultCost}
}

// Create validates input, hashes the password and inserts a new user.
func (u *Users) Create(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateSignup(username, password); err != nil {
		return nil, err
	}
	if _, err := u.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(h),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	query, args, err := sq.Insert("users").
		Columns("id", "username", "password_hash", "created_at").
		Values(user.ID, user.Username, user.PasswordHash, user.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := u.db.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Authenticate returns the user when username and password match.
func (u *Users) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := u.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*User, error) {
	return u.findOne(ctx, sq.Expr("lower(username) = lower(?)", username))
}

func (u *Users) FindByID(ctx context.Context, id string) (*User, error) {
	return u.findOne(ctx, sq.Eq{"id": id})
}

func (u *Users) findOne(ctx context.Context, where sq.Sqlizer) (*User, error) {
	query, args, err := sq.Select("id", "username", "password_hash", "created_at").
		From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	var (
		user    User
		created string
	)
	err = u.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &user, nil
}

func validateSignup(username, password string) error {
	if len(username) < 3 || len(username) > 24 {
		return &ValidationError{"username must be 3-24 chars"}
	}
	for _, r := range username {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return &ValidationError{"username: letters, numbers, underscore only"}
		}
	}
	if len(password) < 8 || len(password) > 100 {
		return &ValidationError{"password must be 8-100 chars"}
	}
	return nil
}
