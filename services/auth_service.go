package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/utils"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the unknown-user path as slow as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	exec *database.Executor
	now  func() time.Time
}

func NewAuthService(exec *database.Executor) *AuthService {
	return &AuthService{exec: exec, now: time.Now}
}

// Signup registers a student account and returns its id.
func (s *AuthService) Signup(ctx context.Context, username, password string) (uint, error) {
	return s.createUser(ctx, username, password, models.RoleStudent)
}

// Login returns the user when the password matches. Unknown users and wrong passwords
// both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, found, err := s.findByUsername(ctx, username)
	if err != nil || !found {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates an admin account unless the username is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.createUser(ctx, username, password, models.RoleAdmin)
	if errors.Is(err, ErrDuplicateUsername) {
		utils.InfoLogger.Printf("Admin %s already exists", username)
		return nil
	}
	if err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded admin user %s", username)
	return nil
}

func (s *AuthService) createUser(ctx context.Context, username, password string, role models.Role) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if !role.Valid() {
		return 0, fmt.Errorf("%w: invalid role", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	res, err := s.exec.Execute(ctx,
		"INSERT INTO users (username, password, role, created_at) VALUES (?, ?, ?, ?)",
		username, string(hashed), role, s.now().UTC(),
	)
	if errors.Is(err, database.ErrDuplicate) {
		return 0, ErrDuplicateUsername
	}
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", username, role)
	return uint(res.LastInsertID), nil
}

func (s *AuthService) findByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	var user models.User
	found, err := s.exec.QueryOne(ctx, &user,
		"SELECT id, username, password, role, created_at FROM users WHERE username = ? LIMIT 1",
		username,
	)
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}
