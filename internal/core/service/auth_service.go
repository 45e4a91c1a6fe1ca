package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// AuthService implements registration, login and user management.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a user account. Registration is public; role is validated
// against the closed set and duplicate emails are rejected.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
	}
	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Me resolves the calling user by id.
func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ListUsers is manager-only.
func (s *AuthService) ListUsers(ctx context.Context, actor policy.Actor, offset, limit int) ([]domain.User, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceUsers, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return s.users.List(ctx, offset, limit)
}

// GetUser allows managers to read anyone and every user to read themselves.
func (s *AuthService) GetUser(ctx context.Context, actor policy.Actor, id uint) (*domain.User, error) {
	if !actor.Authenticated {
		return nil, domain.ErrUnauthenticated
	}
	if actor.UserID != id {
		dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceUsers, Op: policy.OpRead})
		if err := dec.Err(); err != nil {
			return nil, err
		}
	}
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
