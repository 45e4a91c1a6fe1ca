package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// RegisterUserInput carries the data for user self-registration.
type RegisterUserInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// AuthService covers credentials, identity resolution and user management.
type AuthService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me resolves the calling user by id.
	Me(ctx context.Context, userID uint) (*domain.User, error)
	ListUsers(ctx context.Context, actor policy.Actor, offset, limit int) ([]domain.User, error)
	GetUser(ctx context.Context, actor policy.Actor, id uint) (*domain.User, error)
}
