package application

import (
	"context"
	"errors"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

// RoleChecker resolves dashboard flags for an email that has already passed
// the self-match check against the verified token claim.
type RoleChecker struct {
	Users repository.UserRepository
}

func NewRoleChecker(users repository.UserRepository) *RoleChecker {
	return &RoleChecker{Users: users}
}

// IsAdmin reports whether the stored user has the admin role. A missing user
// is false, not an error.
func (rc *RoleChecker) IsAdmin(ctx context.Context, email string) (bool, error) {
	return rc.hasRole(ctx, email, entity.RoleAdmin)
}

// IsInstructor reports whether the stored user has the instructor role.
func (rc *RoleChecker) IsInstructor(ctx context.Context, email string) (bool, error) {
	return rc.hasRole(ctx, email, entity.RoleInstructor)
}

func (rc *RoleChecker) hasRole(ctx context.Context, email, role string) (bool, error) {
	u, err := rc.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Role == role, nil
}
