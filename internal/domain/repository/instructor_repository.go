package repository

import (
	"context"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// InstructorRepository defines instructors collection operations.
type InstructorRepository interface {
	All(ctx context.Context) ([]entity.Instructor, error)
}
