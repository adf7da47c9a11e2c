package repository

import (
	"context"

	"medibook/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.User, error)
	FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
