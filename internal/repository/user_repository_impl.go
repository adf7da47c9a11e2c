package repository

import (
	"context"
	"errors"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user together with its doctor profile association,
// if set, in a single transaction.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("DoctorProfile").
		Where("email = ? AND role = ?", email, role).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("DoctorProfile").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.User, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Preload("DoctorProfile").
		Joins("LEFT JOIN doctor_profiles ON doctor_profiles.user_id = users.id").
		Where("users.role = ?", entity.RoleDoctor)

	if filter.Specialty != "" {
		query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+filter.Specialty+"%")
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(users.name ILIKE ? OR doctor_profiles.specialization ILIKE ?)", pattern, pattern)
	}

	var doctors []entity.User
	err := query.Order("users.created_at ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *userRepository) FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doctor entity.User
	err := r.db.WithContext(ctx).
		Preload("DoctorProfile").
		Where("id = ? AND role = ?", id, entity.RoleDoctor).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
