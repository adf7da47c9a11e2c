package usecase

import (
	"context"
	"errors"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Search(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
	cache    service.DoctorDirectoryCache
}

func NewDoctorUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	cache service.DoctorDirectoryCache,
) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Search returns all doctors matching the optional filters. Filters
// compose with AND; results keep storage order. Responses are served
// from the directory cache when a matching entry exists.
func (u *doctorUsecase) Search(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	if u.cache != nil {
		if doctors, ok := u.cache.GetSearch(ctx, req.Specialty, req.Search); ok {
			return &dto.DoctorListResponse{Doctors: doctors, Total: len(doctors)}, nil
		}
	}

	doctors, err := u.userRepo.FindDoctors(ctx, entity.DoctorFilter{
		Specialty: req.Specialty,
		Search:    req.Search,
	})
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(doctors)

	if u.cache != nil {
		u.cache.SetSearch(ctx, req.Specialty, req.Search, responses)
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	doctor, err := u.userRepo.FindDoctorByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.UserToResponse(doctor), nil
}
