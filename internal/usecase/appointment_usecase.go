package usecase

import (
	"context"
	"errors"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/delivery/http/middleware"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrNotAppointmentDoctor  = errors.New("only the appointed doctor may change this appointment")
	ErrInvalidDoctorID       = errors.New("invalid doctor ID")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrIdentityMissing       = errors.New("caller identity not found in context")
	ErrUnsupportedTransition = errors.New("unsupported status transition")
)

type AppointmentUsecase interface {
	ListForCaller(ctx context.Context) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// ListForCaller returns the caller's appointments. The caller's role
// decides which side of the appointment filters the set: patients see
// bookings they made, doctors see bookings made with them.
func (u *appointmentUsecase) ListForCaller(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}
	role, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	var appointments []entity.Appointment
	var err error
	if role == entity.RoleDoctor {
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, userID)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s %s: %+v", role, userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Create books a new appointment for the calling patient. The referenced
// doctor ID is not checked against the user table beyond referential
// integrity; see the data-integrity note in DESIGN.md.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	doctorID, err := uuid.Parse(req.Doctor)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointment := &entity.Appointment{
		PatientID: userID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus applies an approve or reject decision. Only the doctor
// referenced on the appointment may transition it. Re-transitioning an
// already decided appointment is allowed; the last decision wins.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}
	role, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	if role != entity.RoleDoctor {
		return nil, ErrNotAppointmentDoctor
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != userID {
		return nil, ErrNotAppointmentDoctor
	}

	switch entity.AppointmentStatus(req.Status) {
	case entity.AppointmentStatusScheduled:
		appointment.Approve()
	case entity.AppointmentStatusCancelled:
		appointment.Reject()
	default:
		return nil, ErrUnsupportedTransition
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
