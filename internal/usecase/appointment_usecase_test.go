package usecase

import (
	"context"
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/delivery/http/middleware"
	"medibook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callerCtx builds a context carrying the identity the auth middleware
// would have derived from a verified bearer token.
func callerCtx(userID uuid.UUID, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.UserRoleKey, role)
}

func newAppointmentFixture() (AppointmentUsecase, *mockAppointmentRepo) {
	repo := newMockAppointmentRepo()
	uc := NewAppointmentUsecase(logrus.New(), repo)
	return uc, repo
}

func createAppointment(t *testing.T, uc AppointmentUsecase, patientID, doctorID uuid.UUID) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := uc.Create(callerCtx(patientID, entity.RolePatient), &dto.CreateAppointmentRequest{
		Doctor: doctorID.String(),
		Date:   "2025-06-01",
		Time:   "10:00 AM",
		Reason: "checkup",
	})
	require.NoError(t, err)
	return appointment
}

func TestCreateAppointment(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	t.Run("new appointment starts pending", func(t *testing.T) {
		uc, repo := newAppointmentFixture()

		appointment := createAppointment(t, uc, patientID, doctorID)

		assert.Equal(t, string(entity.AppointmentStatusPending), appointment.Status)
		assert.Equal(t, "2025-06-01", appointment.Date)
		assert.Equal(t, "10:00 AM", appointment.Time)

		stored, _ := repo.FindByID(context.Background(), appointment.ID)
		require.NotNil(t, stored)
		assert.Equal(t, entity.AppointmentStatusPending, stored.Status)
		assert.Equal(t, patientID, stored.PatientID)
		assert.Equal(t, doctorID, stored.DoctorID)
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		uc, _ := newAppointmentFixture()

		_, err := uc.Create(callerCtx(patientID, entity.RolePatient), &dto.CreateAppointmentRequest{
			Doctor: doctorID.String(),
			Date:   "not-a-date",
			Time:   "10:00 AM",
			Reason: "checkup",
		})
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("malformed doctor id is rejected", func(t *testing.T) {
		uc, _ := newAppointmentFixture()

		_, err := uc.Create(callerCtx(patientID, entity.RolePatient), &dto.CreateAppointmentRequest{
			Doctor: "not-a-uuid",
			Date:   "2025-06-01",
			Time:   "10:00 AM",
			Reason: "checkup",
		})
		assert.ErrorIs(t, err, ErrInvalidDoctorID)
	})

	t.Run("missing identity is rejected", func(t *testing.T) {
		uc, _ := newAppointmentFixture()

		_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
			Doctor: doctorID.String(),
			Date:   "2025-06-01",
			Time:   "10:00 AM",
			Reason: "checkup",
		})
		assert.ErrorIs(t, err, ErrIdentityMissing)
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	otherDoctorID := uuid.New()

	approve := &dto.UpdateAppointmentStatusRequest{Status: "scheduled"}
	reject := &dto.UpdateAppointmentStatusRequest{Status: "cancelled"}

	t.Run("owning doctor approves", func(t *testing.T) {
		uc, _ := newAppointmentFixture()
		appointment := createAppointment(t, uc, patientID, doctorID)

		updated, err := uc.UpdateStatus(callerCtx(doctorID, entity.RoleDoctor), appointment.ID, approve)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusScheduled), updated.Status)
	})

	t.Run("owning doctor rejects", func(t *testing.T) {
		uc, _ := newAppointmentFixture()
		appointment := createAppointment(t, uc, patientID, doctorID)

		updated, err := uc.UpdateStatus(callerCtx(doctorID, entity.RoleDoctor), appointment.ID, reject)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCancelled), updated.Status)
	})

	t.Run("a different doctor is refused", func(t *testing.T) {
		uc, repo := newAppointmentFixture()
		appointment := createAppointment(t, uc, patientID, doctorID)

		_, err := uc.UpdateStatus(callerCtx(otherDoctorID, entity.RoleDoctor), appointment.ID, approve)
		assert.ErrorIs(t, err, ErrNotAppointmentDoctor)

		stored, _ := repo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, entity.AppointmentStatusPending, stored.Status)
	})

	t.Run("a patient caller is refused", func(t *testing.T) {
		uc, _ := newAppointmentFixture()
		appointment := createAppointment(t, uc, patientID, doctorID)

		_, err := uc.UpdateStatus(callerCtx(patientID, entity.RolePatient), appointment.ID, approve)
		assert.ErrorIs(t, err, ErrNotAppointmentDoctor)
	})

	t.Run("unknown appointment id", func(t *testing.T) {
		uc, _ := newAppointmentFixture()

		_, err := uc.UpdateStatus(callerCtx(doctorID, entity.RoleDoctor), uuid.New(), approve)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("re-transition keeps the last decision", func(t *testing.T) {
		// Nothing forbids deciding an already decided appointment; the
		// final state is whatever transition was applied last.
		uc, repo := newAppointmentFixture()
		appointment := createAppointment(t, uc, patientID, doctorID)
		ctx := callerCtx(doctorID, entity.RoleDoctor)

		_, err := uc.UpdateStatus(ctx, appointment.ID, approve)
		require.NoError(t, err)
		updated, err := uc.UpdateStatus(ctx, appointment.ID, reject)
		require.NoError(t, err)

		assert.Equal(t, string(entity.AppointmentStatusCancelled), updated.Status)
		stored, _ := repo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status)
	})
}

func TestListForCaller(t *testing.T) {
	patientID := uuid.New()
	otherPatientID := uuid.New()
	doctorID := uuid.New()

	uc, _ := newAppointmentFixture()
	createAppointment(t, uc, patientID, doctorID)
	createAppointment(t, uc, otherPatientID, doctorID)

	t.Run("patient sees only their bookings", func(t *testing.T) {
		list, err := uc.ListForCaller(callerCtx(patientID, entity.RolePatient))
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
	})

	t.Run("doctor sees all bookings made with them", func(t *testing.T) {
		list, err := uc.ListForCaller(callerCtx(doctorID, entity.RoleDoctor))
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
	})

	t.Run("uninvolved doctor sees nothing", func(t *testing.T) {
		list, err := uc.ListForCaller(callerCtx(uuid.New(), entity.RoleDoctor))
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
	})
}

// TestBookingFlow mirrors the end-to-end booking scenario: a patient
// registers, books, the doctor approves, and a second doctor cannot
// touch the appointment.
func TestBookingFlow(t *testing.T) {
	authUC, _, _ := newAuthFixture()
	appointmentUC, _ := newAppointmentFixture()

	doctor, err := authUC.Register(context.Background(), &dto.RegisterRequest{
		Name: "Dr. D", Email: "d@x.com", Password: "pw123456", Role: entity.RoleDoctor, Specialization: "Cardiology",
	})
	require.NoError(t, err)
	intruder, err := authUC.Register(context.Background(), &dto.RegisterRequest{
		Name: "Dr. E", Email: "e@x.com", Password: "pw123456", Role: entity.RoleDoctor, Specialization: "Dermatology",
	})
	require.NoError(t, err)
	patient, err := authUC.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@x.com", Password: "pw123", Role: entity.RolePatient,
	})
	require.NoError(t, err)

	_, err = authUC.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@x.com", Password: "pw123", Role: entity.RolePatient,
	})
	require.NoError(t, err)

	created, err := appointmentUC.Create(callerCtx(patient.User.ID, entity.RolePatient), &dto.CreateAppointmentRequest{
		Doctor: doctor.User.ID.String(),
		Date:   "2025-06-01",
		Time:   "10:00 AM",
		Reason: "checkup",
	})
	require.NoError(t, err)

	list, err := appointmentUC.ListForCaller(callerCtx(patient.User.ID, entity.RolePatient))
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "pending", list.Appointments[0].Status)

	_, err = appointmentUC.UpdateStatus(callerCtx(intruder.User.ID, entity.RoleDoctor), created.ID,
		&dto.UpdateAppointmentStatusRequest{Status: "scheduled"})
	assert.ErrorIs(t, err, ErrNotAppointmentDoctor)

	_, err = appointmentUC.UpdateStatus(callerCtx(doctor.User.ID, entity.RoleDoctor), created.ID,
		&dto.UpdateAppointmentStatusRequest{Status: "scheduled"})
	require.NoError(t, err)

	list, err = appointmentUC.ListForCaller(callerCtx(patient.User.ID, entity.RolePatient))
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "scheduled", list.Appointments[0].Status)
}
