package usecase

import (
	"context"
	"strings"
	"time"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"

	"github.com/google/uuid"
)

// -- Mock repositories --

type mockUserRepo struct {
	users     []*entity.User
	findCalls int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if user.DoctorProfile != nil {
		user.DoctorProfile.UserID = user.ID
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailAndRole(_ context.Context, email, role string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindDoctors(_ context.Context, filter entity.DoctorFilter) ([]entity.User, error) {
	m.findCalls++
	var doctors []entity.User
	for _, u := range m.users {
		if u.Role != entity.RoleDoctor {
			continue
		}
		specialization := ""
		if u.DoctorProfile != nil {
			specialization = u.DoctorProfile.Specialization
		}
		if filter.Specialty != "" && !containsFold(specialization, filter.Specialty) {
			continue
		}
		if filter.Search != "" && !containsFold(u.Name, filter.Search) && !containsFold(specialization, filter.Search) {
			continue
		}
		doctors = append(doctors, *u)
	}
	return doctors, nil
}

func (m *mockUserRepo) FindDoctorByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id && u.Role == entity.RoleDoctor {
			return u, nil
		}
	}
	return nil, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type mockAppointmentRepo struct {
	appointments []*entity.Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	m.appointments = append(m.appointments, appointment)
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByPatientID(_ context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(_ context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	appointment.UpdatedAt = time.Now()
	for i, a := range m.appointments {
		if a.ID == appointment.ID {
			m.appointments[i] = appointment
			return nil
		}
	}
	return nil
}

// -- Mock doctor directory cache --

type mockDoctorCache struct {
	entries       map[string][]dto.UserResponse
	invalidations int
}

func newMockDoctorCache() *mockDoctorCache {
	return &mockDoctorCache{entries: make(map[string][]dto.UserResponse)}
}

func cacheKey(specialty, search string) string {
	return strings.ToLower(specialty) + ":" + strings.ToLower(search)
}

func (m *mockDoctorCache) GetSearch(_ context.Context, specialty, search string) ([]dto.UserResponse, bool) {
	doctors, ok := m.entries[cacheKey(specialty, search)]
	return doctors, ok
}

func (m *mockDoctorCache) SetSearch(_ context.Context, specialty, search string, doctors []dto.UserResponse) {
	m.entries[cacheKey(specialty, search)] = doctors
}

func (m *mockDoctorCache) Invalidate(_ context.Context) {
	m.invalidations++
	m.entries = make(map[string][]dto.UserResponse)
}
