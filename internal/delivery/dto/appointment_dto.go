package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Doctor string `json:"doctor" validate:"required"`
	Date   string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time   string `json:"time" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID     `json:"id"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Reason    string        `json:"reason"`
	Status    string        `json:"status"`
	Patient   *UserResponse `json:"patient,omitempty"`
	Doctor    *UserResponse `json:"doctor,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
