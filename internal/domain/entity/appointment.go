package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	// AppointmentStatusCompleted is part of the data model but no
	// transition produces it yet.
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booking request between a patient and a doctor
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null" json:"date"`
	Time      string            `gorm:"type:varchar(20);not null" json:"time"`
	Reason    string            `gorm:"type:text" json:"reason"`
	Status    AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting a doctor decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// Approve changes the appointment status to scheduled
func (a *Appointment) Approve() {
	a.Status = AppointmentStatusScheduled
}

// Reject changes the appointment status to cancelled
func (a *Appointment) Reject() {
	a.Status = AppointmentStatusCancelled
}
