package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// A row exists only for users with the doctor role, so specialization
// can never be attached to a patient account.
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
