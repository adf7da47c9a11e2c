package entity

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty string // Case-insensitive substring match on specialization (ILIKE)
	Search    string // Case-insensitive substring match on name OR specialization (ILIKE)
}
