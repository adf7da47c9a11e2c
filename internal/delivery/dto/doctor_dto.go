package dto

// SearchDoctorsRequest carries the optional directory filters taken
// from query parameters.
type SearchDoctorsRequest struct {
	Specialty string `json:"specialty"`
	Search    string `json:"search"`
}

type DoctorListResponse struct {
	Doctors []UserResponse `json:"doctors"`
	Total   int            `json:"total"`
}
