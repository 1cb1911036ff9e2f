package models

// Specialty is a medical specialty offered by the clinic.
type Specialty struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	RequiresReferral bool   `json:"requiresReferral,omitempty"`
}

// Doctor is a clinic doctor attached to a specialty.
type Doctor struct {
	ID            string `json:"id"`
	SpecialtyID   string `json:"specialtyId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
}

// DisplayName returns the doctor's human-readable name.
func (d Doctor) DisplayName() string {
	if d.FirstName == "" {
		return d.LastName
	}
	return d.FirstName + " " + d.LastName
}
