package models

// MedicalRecord is a read-only entry of the patient's clinical history,
// served by the clinic backend.
type MedicalRecord struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Specialty  string `json:"specialty"`
	DoctorName string `json:"doctorName"`
	Diagnosis  string `json:"diagnosis"`
	Treatment  string `json:"treatment,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
