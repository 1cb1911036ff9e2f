package models

import "time"

// Appointment represents a booking confirmed by the clinic backend.
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	SpecialtyID string    `json:"specialtyId"`
	DoctorID    string    `json:"doctorId"`
	Date        string    `json:"date"` // "YYYY-MM-DD"
	TimeBlock   TimeBlock `json:"timeBlock"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PendingAppointment is a booking the clinic backend would not accept
// synchronously. It is recorded in the local outbox, enriched with resolved
// display names so it is self-describing without further network access.
type PendingAppointment struct {
	ID              string    `json:"id"` // locally generated, timestamp-derived
	PatientID       string    `json:"patientId"`
	SpecialtyID     string    `json:"specialtyId"`
	SpecialtyName   string    `json:"specialtyName"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	AppointmentDate string    `json:"appointmentDate"`
	TimeBlock       TimeBlock `json:"timeBlock"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"` // always "SCHEDULED" by construction
	CreatedAt       time.Time `json:"createdAt"`
	IsPending       bool      `json:"isPending"` // marker distinguishing it from confirmed appointments
}

// PendingStatusScheduled is the only status a pending appointment carries.
const PendingStatusScheduled = "SCHEDULED"
