package models

import "time"

// BookingStepCount is the number of steps in the booking wizard:
// specialty, doctor, date/time block, reason + confirmation.
const BookingStepCount = 4

// BookingDraft is the in-progress selection of the booking wizard.
// Fields are filled strictly left-to-right; clearing an earlier field
// resets every dependent later field.
type BookingDraft struct {
	SpecialtyID     string    `json:"specialtyId,omitempty"`
	DoctorID        string    `json:"doctorId,omitempty"`
	AppointmentDate string    `json:"appointmentDate,omitempty"` // "YYYY-MM-DD", no time component
	TimeBlock       TimeBlock `json:"timeBlock,omitempty"`
	Reason          string    `json:"reason,omitempty"`
}

// BookingSession holds wizard context between the first selection and the
// final confirmation. Stored as JSON in Redis with a TTL.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	PatientID string       `json:"patientId"`
	Step      int          `json:"step"` // always in [1, BookingStepCount]
	Draft     BookingDraft `json:"draft"`

	// Week availability cache for the selected doctor, keyed by date.
	WeekIndex    int                            `json:"weekIndex"`
	Availability map[string][]AvailabilityEntry `json:"availability,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
