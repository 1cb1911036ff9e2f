package clinicapi

import (
	"context"
	"fmt"
	"net/url"

	"clinovia/models"
)

// AppointmentRequest is the payload for creating an appointment on the
// clinic backend. The override flags signal that the portal has already
// determined no referral is needed (the bypass retry of the submit flow).
type AppointmentRequest struct {
	PatientID             string           `json:"patientId"`
	SpecialtyID           string           `json:"specialtyId"`
	DoctorID              string           `json:"doctorId"`
	Date                  string           `json:"date"`
	TimeBlock             models.TimeBlock `json:"timeBlock"`
	Reason                string           `json:"reason"`
	ReferralVerified      bool             `json:"referralVerified,omitempty"`
	OverrideReferralCheck bool             `json:"overrideReferralCheck,omitempty"`
}

// CreateAppointment posts a booking to the clinic backend. A domain
// rejection comes back as an *APIError with its classified kind.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.post(ctx, "/appointments", req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// PatientAppointments returns the confirmed appointments the clinic holds
// for a patient.
func (c *Client) PatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.get(ctx, "/patients/"+url.PathEscape(patientID)+"/appointments", &appts); err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appts, nil
}
