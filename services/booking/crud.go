package booking

import (
	"context"

	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

// AppointmentOverview is everything the portal shows on the appointments
// page: clinic-confirmed bookings plus locally pending ones.
type AppointmentOverview struct {
	Confirmed []models.Appointment        `json:"confirmed"`
	Pending   []models.PendingAppointment `json:"pending"`
}

// Appointments merges the clinic's confirmed appointments with the local
// pending outbox. An upstream failure degrades to an empty confirmed list
// so the pending records are still visible.
func (s *DefaultBookingSessionService) Appointments(ctx context.Context, patientID string) (*AppointmentOverview, error) {
	confirmed, err := s.Schedule.PatientAppointments(ctx, patientID)
	if err != nil {
		utils.GetLogger().Warn("failed to fetch confirmed appointments",
			zap.String("patientID", patientID), zap.Error(err))
		confirmed = nil
	}

	pending, err := s.Outbox.ListAll(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &AppointmentOverview{
		Confirmed: confirmed,
		Pending:   pending,
	}, nil
}
