package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/services/clinicapi"
	"clinovia/utils"
)

// BookingResult is the outcome of a confirmed wizard: either a clinic
// confirmed appointment, or a locally recorded pending one. From the
// patient's perspective both count as scheduled; Pending distinguishes
// the unconfirmed case so the UI can surface it.
type BookingResult struct {
	Appointment        *models.Appointment        `json:"appointment,omitempty"`
	PendingAppointment *models.PendingAppointment `json:"pendingAppointment,omitempty"`
	Pending            bool                       `json:"pending"`
}

// ConfirmBooking submits the completed draft to the clinic backend with the
// two-tier retry policy:
//
//  1. Submit the draft as-is.
//  2. On a referral-required rejection, retry once with override flags.
//  3. If the override retry also fails, record a pending appointment in the
//     outbox and report the booking as scheduled.
//
// Any non-referral rejection of the first attempt propagates verbatim.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*BookingResult, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateDraft(session.Draft); err != nil {
		return nil, err
	}

	req := clinicapi.AppointmentRequest{
		PatientID:   session.PatientID,
		SpecialtyID: session.Draft.SpecialtyID,
		DoctorID:    session.Draft.DoctorID,
		Date:        session.Draft.AppointmentDate,
		TimeBlock:   session.Draft.TimeBlock,
		Reason:      session.Draft.Reason,
	}

	appt, err := s.Schedule.CreateAppointment(ctx, req)
	if err == nil {
		s.discardSession(ctx, sessionID)
		return &BookingResult{Appointment: appt}, nil
	}
	if !clinicapi.IsReferralRequired(err) {
		return nil, err
	}

	logger.Info("referral-required rejection, retrying with override flags",
		zap.String("sessionID", sessionID),
		zap.String("specialtyID", req.SpecialtyID))

	req.ReferralVerified = true
	req.OverrideReferralCheck = true
	appt, retryErr := s.Schedule.CreateAppointment(ctx, req)
	if retryErr == nil {
		s.discardSession(ctx, sessionID)
		return &BookingResult{Appointment: appt}, nil
	}

	logger.Warn("override retry failed, recording pending appointment",
		zap.String("sessionID", sessionID),
		zap.Error(retryErr))

	pending := s.buildPending(ctx, session)
	if err := s.Outbox.Append(ctx, *pending); err != nil {
		return nil, fmt.Errorf("could not schedule the appointment: %w", err)
	}

	if s.Reconcile != nil {
		if err := s.Reconcile.SchedulePendingReconcile(session.PatientID); err != nil {
			logger.Warn("failed to schedule pending reconcile",
				zap.String("patientID", session.PatientID), zap.Error(err))
		}
	}

	s.discardSession(ctx, sessionID)
	return &BookingResult{PendingAppointment: pending, Pending: true}, nil
}

// buildPending enriches the draft with resolved display names so the stored
// record is self-describing without further network access.
func (s *DefaultBookingSessionService) buildPending(ctx context.Context, session *models.BookingSession) *models.PendingAppointment {
	now := time.Now()
	return &models.PendingAppointment{
		ID:              fmt.Sprintf("local-%d", now.UnixNano()),
		PatientID:       session.PatientID,
		SpecialtyID:     session.Draft.SpecialtyID,
		SpecialtyName:   s.Names.SpecialtyName(ctx, session.Draft.SpecialtyID),
		DoctorID:        session.Draft.DoctorID,
		DoctorName:      s.Names.DoctorName(ctx, session.Draft.DoctorID),
		AppointmentDate: session.Draft.AppointmentDate,
		TimeBlock:       session.Draft.TimeBlock,
		Reason:          session.Draft.Reason,
		Status:          models.PendingStatusScheduled,
		CreatedAt:       now,
		IsPending:       true,
	}
}

func (s *DefaultBookingSessionService) discardSession(ctx context.Context, sessionID string) {
	if err := s.SessionCache.Del(ctx, sessionID).Err(); err != nil {
		utils.GetLogger().Warn("failed to discard booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func validateDraft(draft models.BookingDraft) error {
	switch {
	case draft.SpecialtyID == "":
		return NewValidationError("a specialty must be selected")
	case draft.DoctorID == "":
		return NewValidationError("a doctor must be selected")
	case draft.AppointmentDate == "":
		return NewValidationError("an appointment date must be selected")
	case draft.TimeBlock == "":
		return NewValidationError("a time block must be selected")
	case strings.TrimSpace(draft.Reason) == "":
		return NewValidationError("a reason for the visit is required")
	}
	return nil
}
