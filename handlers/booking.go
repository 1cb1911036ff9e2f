package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinovia/middleware"
	"clinovia/models"
	"clinovia/services/booking"
	"clinovia/services/clinicapi"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	svc    booking.BookingSessionService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// selectionInput carries any subset of wizard selections. Fields are
// applied in wizard order so a single PUT can set several at once.
type selectionInput struct {
	SpecialtyID string  `json:"specialtyId"`
	DoctorID    string  `json:"doctorId"`
	Date        string  `json:"date"`
	TimeBlock   string  `json:"timeBlock"`
	Reason      *string `json:"reason"`
}

// StartSession creates a new wizard session for the authenticated patient.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.svc.StartSession(c.Request.Context(), middleware.PatientID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// UpdateSelection applies the provided selections in wizard order.
func (h *BookingHandler) UpdateSelection(c *gin.Context) {
	var input selectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sessionID := c.Param("sessionID")

	var (
		session *models.BookingSession
		err     error
	)
	if input.SpecialtyID != "" {
		if session, err = h.svc.SelectSpecialty(ctx, sessionID, input.SpecialtyID); err != nil {
			h.fail(c, err)
			return
		}
	}
	if input.DoctorID != "" {
		if session, err = h.svc.SelectDoctor(ctx, sessionID, input.DoctorID); err != nil {
			h.fail(c, err)
			return
		}
	}
	if input.Date != "" {
		if session, err = h.svc.SetDate(ctx, sessionID, input.Date); err != nil {
			h.fail(c, err)
			return
		}
	}
	if input.TimeBlock != "" {
		if session, err = h.svc.SelectTimeBlock(ctx, sessionID, models.TimeBlock(input.TimeBlock)); err != nil {
			h.fail(c, err)
			return
		}
	}
	if input.Reason != nil {
		if session, err = h.svc.SetReason(ctx, sessionID, *input.Reason); err != nil {
			h.fail(c, err)
			return
		}
	}
	if session == nil {
		if session, err = h.svc.GetSession(ctx, sessionID); err != nil {
			h.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// WeekAvailability fetches the doctor's availability for the requested week.
func (h *BookingHandler) WeekAvailability(c *gin.Context) {
	weekIndex := 0
	if raw := c.Query("weekIndex"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekIndex must be an integer"})
			return
		}
		weekIndex = parsed
	}

	session, err := h.svc.WeekAvailability(c.Request.Context(), c.Param("sessionID"), weekIndex)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":       session.SessionID,
		"weekIndex":       session.WeekIndex,
		"availability":    session.Availability,
		"selectableDates": booking.SelectableDates(session, time.Now()),
	})
}

// Advance moves the wizard forward after validating the current step.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.svc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Retreat moves the wizard one step back.
func (h *BookingHandler) Retreat(c *gin.Context) {
	session, err := h.svc.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Confirm submits the completed draft to the clinic backend.
func (h *BookingHandler) Confirm(c *gin.Context) {
	result, err := h.svc.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Cancel discards the wizard session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ListAppointments returns confirmed plus locally pending appointments.
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	overview, err := h.svc.Appointments(c.Request.Context(), middleware.PatientID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ListSpecialties returns the clinic's specialty catalogue.
func (h *BookingHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.svc.ListSpecialties(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// ListDoctors returns the doctors for one specialty.
func (h *BookingHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context(), c.Param("specialtyID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func sessionResponse(session *models.BookingSession) gin.H {
	return gin.H{
		"sessionId": session.SessionID,
		"step":      session.Step,
		"draft":     session.Draft,
		"weekIndex": session.WeekIndex,
	}
}

// fail maps service errors to HTTP statuses: validation failures are 400,
// missing sessions 404, clinic rejections carry the backend message.
func (h *BookingHandler) fail(c *gin.Context, err error) {
	switch {
	case booking.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	default:
		var apiErr *clinicapi.APIError
		if errors.As(err, &apiErr) {
			status := http.StatusBadGateway
			if apiErr.Kind == clinicapi.KindNotFound {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": apiErr.Message})
			return
		}
		h.logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
