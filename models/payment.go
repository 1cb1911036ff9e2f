package models

import "time"

// PaymentPreference is a Mercado Pago checkout preference created for an
// appointment. The portal only obtains and passes through the identifier;
// the hosted widget renders the checkout itself.
type PaymentPreference struct {
	PreferenceID  string    `json:"preferenceId"`
	InitPoint     string    `json:"initPoint,omitempty"`
	AppointmentID string    `json:"appointmentId,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}
