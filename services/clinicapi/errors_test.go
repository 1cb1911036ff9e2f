package clinicapi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    ErrorKind
	}{
		{"Esta especialidad requiere derivación médica", KindReferralRequired},
		{"Se requiere una derivacion previa", KindReferralRequired},
		{"A referral is required for this specialty", KindReferralRequired},
		{"REQUIERE AUTORIZACION", KindReferralRequired},
		{"Doctor not found", KindNotFound},
		{"Paciente no encontrado", KindNotFound},
		{"El turno no existe", KindNotFound},
		{"Invalid time block", KindValidation},
		{"Fecha inválida", KindValidation},
		{"El motivo es obligatorio", KindValidation},
		{"internal server error", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.message), "message %q", tt.message)
	}
}

func TestClassifyReferralWinsOverOtherClasses(t *testing.T) {
	// A message matching both classes is referral: that class drives the
	// bypass retry and must not be shadowed.
	got := Classify("invalid request: requiere derivación")
	assert.Equal(t, KindReferralRequired, got)
}

func TestIsReferralRequired(t *testing.T) {
	referral := &APIError{Kind: KindReferralRequired, Message: "requiere derivación"}
	assert.True(t, IsReferralRequired(referral))
	assert.True(t, IsReferralRequired(fmt.Errorf("create failed: %w", referral)))

	assert.False(t, IsReferralRequired(&APIError{Kind: KindValidation, Message: "invalid"}))
	assert.False(t, IsReferralRequired(fmt.Errorf("plain error")))
	assert.False(t, IsReferralRequired(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Kind: KindNotFound, Message: "not found"}))
	assert.False(t, IsNotFound(&APIError{Kind: KindUnknown, Message: "boom"}))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "referral_required", KindReferralRequired.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
