package clinicapi

import (
	"errors"
	"strings"
)

// ErrorKind is a structured classification of a clinic backend rejection.
// The backend only reports natural-language messages, so classification
// happens once here; callers branch on the kind, never on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindReferralRequired
	KindNotFound
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindReferralRequired:
		return "referral_required"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// APIError is a domain rejection reported by the clinic backend
// (success=false envelope or an HTTP error status).
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// referralPhrases are the known phrasings of the "referral required"
// rejection across backend versions, matched case-insensitively.
var referralPhrases = []string{
	"derivación",
	"derivacion",
	"requiere",
	"require",
}

var notFoundPhrases = []string{
	"not found",
	"no encontrado",
	"no existe",
}

var validationPhrases = []string{
	"invalid",
	"inválid",
	"obligatorio",
}

// Classify maps a backend rejection message to an ErrorKind. Referral
// phrases are checked first since that class drives the bypass retry.
func Classify(message string) ErrorKind {
	lower := strings.ToLower(message)
	for _, p := range referralPhrases {
		if strings.Contains(lower, p) {
			return KindReferralRequired
		}
	}
	for _, p := range notFoundPhrases {
		if strings.Contains(lower, p) {
			return KindNotFound
		}
	}
	for _, p := range validationPhrases {
		if strings.Contains(lower, p) {
			return KindValidation
		}
	}
	return KindUnknown
}

// IsReferralRequired reports whether err is a referral-class rejection.
func IsReferralRequired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindReferralRequired
}

// IsNotFound reports whether err is a not-found rejection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}
