package handlers

// HandlerBundle groups the portal's handlers for route registration.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Profile *ProfileHandler
	Records *RecordsHandler
	Payment *PaymentHandler
}
