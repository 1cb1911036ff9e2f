package outboxRepo

import (
	"context"

	"clinovia/models"
)

// OutboxRepository is the durable, append-only record of bookings the
// clinic backend has not yet accepted. Remove exists as the reconcile
// extension point; nothing calls it unless reconciliation is enabled.
type OutboxRepository interface {
	Append(ctx context.Context, rec models.PendingAppointment) error
	ListAll(ctx context.Context, patientID string) ([]models.PendingAppointment, error)
	Remove(ctx context.Context, patientID, id string) error
}
