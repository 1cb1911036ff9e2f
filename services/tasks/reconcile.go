package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypePendingReconcile = "pending:reconcile"

// ReconcilePayload identifies whose pending outbox to replay.
type ReconcilePayload struct {
	PatientID string `json:"patientId"`
}

// NewReconcileTask builds the asynq task that replays a patient's pending
// appointments after the given delay.
func NewReconcileTask(patientID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReconcilePayload{PatientID: patientID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePendingReconcile, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(5)}
	return task, opts, nil
}

// AsynqReconcileScheduler enqueues reconcile tasks. It satisfies
// booking.ReconcileScheduler.
type AsynqReconcileScheduler struct {
	client *asynq.Client
	delay  time.Duration
}

func NewAsynqReconcileScheduler(client *asynq.Client, delay time.Duration) *AsynqReconcileScheduler {
	if delay <= 0 {
		delay = time.Hour
	}
	return &AsynqReconcileScheduler{client: client, delay: delay}
}

func (s *AsynqReconcileScheduler) SchedulePendingReconcile(patientID string) error {
	task, opts, err := NewReconcileTask(patientID, s.delay)
	if err != nil {
		return fmt.Errorf("failed to build reconcile task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}
