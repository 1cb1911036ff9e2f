package outboxRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"clinovia/models"
	"clinovia/utils"
)

type redisOutboxRepo struct {
	client *redis.Client
}

// NewRedisOutboxRepo returns an OutboxRepository backed by a Redis list per
// patient, which preserves insertion order.
func NewRedisOutboxRepo(client *redis.Client) OutboxRepository {
	return &redisOutboxRepo{client: client}
}

func pendingKey(patientID string) string {
	return fmt.Sprintf("pending:%s", patientID)
}

// Append pushes the record onto the tail of the patient's pending list.
func (r *redisOutboxRepo) Append(ctx context.Context, rec models.PendingAppointment) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal pending appointment: %w", err)
	}
	if err := r.client.RPush(ctx, pendingKey(rec.PatientID), data).Err(); err != nil {
		return fmt.Errorf("failed to store pending appointment: %w", err)
	}
	return nil
}

// ListAll returns every stored record for the patient in insertion order.
// Entries that no longer parse are skipped, not fatal.
func (r *redisOutboxRepo) ListAll(ctx context.Context, patientID string) ([]models.PendingAppointment, error) {
	raw, err := r.client.LRange(ctx, pendingKey(patientID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read pending appointments: %w", err)
	}

	records := make([]models.PendingAppointment, 0, len(raw))
	for _, item := range raw {
		var rec models.PendingAppointment
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			utils.GetLogger().Warn("skipping unreadable pending appointment entry",
				zap.String("patientID", patientID), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Remove deletes the record with the given local ID from the patient's list.
func (r *redisOutboxRepo) Remove(ctx context.Context, patientID, id string) error {
	raw, err := r.client.LRange(ctx, pendingKey(patientID), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read pending appointments: %w", err)
	}
	for _, item := range raw {
		var rec models.PendingAppointment
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		if rec.ID == id {
			if err := r.client.LRem(ctx, pendingKey(patientID), 1, item).Err(); err != nil {
				return fmt.Errorf("failed to remove pending appointment: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("pending appointment %s not found", id)
}
