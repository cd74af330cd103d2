package repository

import (
	"context"
	"time"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, 'queued', $5)`

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createNotificationJobSQL, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

const updateNotificationJobStatusSQL = `
UPDATE notification_jobs SET status = $2, last_error = $3 WHERE id = $1`

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	_, err := tx.Exec(ctx, updateNotificationJobStatusSQL, jobID, status, lastError)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
