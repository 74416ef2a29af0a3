package repository

import (
	"context"

	"room-booking-api/core/database"
)

const notificationsSchema = `
CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL,
	title VARCHAR(255) NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	type VARCHAR(50) NOT NULL,
	data JSONB NOT NULL DEFAULT '{}',
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_user_unread
	ON notifications (user_id, is_read, created_at DESC);
`

func InitSchema(ctx context.Context, db database.IDatabase) error {
	return db.ExecContext(ctx, notificationsSchema)
}
