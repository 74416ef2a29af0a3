package repository

import (
	"context"

	"room-booking-api/core/database"
)

const bookingsSchema = `
CREATE TABLE IF NOT EXISTS bookings (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	code            TEXT NOT NULL UNIQUE,
	room_id         UUID NOT NULL REFERENCES rooms(id),
	requester_id    UUID NOT NULL,
	booking_date    DATE NOT NULL,
	start_min       SMALLINT NOT NULL CHECK (start_min >= 0 AND start_min < 1440),
	end_min         SMALLINT NOT NULL CHECK (end_min > start_min AND end_min <= 1440),
	participants    TEXT[] NOT NULL DEFAULT '{}',
	status          TEXT NOT NULL DEFAULT 'upcoming'
	                CHECK (status IN ('upcoming', 'completed', 'cancelled')),
	idempotency_key TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bookings_room_date
	ON bookings (room_id, booking_date, start_min);

CREATE INDEX IF NOT EXISTS idx_bookings_requester
	ON bookings (requester_id, booking_date);

CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_idempotency_key
	ON bookings (idempotency_key) WHERE idempotency_key IS NOT NULL;
`

func InitSchema(ctx context.Context, db database.IDatabase) error {
	return db.ExecContext(ctx, bookingsSchema)
}
