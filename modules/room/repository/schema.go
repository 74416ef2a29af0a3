package repository

import (
	"context"

	"room-booking-api/core/database"
)

const roomsSchema = `
CREATE TABLE IF NOT EXISTS rooms (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL UNIQUE,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT,
	capacity    INTEGER NOT NULL CHECK (capacity > 0),
	price       NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
	amenities   TEXT[] NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func InitSchema(ctx context.Context, db database.IDatabase) error {
	return db.ExecContext(ctx, roomsSchema)
}
