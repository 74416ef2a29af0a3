package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Auth
const (
	AccessTokenTTL   = 30 * time.Minute
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Scheduling defaults. Slot times are quantized to SlotMinutes and must
// fall inside [DayStartHour, DayEndHour).
const (
	DefaultSlotMinutes  = 30
	DefaultDayStartHour = 8
	DefaultDayEndHour   = 20
	DefaultBookingRange = 21 * 24 * time.Hour // listing window: today + 3 weeks
)

// Idempotency
const (
	IdempotencyKeyTTL = 24 * time.Hour
)

const DefaultTimeout = 10 * time.Second
