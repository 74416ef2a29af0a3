package dto

// EventHint is an advisory calendar event pulled from an external feed.
// Hints never create, block, or modify bookings; they only inform the
// caller's choice of slot.
type EventHint struct {
	Title                string   `json:"title"`
	Date                 string   `json:"date"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	Location             *string  `json:"location,omitempty"`
	ParticipantCountHint *int     `json:"participant_count_hint,omitempty"`
	AmenityHints         []string `json:"amenity_hints,omitempty"`
}

type EventHintsResponse struct {
	Date   string      `json:"date"`
	Events []EventHint `json:"events"`
}
