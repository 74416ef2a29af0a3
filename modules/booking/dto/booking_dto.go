package dto

import (
	"time"

	"room-booking-api/modules/booking/entity"
)

// CreateBookingRequest is the body of POST /bookings. The idempotency
// key is read from the Idempotency-Key header by the controller.
type CreateBookingRequest struct {
	RoomID         string   `json:"room_id"`
	BookingDate    string   `json:"booking_date"` // "YYYY-MM-DD"
	StartTime      string   `json:"start_time"`   // "HH:MM"
	EndTime        string   `json:"end_time"`     // "HH:MM"
	ParticipantIDs []string `json:"participant_ids"`
	IdempotencyKey string   `json:"-"`
}

type RescheduleBookingRequest struct {
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type AvailabilityCheckRequest struct {
	RoomID      string `json:"room_id"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type AvailabilityCheckResponse struct {
	Available bool `json:"available"`
}

// ListBookingsRequest carries the optional query filters of the listing
// endpoints.
type ListBookingsRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Status    string `query:"status"`
}

type BookingResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	RoomID         string   `json:"room_id"`
	RequesterID    string   `json:"requester_id"`
	BookingDate    string   `json:"booking_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	ParticipantIDs []string `json:"participant_ids"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func ToBookingResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID.String(),
		Code:           b.Code,
		RoomID:         b.RoomID.String(),
		RequesterID:    b.RequesterID.String(),
		BookingDate:    b.BookingDate.Format(time.DateOnly),
		StartTime:      entity.FormatTimeOfDay(b.StartMin),
		EndTime:        entity.FormatTimeOfDay(b.EndMin),
		ParticipantIDs: b.Participants,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *ToBookingResponse(&bookings[i]))
	}
	return result
}
