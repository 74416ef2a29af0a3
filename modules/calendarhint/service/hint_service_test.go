package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"room-booking-api/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"events": [
				{
					"title": "Quarterly review",
					"start": "2026-03-10T09:00:00Z",
					"end": "2026-03-10T10:30:00Z",
					"location": "HQ",
					"participant_count": 6,
					"amenities": ["projector"]
				},
				{
					"title": "Broken event",
					"start": "not-a-time",
					"end": "2026-03-10T11:00:00Z"
				},
				{
					"title": "Ends before start",
					"start": "2026-03-10T12:00:00Z",
					"end": "2026-03-10T11:00:00Z"
				}
			]
		}`))
	}))
	defer ts.Close()

	svc := NewHintService(config.CalendarFeedConfig{BaseURL: ts.URL})
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	hints := svc.FetchEvents(context.Background(), day)
	require.Len(t, hints, 1, "malformed events are dropped")

	hint := hints[0]
	assert.Equal(t, "Quarterly review", hint.Title)
	assert.Equal(t, "2026-03-10", hint.Date)
	assert.Equal(t, "09:00", hint.StartTime)
	assert.Equal(t, "10:30", hint.EndTime)
	require.NotNil(t, hint.Location)
	assert.Equal(t, "HQ", *hint.Location)
	require.NotNil(t, hint.ParticipantCountHint)
	assert.Equal(t, 6, *hint.ParticipantCountHint)
	assert.Equal(t, []string{"projector"}, hint.AmenityHints)
}

func TestFetchEventsDegradesToEmpty(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// No feed configured.
	svc := NewHintService(config.CalendarFeedConfig{})
	assert.Empty(t, svc.FetchEvents(context.Background(), day))

	// Feed erroring.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	svc = NewHintService(config.CalendarFeedConfig{BaseURL: ts.URL})
	assert.Empty(t, svc.FetchEvents(context.Background(), day))

	// Feed unreachable.
	svc = NewHintService(config.CalendarFeedConfig{BaseURL: "http://127.0.0.1:1"})
	assert.Empty(t, svc.FetchEvents(context.Background(), day))
}
