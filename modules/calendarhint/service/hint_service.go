package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"room-booking-api/core/config"
	"room-booking-api/core/logger"
	"room-booking-api/modules/calendarhint/dto"

	"golang.org/x/oauth2/clientcredentials"
)

// HintService imports advisory event hints from an external calendar
// feed. The feed is best-effort: any failure degrades to an empty hint
// list, never to an error for the caller.
type HintService struct {
	feed   config.CalendarFeedConfig
	client *http.Client
}

type HintServiceInterface interface {
	FetchEvents(ctx context.Context, date time.Time) []dto.EventHint
}

func NewHintService(feed config.CalendarFeedConfig) HintServiceInterface {
	s := &HintService{feed: feed}
	s.client = s.buildClient()
	return s
}

func (s *HintService) buildClient() *http.Client {
	if s.feed.TokenURL == "" || s.feed.ClientID == "" {
		// Unauthenticated feed
		return &http.Client{Timeout: 30 * time.Second}
	}
	cc := clientcredentials.Config{
		ClientID:     s.feed.ClientID,
		ClientSecret: s.feed.ClientSecret,
		TokenURL:     s.feed.TokenURL,
	}
	client := cc.Client(context.Background())
	client.Timeout = 30 * time.Second
	return client
}

type feedEvent struct {
	Title            string   `json:"title"`
	Start            string   `json:"start"`
	End              string   `json:"end"`
	Location         *string  `json:"location"`
	ParticipantCount *int     `json:"participant_count"`
	Amenities        []string `json:"amenities"`
}

// FetchEvents pulls the feed for one day. Malformed events are skipped,
// transport failures logged and swallowed.
func (s *HintService) FetchEvents(ctx context.Context, date time.Time) []dto.EventHint {
	if s.feed.BaseURL == "" {
		return []dto.EventHint{}
	}

	day := date.Format("2006-01-02")
	feedURL := fmt.Sprintf("%s/events?%s", s.feed.BaseURL, url.Values{"date": {day}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		logger.Warn("HintService:FetchEvents:NewRequest", "error", err)
		return []dto.EventHint{}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("HintService:FetchEvents:Do", "error", err)
		return []dto.EventHint{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("HintService:FetchEvents:Status", "status", resp.StatusCode)
		return []dto.EventHint{}
	}

	var raw struct {
		Events []feedEvent `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		logger.Warn("HintService:FetchEvents:Decode", "error", err)
		return []dto.EventHint{}
	}

	hints := make([]dto.EventHint, 0, len(raw.Events))
	for _, ev := range raw.Events {
		start, errStart := time.Parse(time.RFC3339, ev.Start)
		end, errEnd := time.Parse(time.RFC3339, ev.End)
		if errStart != nil || errEnd != nil || !end.After(start) {
			logger.Warn("HintService:FetchEvents:SkipEvent", "title", ev.Title)
			continue
		}
		hints = append(hints, dto.EventHint{
			Title:                ev.Title,
			Date:                 start.Format("2006-01-02"),
			StartTime:            start.Format("15:04"),
			EndTime:              end.Format("15:04"),
			Location:             ev.Location,
			ParticipantCountHint: ev.ParticipantCount,
			AmenityHints:         ev.Amenities,
		})
	}

	logger.Info("HintService:FetchEvents:Done", "date", day, "count", len(hints))
	return hints
}
