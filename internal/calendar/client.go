package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/daymark/internal/config"
	"github.com/claude/daymark/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API for the study calendar.
type Client struct {
	svc        *gcal.Service
	calendarID string
	cache      *Cache
	log        *slog.Logger
}

// NewClient authenticates against Google Calendar using an OAuth client
// secret file and a previously-obtained user token. Obtaining the initial
// token is an offline, one-time browser flow; the server only refreshes it.
func NewClient(ctx context.Context, cfg config.CalendarConfig, log *slog.Logger) (*Client, error) {
	secret, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading calendar credentials: %w", err)
	}
	oauthCfg, err := google.ConfigFromJSON(secret, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar credentials: %w", err)
	}

	tok, err := readToken(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("reading calendar token: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	var cache *Cache
	if cfg.CacheDir != "" {
		cache, err = OpenCache(cfg.CacheDir)
		if err != nil {
			// The cache is an optimization; run without it.
			log.Warn("calendar cache unavailable", "error", err)
			cache = nil
		}
	}

	return &Client{svc: svc, calendarID: cfg.StudyCalendarID, cache: cache, log: log}, nil
}

func readToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	return tok, json.NewDecoder(f).Decode(tok)
}

// Close releases the local event cache.
func (c *Client) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}

// ListDayEvents fetches the study calendar's events for the day containing
// t. Past days are served from the local cache when possible: their events
// no longer change, today's might.
func (c *Client) ListDayEvents(ctx context.Context, t time.Time) ([]*gcal.Event, error) {
	start, end := DayBounds(t)
	day := start.Format("2006-01-02")

	isToday := start.Equal(startOfDay(time.Now().In(t.Location())))
	if c.cache != nil && !isToday {
		if events, ok, err := c.cache.Load(c.calendarID, day); err == nil && ok {
			return events, nil
		}
	}

	result, err := c.svc.Events.List(c.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", day, err)
	}

	if c.cache != nil && !isToday {
		if err := c.cache.Store(c.calendarID, day, result.Items); err != nil {
			c.log.Warn("caching events failed", "day", day, "error", err)
		}
	}
	return result.Items, nil
}

// StudyDay fetches today's study events and tallies scheduled and completed
// hours at the evaluation instant now.
func (c *Client) StudyDay(ctx context.Context, now time.Time) (*DaySummary, error) {
	events, err := c.ListDayEvents(ctx, now)
	if err != nil {
		return nil, err
	}
	scheduled, completed := TallyHours(events, now)
	return &DaySummary{
		Date:           now.Format("2006-01-02"),
		Events:         len(events),
		ScheduledHours: scheduled,
		CompletedHours: completed,
	}, nil
}

// DeleteDayPlan removes every event on the study calendar for the day
// containing t and returns how many were deleted. Used to wipe today's
// generated study plan before regenerating it.
func (c *Client) DeleteDayPlan(ctx context.Context, t time.Time) (int, error) {
	events, err := c.ListDayEvents(ctx, t)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, ev := range events {
		if err := c.svc.Events.Delete(c.calendarID, ev.Id).Context(ctx).Do(); err != nil {
			return deleted, fmt.Errorf("deleting event %s: %w", ev.Id, err)
		}
		deleted++
		c.log.Info("deleted study event", "summary", ev.Summary, "id", ev.Id)
	}
	return deleted, nil
}

// Sessions converts timed events into study session rows for persistence.
// All-day and malformed events are skipped, matching TallyHours.
func Sessions(events []*gcal.Event, userID int) []models.StudySessionRow {
	var rows []models.StudySessionRow
	for _, ev := range events {
		start, okStart := eventTime(ev.Start)
		end, okEnd := eventTime(ev.End)
		if !okStart || !okEnd || !end.After(start) {
			continue
		}
		rows = append(rows, models.StudySessionRow{
			UserID:    userID,
			EventID:   ev.Id,
			Summary:   ev.Summary,
			StartTime: start,
			EndTime:   end,
			Hours:     end.Sub(start).Hours(),
		})
	}
	return rows
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
