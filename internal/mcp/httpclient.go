package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/daymark/internal/models"
	"github.com/claude/daymark/internal/storage"
)

// HTTPClient implements DataSource by calling the Daymark REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// authenticating every request with the API key.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) QueryWorkoutTemplates(ctx context.Context, _ int) ([]models.WorkoutTemplateRow, error) {
	body, err := c.get(ctx, "/api/v1/templates", nil)
	if err != nil {
		return nil, err
	}

	var templates []models.WorkoutTemplateRow
	if err := json.Unmarshal(body, &templates); err != nil {
		return nil, fmt.Errorf("httpclient: decode templates: %w", err)
	}
	return templates, nil
}

func (c *HTTPClient) QueryWorkoutLogs(ctx context.Context, start, end time.Time, _ int) ([]models.WorkoutLogRow, error) {
	body, err := c.get(ctx, "/api/v1/logs", timeParams(start, end))
	if err != nil {
		return nil, err
	}

	var logs []models.WorkoutLogRow
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("httpclient: decode logs: %w", err)
	}
	return logs, nil
}

// QueryRecentWorkoutLogs mirrors the storage layer's window: everything that
// could still contribute fatigue at the evaluation instant.
func (c *HTTPClient) QueryRecentWorkoutLogs(ctx context.Context, at time.Time, userID int) ([]models.WorkoutLogRow, error) {
	return c.QueryWorkoutLogs(ctx, at.AddDate(0, 0, -15), at.AddDate(0, 0, 1), userID)
}

func (c *HTTPClient) QueryHabits(ctx context.Context, _ int) ([]models.HabitRow, error) {
	body, err := c.get(ctx, "/api/v1/habits", nil)
	if err != nil {
		return nil, err
	}

	var habits []models.HabitRow
	if err := json.Unmarshal(body, &habits); err != nil {
		return nil, fmt.Errorf("httpclient: decode habits: %w", err)
	}
	return habits, nil
}

func (c *HTTPClient) QueryHabitCheckinDates(ctx context.Context, habitID int64, _ int, since time.Time) ([]time.Time, error) {
	params := url.Values{}
	params.Set("since", since.Format("2006-01-02"))

	body, err := c.get(ctx, fmt.Sprintf("/api/v1/habits/%d/checkins", habitID), params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode checkins: %w", err)
	}

	dates := make([]time.Time, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("httpclient: bad checkin date %q: %w", d, err)
		}
		dates = append(dates, t)
	}
	return dates, nil
}

func (c *HTTPClient) QueryStudySessions(ctx context.Context, start, end time.Time, _ int) ([]models.StudySessionRow, error) {
	body, err := c.get(ctx, "/api/v1/study/sessions", timeParams(start, end))
	if err != nil {
		return nil, err
	}

	var sessions []models.StudySessionRow
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("httpclient: decode study sessions: %w", err)
	}
	return sessions, nil
}

func (c *HTTPClient) GetStudyDailyTotals(ctx context.Context, start, end time.Time, _ int) ([]storage.StudyDayTotal, error) {
	body, err := c.get(ctx, "/api/v1/study/history", timeParams(start, end))
	if err != nil {
		return nil, err
	}

	var totals []storage.StudyDayTotal
	if err := json.Unmarshal(body, &totals); err != nil {
		return nil, fmt.Errorf("httpclient: decode study totals: %w", err)
	}
	return totals, nil
}
