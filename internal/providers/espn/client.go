package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"masters-league-service/internal/domain"
	"masters-league-service/internal/providers"
)

// Config controls how the client reaches the ESPN fantasy API. S2 and SWID
// are the session cookies required for private leagues.
type Config struct {
	BaseURL    string
	LeagueID   int
	Year       int
	S2         string
	SWID       string
	HTTPClient *http.Client
}

// Client fetches league data from the ESPN Fantasy v3 API and maps it to
// domain models.
type Client struct {
	baseURL    string
	leagueID   int
	year       int
	s2         string
	swid       string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   cfg.LeagueID,
		year:       cfg.Year,
		s2:         cfg.S2,
		swid:       cfg.SWID,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchLeagueName returns the league's display name from league settings.
func (c *Client) FetchLeagueName(ctx context.Context) (string, error) {
	var payload leagueResponse
	if err := c.fetchLeague(ctx, []string{viewSettings}, &payload); err != nil {
		return "", err
	}
	return payload.Settings.Name, nil
}

// FetchCurrentWeek returns ESPN's current matchup period, uncapped.
func (c *Client) FetchCurrentWeek(ctx context.Context) (int, error) {
	var payload leagueResponse
	if err := c.fetchLeague(ctx, []string{viewSettings}, &payload); err != nil {
		return 0, err
	}
	return payload.Status.CurrentMatchupPeriod, nil
}

// FetchTeams returns all teams with owner display names resolved from the
// league member list.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload leagueResponse
	if err := c.fetchLeague(ctx, []string{viewTeams}, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

// FetchBoxScores returns the head-to-head results for one week in ESPN's own
// matchup order. Playoff byes (matchups with a missing side) are skipped.
func (c *Client) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	var payload leagueResponse
	if err := c.fetchLeague(ctx, []string{viewMatchups}, &payload); err != nil {
		return nil, err
	}
	return mapBoxScores(payload, week), nil
}

func (c *Client) fetchLeague(ctx context.Context, views []string, payload *leagueResponse) error {
	req, err := c.buildRequest(ctx, views)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   "espn",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "espn rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("espn: decode league response: %w", err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, views []string) (*http.Request, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.year, c.leagueID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for _, view := range views {
		q.Add("view", view)
	}
	req.URL.RawQuery = q.Encode()

	if c.s2 != "" && c.swid != "" {
		req.AddCookie(&http.Cookie{Name: cookieS2, Value: c.s2})
		req.AddCookie(&http.Cookie{Name: cookieSWID, Value: c.swid})
	}

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
