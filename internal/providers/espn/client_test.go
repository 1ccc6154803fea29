package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"masters-league-service/internal/providers"
)

const leagueFixture = `{
	"id": 123456,
	"settings": {"name": "Master's League", "size": 10},
	"status": {"currentMatchupPeriod": 4, "isActive": true},
	"teams": [
		{"id": 1, "abbrev": "ALF", "name": "Alpha Squad", "owners": ["{GUID-1}"]},
		{"id": 2, "abbrev": "BRV", "location": "Bravo", "nickname": "Bears", "owners": ["{GUID-2}"]}
	],
	"members": [
		{"id": "{GUID-1}", "displayName": "pat"},
		{"id": "{GUID-2}", "firstName": "Sam", "lastName": "Jones"}
	],
	"schedule": [
		{"id": 1, "matchupPeriodId": 1, "home": {"teamId": 1, "totalPoints": 101.5}, "away": {"teamId": 2, "totalPoints": 96.25}},
		{"id": 2, "matchupPeriodId": 2, "home": {"teamId": 2, "totalPoints": 88}, "away": {"teamId": 1, "totalPoints": 90}},
		{"id": 3, "matchupPeriodId": 2, "home": {"teamId": 3, "totalPoints": 70}, "away": {"teamId": 0}}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:    srv.URL,
		LeagueID:   123456,
		Year:       2025,
		HTTPClient: srv.Client(),
	})
	return client, srv
}

func serveFixture(t *testing.T, wantView string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2025/segments/0/leagues/123456" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if wantView != "" {
			found := false
			for _, v := range r.URL.Query()["view"] {
				if v == wantView {
					found = true
				}
			}
			if !found {
				t.Errorf("expected view %q in query %v", wantView, r.URL.Query())
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(leagueFixture))
	}
}

func TestFetchLeagueName(t *testing.T) {
	client, _ := newTestClient(t, serveFixture(t, viewSettings))

	name, err := client.FetchLeagueName(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Master's League" {
		t.Fatalf("unexpected name %q", name)
	}
}

func TestFetchCurrentWeek(t *testing.T) {
	client, _ := newTestClient(t, serveFixture(t, viewSettings))

	week, err := client.FetchCurrentWeek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week != 4 {
		t.Fatalf("expected week 4, got %d", week)
	}
}

func TestFetchTeams(t *testing.T) {
	client, _ := newTestClient(t, serveFixture(t, viewTeams))

	teams, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	if teams[0].Name != "Alpha Squad" || teams[0].Owner != "pat" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	// Legacy location/nickname split and first/last name fallback.
	if teams[1].Name != "Bravo Bears" || teams[1].Owner != "Sam Jones" {
		t.Fatalf("unexpected second team: %+v", teams[1])
	}
}

func TestFetchBoxScoresFiltersWeekAndByes(t *testing.T) {
	client, _ := newTestClient(t, serveFixture(t, viewMatchups))

	boxes, err := client.FetchBoxScores(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Week 2 has one real matchup and one bye (away teamId 0).
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box score, got %d", len(boxes))
	}
	box := boxes[0]
	if box.HomeID != 2 || box.AwayID != 1 || box.HomeScore != 88 || box.AwayScore != 90 {
		t.Fatalf("unexpected box score: %+v", box)
	}
}

func TestClientSendsCookiesWhenConfigured(t *testing.T) {
	var gotS2, gotSWID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(cookieS2); err == nil {
			gotS2 = c.Value
		}
		if c, err := r.Cookie(cookieSWID); err == nil {
			gotSWID = c.Value
		}
		_, _ = w.Write([]byte(leagueFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:    srv.URL,
		LeagueID:   123456,
		Year:       2025,
		S2:         "secret-s2",
		SWID:       "{swid-guid}",
		HTTPClient: srv.Client(),
	})

	if _, err := client.FetchLeagueName(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotS2 != "secret-s2" || gotSWID != "{swid-guid}" {
		t.Fatalf("cookies not sent: s2=%q swid=%q", gotS2, gotSWID)
	}
}

func TestClientOmitsCookiesWhenIncomplete(t *testing.T) {
	var cookieCount int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieCount = len(r.Cookies())
		_, _ = w.Write([]byte(leagueFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:    srv.URL,
		LeagueID:   123456,
		Year:       2025,
		S2:         "only-s2",
		HTTPClient: srv.Client(),
	})

	if _, err := client.FetchLeagueName(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cookieCount != 0 {
		t.Fatalf("expected no cookies with incomplete credentials, got %d", cookieCount)
	}
}

func TestClientRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FetchCurrentWeek(context.Background())

	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", rlErr.StatusCode)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected Retry-After 30s, got %v", rlErr.RetryAfter)
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("private league"))
	})

	_, err := client.FetchTeams(context.Background())
	if err == nil {
		t.Fatalf("expected error for 401")
	}
	var rlErr *providers.RateLimitError
	if errors.As(err, &rlErr) {
		t.Fatalf("401 should not map to a rate limit error")
	}
}

func TestClientMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	if _, err := client.FetchLeagueName(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Second},
		{" 5 ", 5 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.raw); got != tt.want {
			t.Fatalf("parseRetryAfter(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
