package config

const (
	envESPNBaseURL = "ESPN_BASE_URL"
	envESPNS2      = "ESPN_S2"
	envSWID        = "SWID"

	defaultESPNBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
)

// ESPNConfig controls how we talk to the ESPN fantasy API. S2 and SWID are
// the session cookies ESPN requires for private leagues; public leagues work
// without them.
type ESPNConfig struct {
	BaseURL string
	S2      string
	SWID    string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		S2:      envOrDefault(envESPNS2, ""),
		SWID:    envOrDefault(envSWID, ""),
	}
}
