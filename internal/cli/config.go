package cli

import (
	"net/url"
	"os"
)

// activeTeam addresses whichever team the server has active
const activeTeam = "active"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Team      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("KOHLE_SERVER", "http://localhost:8080"),
		Output:    "text",
		Team:      getEnvOrDefault("KOHLE_TEAM", activeTeam),
	}
}

// TeamPath returns the API path of the selected team
func (c *Config) TeamPath() string {
	team := c.Team
	if team == "" {
		team = activeTeam
	}
	return "/api/v1/teams/" + url.PathEscape(team)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
