package config

import (
	"os"
	"strings"
)

// AllowedUser is one pre-registered identity accepted by the login check.
type AllowedUser struct {
	Id       string
	Email    string
	Password string
	Name     string
}

// Config carries everything the server needs injected: no handler reads
// the environment on its own.
type Config struct {
	Addr     string
	CertFile string
	KeyFile  string
	// YouTube Data API v3 key. An empty key is a configuration error
	// surfaced on the first provider call, not at startup.
	YouTubeAPIKey string
	// DynamoDB table names.
	JobsTable      string
	FavoritesTable string
	// Leading path prefixes stripped before route matching, so the same
	// routes work behind the edge-function gateway and bare.
	PathPrefixes []string
	AllowedUsers []AllowedUser
}

// FromEnv builds the configuration from environment variables.
func FromEnv() *Config {
	return &Config{
		Addr:           env("ADDR", ":8080"),
		CertFile:       env("CERT_FILE", ""),
		KeyFile:        env("CERT_KEY", ""),
		YouTubeAPIKey:  env("YOUTUBE_API_KEY", ""),
		JobsTable:      env("AWS_DB_JOBS_NAME", "download_jobs"),
		FavoritesTable: env("AWS_DB_FAVORITES_NAME", "user_favorites"),
		PathPrefixes:   splitList(env("PATH_PREFIXES", "/functions/v1/youtube-api,/api")),
		AllowedUsers:   ParseAllowedUsers(env("ALLOWED_USERS", "")),
	}
}

// ParseAllowedUsers parses the allow-list from its environment encoding:
// comma-separated "id:email:password:name" entries. Malformed entries are
// dropped.
func ParseAllowedUsers(s string) []AllowedUser {
	var users []AllowedUser
	for _, entry := range splitList(s) {
		fields := strings.SplitN(entry, ":", 4)
		if len(fields) != 4 {
			continue
		}
		users = append(users, AllowedUser{
			Id:       fields[0],
			Email:    fields[1],
			Password: fields[2],
			Name:     fields[3],
		})
	}
	return users
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Get the value of environment variables.
func env(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
