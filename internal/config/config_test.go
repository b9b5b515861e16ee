package config

import (
	"reflect"
	"testing"
)

func TestParseAllowedUsers(t *testing.T) {
	tests := []struct {
		s     string
		users []AllowedUser
	}{
		{"", nil},
		{"garbage", nil},
		{"id-only:email", nil},
		{
			"user-001:user@example.com:opensesame:User",
			[]AllowedUser{{"user-001", "user@example.com", "opensesame", "User"}},
		},
		{
			"a:a@example.com:pw1:A, b:b@example.com:pw2:B",
			[]AllowedUser{
				{"a", "a@example.com", "pw1", "A"},
				{"b", "b@example.com", "pw2", "B"},
			},
		},
		{
			"broken, a:a@example.com:pw1:A",
			[]AllowedUser{{"a", "a@example.com", "pw1", "A"}},
		},
	}
	for _, tt := range tests {
		if users := ParseAllowedUsers(tt.s); !reflect.DeepEqual(users, tt.users) {
			t.Errorf("ParseAllowedUsers(%q) = %+v, want %+v", tt.s, users, tt.users)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("PATH_PREFIXES", "/gateway, /v2")
	t.Setenv("ALLOWED_USERS", "user-001:user@example.com:opensesame:User")

	cfg := FromEnv()
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.YouTubeAPIKey != "test-key" {
		t.Errorf("YouTubeAPIKey = %q", cfg.YouTubeAPIKey)
	}
	if !reflect.DeepEqual(cfg.PathPrefixes, []string{"/gateway", "/v2"}) {
		t.Errorf("PathPrefixes = %+v", cfg.PathPrefixes)
	}
	if len(cfg.AllowedUsers) != 1 || cfg.AllowedUsers[0].Email != "user@example.com" {
		t.Errorf("AllowedUsers = %+v", cfg.AllowedUsers)
	}
	if cfg.JobsTable != "download_jobs" || cfg.FavoritesTable != "user_favorites" {
		t.Errorf("table defaults = %q, %q", cfg.JobsTable, cfg.FavoritesTable)
	}
}
