package youtube

import "testing"

func TestExtractVideoId(t *testing.T) {
	tests := []struct {
		url string
		id  string
	}{
		{"https://youtu.be/abc123", "abc123"},
		{"https://www.youtube.com/watch?v=abc123&x=1", "abc123"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"http://www.youtube.com/embed/abc123", "abc123"},
		{"youtube.com/watch?list=PL123&v=abc123", "abc123"},
		{"  https://youtu.be/abc123  ", "abc123"},
		{"https://vimeo.com/123456", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if id := ExtractVideoId(tt.url); id != tt.id {
			t.Errorf("ExtractVideoId(%q) = %q, want %q", tt.url, id, tt.id)
		}
	}
}

func TestWatchURL(t *testing.T) {
	if got := WatchURL("abc123"); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("WatchURL(abc123) = %q", got)
	}
}
