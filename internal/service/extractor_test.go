package service

import (
	"testing"

	"go.uber.org/zap"
)

func newTestExtractor() *StatsExtractor {
	return NewStatsExtractor(zap.NewNop())
}

func TestExtractEmptyDocument(t *testing.T) {
	stats := newTestExtractor().Extract("", "alice")

	if stats.Username != "alice" {
		t.Errorf("Username = %q; expected %q", stats.Username, "alice")
	}
	if stats.Rank != 0 || stats.Badges != 0 || stats.Rooms != 0 || stats.Streak != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

func TestExtractNoMarkers(t *testing.T) {
	html := `<html><body><h2>Nothing of interest</h2><p>lorem ipsum</p></body></html>`
	stats := newTestExtractor().Extract(html, "bob")

	if stats.Username != "bob" {
		t.Errorf("Username = %q; expected fallback to input", stats.Username)
	}
	if stats.Rank != 0 || stats.Badges != 0 || stats.Rooms != 0 || stats.Streak != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

func TestExtractLabeledStats(t *testing.T) {
	html := `<div>Rank #1,234</div>
<div>Badges <span>17</span></div>
<div>Completed rooms: 42</div>
<div>Streak 9 days</div>`

	stats := newTestExtractor().Extract(html, "alice")

	if stats.Rank != 1234 {
		t.Errorf("Rank = %d; expected 1234", stats.Rank)
	}
	if stats.Badges != 17 {
		t.Errorf("Badges = %d; expected 17", stats.Badges)
	}
	if stats.Rooms != 42 {
		t.Errorf("Rooms = %d; expected 42", stats.Rooms)
	}
	if stats.Streak != 9 {
		t.Errorf("Streak = %d; expected 9", stats.Streak)
	}
}

func TestExtractRankLayoutFallback(t *testing.T) {
	// Value element preceding its label element, no inline "Rank NNN" text.
	html := `<div class="stat">
<div>54321</div>
<div class="label">Rank</div>
</div>`

	stats := newTestExtractor().Extract(html, "alice")
	if stats.Rank != 54321 {
		t.Errorf("Rank = %d; expected 54321 via layout fallback", stats.Rank)
	}
}

func TestExtractRoomsFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{"full label", `Completed rooms <b>120</b>`, 120},
		{"generic completed", `Completed <b>55</b> challenges`, 55},
		{"colon form", `Completed: 7`, 7},
	}

	for _, test := range tests {
		stats := newTestExtractor().Extract(test.html, "alice")
		if stats.Rooms != test.expected {
			t.Errorf("%s: Rooms = %d; expected %d", test.name, stats.Rooms, test.expected)
		}
	}
}

func TestExtractBadgesLooseFallback(t *testing.T) {
	html := `<p>earned a badge (3 total)</p>`
	stats := newTestExtractor().Extract(html, "alice")
	if stats.Badges != 3 {
		t.Errorf("Badges = %d; expected 3 via loose fallback", stats.Badges)
	}
}

func TestExtractUsernameFromHeader(t *testing.T) {
	html := `<html><body>
<div class="profile-header"><h1>  @carol  </h1></div>
<a href="/p/ignored-link">profile</a>
</body></html>`

	stats := newTestExtractor().Extract(html, "alice")
	if stats.Username != "carol" {
		t.Errorf("Username = %q; expected header value %q", stats.Username, "carol")
	}
}

func TestExtractUsernameFromProfilePath(t *testing.T) {
	html := `<a href="/p/dave-123">view profile</a>`
	stats := newTestExtractor().Extract(html, "alice")
	if stats.Username != "dave-123" {
		t.Errorf("Username = %q; expected %q from /p/ path", stats.Username, "dave-123")
	}
}

func TestActivityDates(t *testing.T) {
	html := `joined 2023-01-15, active 2024-06-01 and 2024-06-02`
	if got := newTestExtractor().ActivityDates(html); got != 3 {
		t.Errorf("ActivityDates = %d; expected 3", got)
	}
	if got := newTestExtractor().ActivityDates(""); got != 0 {
		t.Errorf("ActivityDates(empty) = %d; expected 0", got)
	}
}
