package constants

import "time"

var FetchConfig = struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}{
	BaseURL:   "https://tryhackme.com",
	UserAgent: "thm-card-go/1.0 (+https://github.com/ritviksingh/thm-card-go)",
	Timeout:   15 * time.Second,
}

var CardDefaults = struct {
	Output           string
	Template         string
	Points           int
	Width            int
	Height           int
	MaxUsernameRunes int
}{
	Output:           "tryhackme_card.svg",
	Template:         "templates/card_template.svg",
	Points:           12,
	Width:            780,
	Height:           330,
	MaxUsernameRunes: 24,
}

// Sparkline canvas is sized independently of the card viewport; the template
// positions the polyline group inside the card.
var SparklineCanvas = struct {
	Width  int
	Height int
}{
	Width:  360,
	Height: 44,
}

var ProgressConfig = struct {
	MinCap int
}{
	MinCap: 10,
}
