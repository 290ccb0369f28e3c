package util

import "time"

const cardTimestampLayout = "2006-01-02 15:04 UTC"

// FormatCardTimestamp renders t in UTC using the layout the card footer shows.
func FormatCardTimestamp(t time.Time) string {
	return t.UTC().Format(cardTimestampLayout)
}
