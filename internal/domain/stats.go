package domain

// ProfileStats holds the raw values pulled from a public TryHackMe profile
// page. Extraction is best-effort: any field the page does not expose stays
// at its zero value.
type ProfileStats struct {
	Username string
	Rank     int
	Badges   int
	Rooms    int
	Streak   int
}

// SparkPoint is one sparkline vertex in pixel space.
type SparkPoint struct {
	X int
	Y int
}

// CardContext carries every value the card template consumes, already
// formatted and escaped for SVG.
type CardContext struct {
	Username      string
	RankDisplay   string
	BadgesDisplay string
	RoomsDisplay  string
	StreakDisplay string
	TotalRooms    int
	SparkPoints   string
	GeneratedAt   string
	CardW         int
	CardH         int
	ProgressPct   int
}
