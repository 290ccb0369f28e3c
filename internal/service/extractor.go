package service

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/domain"
	"github.com/ritviksingh/thm-card-go/internal/util"
)

// Patterns run against raw markup rather than a parsed DOM because the
// profile page renders most numbers from client-side scripts; the labels
// and values survive in the payload even when the DOM structure changes.
var (
	reRankTight   = regexp.MustCompile(`(?i)Rank[^0-9]{0,40}([0-9,]{1,9})`)
	reRankLayout  = regexp.MustCompile(`(?is)>(\d{1,7})<\s*/div>\s*<\s*div[^>]*>\s*Rank`)
	reBadgesTight = regexp.MustCompile(`(?i)Badges[^0-9]{0,40}([0-9]{1,4})`)
	reBadgesLoose = regexp.MustCompile(`(?i)badges?[^0-9]{0,40}([0-9]{1,4})`)
	reRoomsLabel  = regexp.MustCompile(`(?i)Completed\s*rooms[^0-9]{0,50}([0-9,]{1,6})`)
	reRoomsLoose  = regexp.MustCompile(`(?i)Completed[^0-9]{0,40}([0-9,]{1,6})`)
	reRoomsColon  = regexp.MustCompile(`(?i)Completed:\s*([0-9,]{1,6})`)
	reStreak      = regexp.MustCompile(`(?i)Streak[^0-9]{0,30}([0-9]{1,4})`)
	reProfilePath = regexp.MustCompile(`/p/([A-Za-z0-9\-_]+)`)
	reISODate     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// statRule is one ordered group of extraction attempts for a numeric field.
// The first pattern whose capture group matches wins; no match leaves the
// field at zero.
type statRule struct {
	field    string
	patterns []*regexp.Regexp
	assign   func(*domain.ProfileStats, int)
}

var statRules = []statRule{
	{
		field:    "rank",
		patterns: []*regexp.Regexp{reRankTight, reRankLayout},
		assign:   func(s *domain.ProfileStats, v int) { s.Rank = v },
	},
	{
		field:    "badges",
		patterns: []*regexp.Regexp{reBadgesTight, reBadgesLoose},
		assign:   func(s *domain.ProfileStats, v int) { s.Badges = v },
	},
	{
		field:    "rooms",
		patterns: []*regexp.Regexp{reRoomsLabel, reRoomsLoose, reRoomsColon},
		assign:   func(s *domain.ProfileStats, v int) { s.Rooms = v },
	},
	{
		field:    "streak",
		patterns: []*regexp.Regexp{reStreak},
		assign:   func(s *domain.ProfileStats, v int) { s.Streak = v },
	},
}

// Selectors tried, in order, for the profile header username. The page
// markup shifts between deploys, so several generations are listed.
var usernameSelectors = []string{
	".profile-header .profile-username",
	".profile-header h1",
	"[data-testid='username']",
	"header h1",
}

// StatsExtractor pulls ProfileStats out of uncontrolled profile markup.
// Every lookup is fail-open: a document with no recognizable markers yields
// all-zero stats and the input username.
type StatsExtractor struct {
	logger *zap.Logger
}

func NewStatsExtractor(logger *zap.Logger) *StatsExtractor {
	return &StatsExtractor{logger: logger}
}

// Extract never fails. html may be empty (fetch failure).
func (e *StatsExtractor) Extract(html, username string) domain.ProfileStats {
	stats := domain.ProfileStats{}

	for _, rule := range statRules {
		matched := false
		for i, pattern := range rule.patterns {
			m := pattern.FindStringSubmatch(html)
			if m == nil {
				continue
			}
			value := util.SafeInt(m[1])
			rule.assign(&stats, value)
			e.logger.Debug("Stat field matched",
				zap.String("field", rule.field),
				zap.Int("attempt", i+1),
				zap.Int("value", value))
			matched = true
			break
		}
		if !matched {
			e.logger.Debug("Stat field not found, defaulting to 0",
				zap.String("field", rule.field))
		}
	}

	stats.Username = e.extractUsername(html, username)

	return stats
}

// extractUsername prefers the profile header in the document, then any
// /p/<identifier> link, then the caller-supplied username.
func (e *StatsExtractor) extractUsername(html, fallback string) string {
	if name := e.usernameFromHeader(html); name != "" {
		return name
	}

	if m := reProfilePath.FindStringSubmatch(html); m != nil {
		e.logger.Debug("Username taken from profile path", zap.String("username", m[1]))
		return m[1]
	}

	return strings.TrimSpace(fallback)
}

func (e *StatsExtractor) usernameFromHeader(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug("HTML parse failed, skipping header lookup", zap.Error(err))
		return ""
	}

	for _, selector := range usernameSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text == "" {
			continue
		}
		// Header text sometimes carries decorations around the handle.
		name := strings.TrimSpace(strings.TrimPrefix(text, "@"))
		if name != "" {
			e.logger.Debug("Username taken from profile header",
				zap.String("selector", selector),
				zap.String("username", name))
			return name
		}
	}

	return ""
}

// ActivityDates counts ISO yyyy-mm-dd tokens in the document. The page has
// no reliable history series, so the count only informs logging; the trend
// is synthesized either way.
func (e *StatsExtractor) ActivityDates(html string) int {
	return len(reISODate.FindAllString(html, -1))
}
