package card

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/domain"
	"github.com/ritviksingh/thm-card-go/pkg/errors"
)

func TestProgressPct(t *testing.T) {
	tests := []struct {
		rooms    int
		expected int
	}{
		{0, 0},
		{5, 5},
		{42, 42},
		{99, 99},
		{100, 100},
		{250, 100},
	}

	for _, test := range tests {
		got := ProgressPct(test.rooms)
		if got != test.expected {
			t.Errorf("ProgressPct(%d) = %d; expected %d", test.rooms, got, test.expected)
		}
		if got < 0 || got > 100 {
			t.Errorf("ProgressPct(%d) = %d outside [0,100]", test.rooms, got)
		}
	}
}

func TestBuildContextDisplays(t *testing.T) {
	stats := domain.ProfileStats{
		Username: "alice",
		Rank:     1234,
		Badges:   7,
		Rooms:    42,
		Streak:   3,
	}

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ctx := BuildContext(stats, "0,44 360,0", 780, 330, now)

	if ctx.RankDisplay != "1,234" {
		t.Errorf("RankDisplay = %q; expected %q", ctx.RankDisplay, "1,234")
	}
	if ctx.BadgesDisplay != "7" || ctx.RoomsDisplay != "42" || ctx.StreakDisplay != "3" {
		t.Errorf("unexpected displays: %q %q %q", ctx.BadgesDisplay, ctx.RoomsDisplay, ctx.StreakDisplay)
	}
	if ctx.TotalRooms != 42 {
		t.Errorf("TotalRooms = %d; expected 42", ctx.TotalRooms)
	}
	if ctx.GeneratedAt != "2026-08-30 12:00 UTC" {
		t.Errorf("GeneratedAt = %q", ctx.GeneratedAt)
	}
	if ctx.ProgressPct != 42 {
		t.Errorf("ProgressPct = %d; expected 42", ctx.ProgressPct)
	}
}

func TestBuildContextUnknownRank(t *testing.T) {
	ctx := BuildContext(domain.ProfileStats{Username: "alice"}, "", 780, 330, time.Now())
	if ctx.RankDisplay != "—" {
		t.Errorf("RankDisplay = %q; expected em dash placeholder", ctx.RankDisplay)
	}
	if ctx.ProgressPct != 0 {
		t.Errorf("ProgressPct = %d; expected 0", ctx.ProgressPct)
	}
}

func TestBuildContextEscapesUsername(t *testing.T) {
	stats := domain.ProfileStats{Username: `<script>&"x"`}
	ctx := BuildContext(stats, "", 780, 330, time.Now())

	if strings.Contains(ctx.Username, "<") || strings.Contains(ctx.Username, ">") {
		t.Errorf("Username %q still contains raw angle brackets", ctx.Username)
	}
	if !strings.Contains(ctx.Username, "&lt;script&gt;") {
		t.Errorf("Username %q missing escaped markup", ctx.Username)
	}
	if !strings.Contains(ctx.Username, "&amp;") {
		t.Errorf("Username %q missing escaped ampersand", ctx.Username)
	}
}

const testTemplate = `<svg width="{{.card_w}}" height="{{.card_h}}">
<text>{{.username}}</text><text>{{.rank_display}}</text>
<polyline points="{{.spark_points}}"/>
<text>{{.generated_at}} {{.progress_pct}} {{.total_rooms}}</text>
<text>{{.badges_display}} {{.rooms_display}} {{.streak_display}}</text>
</svg>`

func writeTestTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.svg")
	if err := os.WriteFile(path, []byte(testTemplate), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return path
}

func TestRenderWritesOutput(t *testing.T) {
	renderer := NewRenderer(zap.NewNop())
	templatePath := writeTestTemplate(t)
	outputPath := filepath.Join(t.TempDir(), "out.svg")

	ctx := BuildContext(domain.ProfileStats{Username: "alice", Rank: 1234, Rooms: 42},
		"0,44 360,0", 780, 330, time.Now())

	size, err := renderer.Render(templatePath, outputPath, ctx)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if size != len(data) {
		t.Errorf("reported size %d; file has %d bytes", size, len(data))
	}

	svg := string(data)
	for _, want := range []string{"alice", "1,234", "0,44 360,0", `width="780"`, `height="330"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	renderer := NewRenderer(zap.NewNop())
	outputPath := filepath.Join(t.TempDir(), "out.svg")

	_, err := renderer.Render(filepath.Join(t.TempDir(), "nope.svg"), outputPath, domain.CardContext{})
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if _, ok := err.(*errors.TemplateError); !ok {
		t.Errorf("expected *errors.TemplateError, got %T", err)
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Error("output file should not exist after a template failure")
	}
}

func TestRenderBadTemplateLeavesOutputUntouched(t *testing.T) {
	renderer := NewRenderer(zap.NewNop())

	templatePath := filepath.Join(t.TempDir(), "bad.svg")
	if err := os.WriteFile(templatePath, []byte(`{{.no_such_value}}`), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), "out.svg")
	if err := os.WriteFile(outputPath, []byte("previous card"), 0o644); err != nil {
		t.Fatalf("seeding output: %v", err)
	}

	_, err := renderer.Render(templatePath, outputPath, domain.CardContext{})
	if err == nil {
		t.Fatal("expected error for unknown placeholder")
	}
	if _, ok := err.(*errors.RenderError); !ok {
		t.Errorf("expected *errors.RenderError, got %T", err)
	}

	data, readErr := os.ReadFile(outputPath)
	if readErr != nil {
		t.Fatalf("reading output: %v", readErr)
	}
	if string(data) != "previous card" {
		t.Errorf("existing output was modified: %q", string(data))
	}
}
