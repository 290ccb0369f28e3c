package card

import (
	"bytes"
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/constants"
	"github.com/ritviksingh/thm-card-go/internal/domain"
	"github.com/ritviksingh/thm-card-go/internal/util"
	"github.com/ritviksingh/thm-card-go/pkg/errors"
)

// Renderer substitutes a CardContext into an SVG template file and writes
// the result. A missing template or a failed substitution is the one fatal
// condition in the pipeline.
type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// BuildContext assembles the template context from extracted stats and the
// precomputed sparkline. Untrusted text (the username comes from third-party
// markup) is XML-escaped here so it cannot break the surrounding SVG.
func BuildContext(stats domain.ProfileStats, sparkPoints string, cardW, cardH int, now time.Time) domain.CardContext {
	username := util.TruncateString(stats.Username, constants.CardDefaults.MaxUsernameRunes)

	return domain.CardContext{
		Username:      xmlEscape(username),
		RankDisplay:   rankDisplay(stats.Rank),
		BadgesDisplay: strconv.Itoa(stats.Badges),
		RoomsDisplay:  strconv.Itoa(stats.Rooms),
		StreakDisplay: strconv.Itoa(stats.Streak),
		TotalRooms:    stats.Rooms,
		SparkPoints:   sparkPoints,
		GeneratedAt:   util.FormatCardTimestamp(now),
		CardW:         cardW,
		CardH:         cardH,
		ProgressPct:   ProgressPct(stats.Rooms),
	}
}

// ProgressPct maps a completed-room total onto a 0..100 progress bar. The
// cap keeps the denominator non-zero and the scale sensible for small totals.
func ProgressPct(rooms int) int {
	scaleCap := util.Max(100, util.Max(constants.ProgressConfig.MinCap, rooms))
	pct := math.Floor(math.Min(100, float64(rooms)/float64(scaleCap)*100))
	return util.Clamp(int(pct), 0, 100)
}

// Render executes the template at templatePath with ctx and writes the SVG
// to outputPath, returning the rendered byte size. The output is buffered so
// a failed substitution leaves any existing output file untouched.
func (r *Renderer) Render(templatePath, outputPath string, ctx domain.CardContext) (int, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return 0, errors.NewTemplateError("template not found", templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(templatePath)).
		Option("missingkey=error").
		ParseFiles(templatePath)
	if err != nil {
		return 0, errors.NewTemplateError("template parse failed", templatePath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData(ctx)); err != nil {
		return 0, errors.NewRenderError("template execution failed", templatePath, outputPath, err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return 0, errors.NewRenderError("writing output file", templatePath, outputPath, err)
	}

	r.logger.Info("Card rendered",
		zap.String("template", templatePath),
		zap.String("output", outputPath),
		zap.Int("bytes", buf.Len()))

	return buf.Len(), nil
}

// templateData flattens the context into the named values the template
// contract documents. Templates reference them as {{.username}} etc.
func templateData(ctx domain.CardContext) map[string]any {
	return map[string]any{
		"username":       ctx.Username,
		"rank_display":   ctx.RankDisplay,
		"badges_display": ctx.BadgesDisplay,
		"rooms_display":  ctx.RoomsDisplay,
		"streak_display": ctx.StreakDisplay,
		"total_rooms":    ctx.TotalRooms,
		"spark_points":   ctx.SparkPoints,
		"generated_at":   ctx.GeneratedAt,
		"card_w":         ctx.CardW,
		"card_h":         ctx.CardH,
		"progress_pct":   ctx.ProgressPct,
	}
}

func rankDisplay(rank int) string {
	if rank == 0 {
		return "—"
	}
	return util.GroupThousands(rank)
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}
