package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/card"
	"github.com/ritviksingh/thm-card-go/internal/config"
	"github.com/ritviksingh/thm-card-go/internal/service"
)

// Generator wires the fetch -> extract -> synthesize -> render pipeline.
// One Generate call per process; the pipeline holds no state between runs.
type Generator struct {
	cfg       *config.Config
	logger    *zap.Logger
	fetcher   *service.ProfileFetcher
	extractor *service.StatsExtractor
	renderer  *card.Renderer
}

// Options are the per-run knobs taken from the command line.
type Options struct {
	Username string
	Output   string
	Template string
	Points   int
	Width    int
	Height   int
}

func Build(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:       cfg,
		logger:    logger,
		fetcher:   service.NewProfileFetcher(cfg.Profile, logger),
		extractor: service.NewStatsExtractor(logger),
		renderer:  card.NewRenderer(logger),
	}
}

// Generate runs the pipeline once and returns the rendered byte size. A
// fetch failure degrades to an empty document; only template and render
// errors propagate.
func (g *Generator) Generate(ctx context.Context, opts Options) (int, error) {
	html, err := g.fetcher.Fetch(ctx, opts.Username)
	if err != nil {
		g.logger.Warn("Failed to fetch profile page, continuing with empty document",
			zap.String("username", opts.Username),
			zap.Error(err))
		html = ""
	}

	stats := g.extractor.Extract(html, opts.Username)
	g.logger.Info("Profile stats extracted",
		zap.String("username", stats.Username),
		zap.Int("rank", stats.Rank),
		zap.Int("badges", stats.Badges),
		zap.Int("rooms", stats.Rooms),
		zap.Int("streak", stats.Streak))

	if dates := g.extractor.ActivityDates(html); dates > 0 {
		g.logger.Debug("Activity timestamps present but no usable history, synthesizing trend",
			zap.Int("dates", dates))
	}

	trend := card.SynthesizeTrend(stats.Rooms, opts.Points)
	points := card.SparkPoints(trend, g.cfg.Spark.Width, g.cfg.Spark.Height)
	cardCtx := card.BuildContext(stats, card.FormatPoints(points), opts.Width, opts.Height, time.Now())

	return g.renderer.Render(opts.Template, opts.Output, cardCtx)
}
