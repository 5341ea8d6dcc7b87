package execution

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"xrun/internal/config"
	"xrun/internal/discovery"
	"xrun/internal/domain"
	"xrun/internal/results"
)

// Runner composes discovery, orchestration and aggregation into one run
type Runner struct {
	config       *config.Config
	discoverer   *discovery.Discoverer
	orchestrator *Orchestrator
	log          zerolog.Logger
}

// NewRunner creates a new Runner resolving types through resolver
func NewRunner(cfg *config.Config, resolver discovery.Resolver, out io.Writer, log zerolog.Logger) *Runner {
	discoverer := discovery.NewDiscoverer(discovery.OptionsFrom(cfg), resolver, log)

	return &Runner{
		config:       cfg,
		discoverer:   discoverer,
		orchestrator: NewOrchestrator(out, cfg.Debug(), log),
		log:          log,
	}
}

// Run writes the marker file, then executes every discovered type in
// order. discovery.ErrNoTests is returned when the test root is absent or
// empty. On a fatal failure the summary of the work done so far is returned
// together with the error.
func (r *Runner) Run(progress results.Progress) (*domain.RunSummary, error) {
	start := time.Now()

	if err := os.WriteFile(r.config.GetMarkerPath(), nil, 0644); err != nil {
		return nil, fmt.Errorf("write marker file: %w", err)
	}

	types, err := r.discoverer.Discover(r.config.GetTestPath())
	if err != nil {
		return nil, err
	}

	agg := results.NewAggregator(progress)
	for typ, err := range types {
		if err != nil {
			return agg.Summary(time.Since(start)), fmt.Errorf("discover tests: %w", err)
		}
		if err := r.orchestrator.Execute(typ, agg); err != nil {
			r.log.Debug().Err(err).Str("type", typ.ID).Msg("Aborting run")
			return agg.Summary(time.Since(start)), err
		}
	}

	return agg.Summary(time.Since(start)), nil
}
