package discovery

import (
	"iter"

	"github.com/rs/zerolog"

	"xrun/internal/config"
	"xrun/xunit"
)

// Resolver looks up registered test-case types by identifier
type Resolver interface {
	Lookup(id string) (*xunit.Type, bool)
}

// Options configures a Discoverer
type Options struct {
	Extension string
	Namespace string
	Selector  string
	SkipDirs  []string
}

// OptionsFrom returns the discovery options of a loaded config
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Extension: cfg.Extension,
		Namespace: cfg.Namespace,
		Selector:  cfg.Selector(),
		SkipDirs:  cfg.PathsToIgnore(),
	}
}

// Discoverer maps test source files to registered test-case types
type Discoverer struct {
	scanner  *Scanner
	filter   *Filter
	resolver Resolver
	opts     Options
	log      zerolog.Logger
}

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(opts Options, resolver Resolver, log zerolog.Logger) *Discoverer {
	return &Discoverer{
		scanner:  NewScanner(opts.Extension, opts.SkipDirs),
		filter:   NewFilter(opts.Selector),
		resolver: resolver,
		opts:     opts,
		log:      log,
	}
}

// Discover returns the accepted test-case types below root, lazily and in
// traversal order. Abstract types are included; deciding what to execute is
// left to the caller. ErrNoTests is returned when root is absent or empty.
func (d *Discoverer) Discover(root string) (iter.Seq2[*xunit.Type, error], error) {
	files, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	return func(yield func(*xunit.Type, error) bool) {
		for path, err := range files {
			if err != nil {
				yield(nil, err)
				return
			}

			id, ok := Identifier(root, path, d.opts.Extension, d.opts.Namespace)
			if !ok {
				d.log.Debug().Str("path", path).Msg("Skipping ungrouped file")
				continue
			}

			typ, ok := d.resolver.Lookup(id)
			if !ok {
				d.log.Debug().Str("type", id).Msg("Skipping unregistered type")
				continue
			}

			if !d.filter.Accept(id) {
				d.log.Debug().Str("type", id).Str("selector", d.opts.Selector).Msg("Skipping type outside selector")
				continue
			}

			if !yield(typ, nil) {
				return
			}
		}
	}, nil
}
