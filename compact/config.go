package compact

import (
	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/internal/options"
)

// DefaultMaxDepth bounds the nesting depth accepted by Walk and Decode.
const DefaultMaxDepth = 10000

// Config holds the settings shared by Walk and the decoder.
type Config struct {
	observer Observer
	tracer   PathTracer
	maxDepth int
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		observer: nopObserver{},
		maxDepth: DefaultMaxDepth,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MaxDepth returns the configured nesting limit.
func (c *Config) MaxDepth() int {
	return c.maxDepth
}

// Option configures Walk and the decoder.
type Option = options.Option[*Config]

// WithObserver installs an observer for shape discovery events.
// A nil observer restores the silent default.
func WithObserver(o Observer) Option {
	return options.NoError(func(c *Config) {
		if o == nil {
			c.observer = nopObserver{}
			c.tracer = nil

			return
		}
		c.observer = o
		c.tracer, _ = o.(PathTracer)
	})
}

// WithMaxDepth limits how deeply arrays and objects may nest.
// Default is DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth <= 0 {
			return errs.ErrInvalidMaxDepth
		}
		c.maxDepth = depth

		return nil
	})
}
