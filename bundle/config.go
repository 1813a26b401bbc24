package bundle

import (
	"fmt"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/format"
	"github.com/arloliu/arrayniac/internal/options"
)

// Config holds the settings used by Pack.
type Config struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures Pack.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the payload compression. Default is zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, ok := validCompressions[uint8(compression)]; !ok {
			return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidHeaderFlags, compression)
		}
		c.compression = compression

		return nil
	})
}

// WithLittleEndian writes header fields in little-endian order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// WithBigEndian writes header fields in big-endian order.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}
