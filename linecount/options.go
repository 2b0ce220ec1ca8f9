package linecount

import (
	"fmt"

	"github.com/arloliu/tradegrid/errs"
	"github.com/arloliu/tradegrid/format"
	"github.com/arloliu/tradegrid/internal/pool"
)

// DefaultBufferSize is the default read chunk size.
const DefaultBufferSize = pool.ReadChunkDefaultSize

// Option configures a count operation.
type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (f optionFunc) apply(c *config) error {
	return f(c)
}

type config struct {
	bufferSize     int
	compression    format.CompressionType
	compressionSet bool
	autoDetect     bool
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		bufferSize:  DefaultBufferSize,
		compression: format.CompressionNone,
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithBufferSize sets the read chunk size in bytes. Size must be positive.
func WithBufferSize(size int) Option {
	return optionFunc(func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBufferSize, size)
		}
		c.bufferSize = size

		return nil
	})
}

// WithCompression decodes the input with the given compression before counting.
// It takes precedence over WithAutoDetect regardless of option order.
func WithCompression(compressionType format.CompressionType) Option {
	return optionFunc(func(c *config) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
		}
		c.compression = compressionType
		c.compressionSet = true

		return nil
	})
}

// WithAutoDetect selects the compression from the file extension
// (see format.DetectCompression). It has no effect on Reader or when
// WithCompression is also given.
func WithAutoDetect() Option {
	return optionFunc(func(c *config) error {
		c.autoDetect = true
		return nil
	})
}
