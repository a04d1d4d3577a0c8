package document

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/internal/options"
	"github.com/arloliu/binowl/lookup"
)

// DefaultMaxPayloadSize caps the decompressed payload a Decoder accepts.
const DefaultMaxPayloadSize = 1 << 30

// EncoderConfig holds the configuration of an Encoder.
type EncoderConfig struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	sorted      bool
	interning   bool
	logger      *slog.Logger
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		engine:      endian.Default(),
		compression: format.CompressionNone,
		interning:   true,
		logger:      discardLogger(),
	}
}

// tableOptions translates the encoder configuration into symbol table options.
func (c *EncoderConfig) tableOptions() []lookup.TableOption {
	opts := []lookup.TableOption{lookup.WithLiteralInterning(c.interning)}
	if c.sorted {
		opts = append(opts, lookup.WithSortedDictionary())
	}

	return opts
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian writes fixed-width integers least significant byte first.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes fixed-width integers most significant byte first. This is the default.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression selects the payload compression. Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: invalid payload compression: %v", errs.ErrInvalidConfig, comp)
		}
	})
}

// WithSortedDictionary renumbers every dictionary in canonical order before
// writing. Default is false, which keeps interning order.
func WithSortedDictionary(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.sorted = enabled
	})
}

// WithLiteralInterning enables or disables the literal dictionary. Default is true.
func WithLiteralInterning(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.interning = enabled
	})
}

// WithLogger sets the logger that receives debug records at section boundaries.
// A nil logger restores the default, which discards everything.
func WithLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.logger = orDiscard(logger)
	})
}

// DecoderConfig holds the configuration of a Decoder.
type DecoderConfig struct {
	verify         bool
	maxPayloadSize int
	logger         *slog.Logger
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		verify:         true,
		maxPayloadSize: DefaultMaxPayloadSize,
		logger:         discardLogger(),
	}
}

// DecoderOption is a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithChecksumVerification enables or disables payload checksum verification. Default is true.
func WithChecksumVerification(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.verify = enabled
	})
}

// WithMaxPayloadSize rejects documents whose header declares a larger payload.
// Default is DefaultMaxPayloadSize.
func WithMaxPayloadSize(n int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max payload size must be positive, got %d", errs.ErrInvalidConfig, n)
		}
		c.maxPayloadSize = n

		return nil
	})
}

// WithDecoderLogger sets the logger that receives debug records at section boundaries.
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.logger = orDiscard(logger)
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discardLogger()
	}

	return logger
}
