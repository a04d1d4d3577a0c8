package delta

import (
	"fmt"
	"math"

	"github.com/arloliu/binowl/errs"
)

const (
	// MinWidth is the smallest supported slot-count exponent.
	MinWidth = 1
	// MaxWidth is the largest slot-count exponent that leaves two bits for the width class.
	MaxWidth = 6
	// DefaultWidth gives 64 slots.
	DefaultWidth = 6
)

// Config holds the construction parameters of a HistoryTable.
type Config struct {
	// Width is the slot-count exponent: the table has 1<<Width slots.
	Width uint8
	// MaxValue is the expected size of the index universe. It only seeds the
	// initial slot values evenly across [0, MaxValue).
	MaxValue int
	// NegativeClose and PositiveClose bound the near-miss window. A non-zero delta
	// inside [NegativeClose, PositiveClose] is a close match.
	NegativeClose int
	PositiveClose int
}

// IdentifierConfig returns the configuration used by identifier tables.
func IdentifierConfig(maxValue int) Config {
	return Config{Width: DefaultWidth, MaxValue: maxValue, NegativeClose: -1, PositiveClose: 1}
}

// LiteralConfig returns the configuration used by literal tables.
func LiteralConfig(maxValue int) Config {
	return Config{Width: DefaultWidth, MaxValue: maxValue, NegativeClose: -2, PositiveClose: 16}
}

// AnnotationConfig returns the configuration used by annotation tables.
func AnnotationConfig(maxValue int) Config {
	return Config{Width: DefaultWidth, MaxValue: maxValue, NegativeClose: 0, PositiveClose: 2}
}

// Validate checks that the configuration describes a usable table.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Width > MaxWidth {
		return fmt.Errorf("%w: delta width %d outside [%d, %d]", errs.ErrInvalidConfig, c.Width, MinWidth, MaxWidth)
	}

	if c.MaxValue < 0 || c.MaxValue > math.MaxInt32 {
		return fmt.Errorf("%w: delta max value %d outside [0, %d]", errs.ErrInvalidConfig, c.MaxValue, math.MaxInt32)
	}

	if c.NegativeClose > 0 || c.PositiveClose < 0 {
		return fmt.Errorf("%w: near-miss window [%d, %d] must contain zero",
			errs.ErrInvalidConfig, c.NegativeClose, c.PositiveClose)
	}

	return nil
}
