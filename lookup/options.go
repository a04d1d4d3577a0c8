package lookup

import (
	"fmt"

	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/internal/options"
)

// TableConfig holds the options shared by all tables.
type TableConfig struct {
	width     uint8
	sorted    bool
	interning bool
	capacity  int
}

func newTableConfig() *TableConfig {
	return &TableConfig{
		width:     delta.DefaultWidth,
		interning: true,
	}
}

// TableOption is a functional option for configuring tables.
type TableOption = options.Option[*TableConfig]

// WithSortedDictionary renumbers entries in lexical order when the table is
// frozen. Sorting trades interning-order locality for a canonical dictionary.
// Default is false.
func WithSortedDictionary() TableOption {
	return options.NoError(func(c *TableConfig) {
		c.sorted = true
	})
}

// WithLiteralInterning enables or disables the literal dictionary. When disabled
// every literal reference is written verbatim. Only literal tables read it.
// Default is true.
func WithLiteralInterning(enabled bool) TableOption {
	return options.NoError(func(c *TableConfig) {
		c.interning = enabled
	})
}

// WithDeltaWidth sets the slot-count exponent of the delta history table.
// Writer and reader must agree on it. Default is delta.DefaultWidth.
func WithDeltaWidth(width uint8) TableOption {
	return options.New(func(c *TableConfig) error {
		if width < delta.MinWidth || width > delta.MaxWidth {
			return fmt.Errorf("%w: delta width %d outside [%d, %d]",
				errs.ErrInvalidConfig, width, delta.MinWidth, delta.MaxWidth)
		}
		c.width = width

		return nil
	})
}

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) TableOption {
	return options.New(func(c *TableConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidConfig, n)
		}
		c.capacity = n

		return nil
	})
}

func applyOptions(opts []TableOption) (*TableConfig, error) {
	cfg := newTableConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
