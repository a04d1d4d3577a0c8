package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type tableConfig struct {
	width  int
	sorted bool
	calls  []string
}

var errBadWidth = errors.New("bad width")

func withWidth(w int) Option[*tableConfig] {
	return New(func(c *tableConfig) error {
		if w < 1 || w > 6 {
			return errBadWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withSorted() Option[*tableConfig] {
	return NoError(func(c *tableConfig) {
		c.sorted = true
		c.calls = append(c.calls, "sorted")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &tableConfig{}

	err := Apply(cfg, withSorted(), withWidth(4))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.width)
	require.True(t, cfg.sorted)
	require.Equal(t, []string{"sorted", "width"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &tableConfig{}

	err := Apply(cfg, withWidth(9), withSorted())
	require.ErrorIs(t, err, errBadWidth)
	require.False(t, cfg.sorted)
	require.Empty(t, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &tableConfig{}

	require.NoError(t, Apply(cfg, nil, withSorted()))
	require.True(t, cfg.sorted)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &tableConfig{width: 6}

	require.NoError(t, Apply[*tableConfig](cfg))
	require.Equal(t, 6, cfg.width)
}
