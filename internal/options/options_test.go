package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testLayout struct {
	Size   int
	Offset int
	Order  []string
}

func withSize(n int) Option[*testLayout] {
	return New(func(l *testLayout) error {
		if n <= 0 {
			return errors.New("size must be positive")
		}
		l.Size = n
		l.Order = append(l.Order, "size")

		return nil
	})
}

func withOffset(n int) Option[*testLayout] {
	return NoError(func(l *testLayout) {
		l.Offset = n
		l.Order = append(l.Order, "offset")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		l := &testLayout{}
		err := Apply(l, withOffset(4), withSize(16))

		require.NoError(t, err)
		require.Equal(t, 16, l.Size)
		require.Equal(t, 4, l.Offset)
		require.Equal(t, []string{"offset", "size"}, l.Order)
	})

	t.Run("stops at first error", func(t *testing.T) {
		l := &testLayout{}
		err := Apply(l, withSize(-1), withOffset(4))

		require.Error(t, err)
		require.Contains(t, err.Error(), "size must be positive")
		require.Equal(t, 0, l.Offset)
	})

	t.Run("skips nil options", func(t *testing.T) {
		l := &testLayout{}
		err := Apply(l, nil, withOffset(2))

		require.NoError(t, err)
		require.Equal(t, 2, l.Offset)
	})

	t.Run("no options", func(t *testing.T) {
		l := &testLayout{}
		require.NoError(t, Apply(l))
		require.Empty(t, l.Order)
	})
}
