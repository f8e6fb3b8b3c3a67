package strided

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/strided/endian"
	"github.com/arloliu/strided/errs"
	"github.com/arloliu/strided/record"
)

func TestOf(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := Of(buf)

	require.Equal(t, 10, v.Size())
	require.Equal(t, 1, v.Stride())
	require.Equal(t, []int{2, 3, 4}, v.DropFirst(2).First(3).AppendTo(nil))
}

func TestEvery(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	evens := Every(buf, 2)
	require.Equal(t, []int{0, 2, 4, 6, 8}, evens.AppendTo(nil))
	require.Equal(t, []int{4, 6, 8}, evens.DropFirst(2).AppendTo(nil))

	odds := Every(buf[1:], 2)
	require.Equal(t, []int{1, 3, 5, 7, 9}, odds.AppendTo(nil))

	back := Every(buf, -3)
	require.Equal(t, []int{9, 6, 3, 0}, back.AppendTo(nil))
}

func TestBackward(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	require.Equal(t, []int{9, 8, 7}, Backward(buf).First(3).AppendTo(nil))
	require.Equal(t, []int{9, 7, 5, 3, 1}, Backward(buf).Skip(2).AppendTo(nil))
	require.Empty(t, Backward([]int{}).AppendTo(nil))
}

func TestColumn(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	var buf []byte
	for i := range 4 {
		buf = endian.Append(engine, buf, uint16(i))
		buf = endian.Append(engine, buf, float64(i)*1.5)
	}

	vals, err := Column[float64](buf, record.WithRecordSize(10), record.WithFieldOffset(2))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1.5, 3, 4.5}, vals.AppendTo(nil))

	_, err = Column[float64](buf, record.WithRecordSize(10), record.WithFieldOffset(4))
	require.ErrorIs(t, err, errs.ErrInvalidFieldOffset)
}
