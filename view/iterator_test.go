package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/strided/layout"
)

func TestIterator_ForwardTraversal(t *testing.T) {
	v := New[layout.N15, layout.N2](sequence(100))

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28}, got)
}

func TestIterator_ReverseTraversal(t *testing.T) {
	v := New[layout.Dynamic, layout.N1]([]int{10, 20, 30, 40})

	var got []int
	for it := v.RBegin(); !it.Equal(v.REnd()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{40, 30, 20, 10}, got)
}

func TestIterator_Endpoints(t *testing.T) {
	v := New[layout.N15, layout.N2](sequence(100))

	require.Equal(t, 0, v.Begin().Offset())
	require.Equal(t, 30, v.End().Offset())
	require.Equal(t, 28, v.RBegin().Offset())
	require.Equal(t, -2, v.REnd().Offset())

	require.Equal(t, 15, v.End().Distance(v.Begin()))
	require.Equal(t, 15, v.REnd().Distance(v.RBegin()))
}

func TestIterator_Stepping(t *testing.T) {
	v := New[layout.N15, layout.N2](sequence(100))

	t.Run("forward", func(t *testing.T) {
		it := v.Begin()
		require.Equal(t, 0, it.Value())

		require.Equal(t, 2, it.Inc().Value())

		prev := it.PostInc()
		require.Equal(t, 2, prev.Value())
		require.Equal(t, 4, it.Value())

		require.Equal(t, 2, it.Dec().Value())

		prev = it.PostDec()
		require.Equal(t, 2, prev.Value())
		require.Equal(t, 0, it.Value())

		it.Advance(3)
		require.Equal(t, 6, it.Value())
		it.Retreat(2)
		require.Equal(t, 2, it.Value())

		require.Equal(t, 8, it.Add(3).Value())
		require.Equal(t, 0, it.Sub(1).Value())
		require.Equal(t, 10, it.Index(4))
		require.Equal(t, 2, it.Value(), "Add, Sub and Index must not move the iterator")
	})

	t.Run("reverse", func(t *testing.T) {
		it := v.RBegin()
		require.Equal(t, 28, it.Value())

		require.Equal(t, 26, it.Inc().Value())
		require.Equal(t, 24, it.Index(1))
		require.Equal(t, 20, it.Add(3).Value())
		require.Equal(t, 28, it.Sub(1).Value())

		prev := it.PostInc()
		require.Equal(t, 26, prev.Value())
		require.Equal(t, 24, it.Value())

		it.Dec()
		require.Equal(t, 26, it.Value())

		it.Advance(14)
		require.True(t, it.Equal(v.REnd()))
		it.Retreat(1)
		require.Equal(t, 0, it.Value())
	})
}

func TestIterator_Comparison(t *testing.T) {
	v := New[layout.Dynamic, layout.N3](sequence(30))

	begin, end := v.Begin(), v.End()
	mid := begin.Add(4)

	require.True(t, begin.Less(mid))
	require.True(t, mid.Less(end))
	require.True(t, begin.LessEqual(begin))
	require.True(t, end.Greater(mid))
	require.True(t, end.GreaterEqual(end))
	require.False(t, mid.Greater(end))
	require.Equal(t, -1, begin.Compare(mid))
	require.Equal(t, 0, mid.Compare(begin.Add(4)))
	require.Equal(t, 1, end.Compare(mid))
	require.Equal(t, 4, mid.Distance(begin))
	require.Equal(t, -6, mid.Distance(end))

	// Reverse iterators compare raw offsets, so RBegin sits above REnd.
	require.True(t, v.RBegin().Greater(v.REnd()))
}

func TestIterator_Set(t *testing.T) {
	buf := sequence(8)
	v := New[layout.Dynamic, layout.N2](buf)

	for it := v.Begin(); it.Less(v.End()); it.Inc() {
		it.Set(it.Value() * 10)
	}
	require.Equal(t, []int{0, 1, 20, 3, 40, 5, 60, 7}, buf)

	it := v.RBegin()
	*it.Ptr() = -1
	require.Equal(t, -1, buf[6])
}

func TestConstIterator(t *testing.T) {
	v := New[layout.Dynamic, layout.N1]([]int{1, 2, 3, 4, 5})

	sum := 0
	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Inc() {
		sum += it.Value()
	}
	require.Equal(t, 15, sum)

	var got []int
	for it := v.CRBegin(); !it.Equal(v.CREnd()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)

	it := v.CBegin()
	it.Advance(2)
	require.Equal(t, 3, it.Value())
	require.Equal(t, 5, it.Index(2))
	require.Equal(t, 4, it.Add(1).Value())
	require.Equal(t, 2, it.Sub(1).Value())

	prev := it.PostInc()
	require.Equal(t, 3, prev.Value())
	prev = it.PostDec()
	require.Equal(t, 4, prev.Value())
	it.Dec().Retreat(1)
	require.Equal(t, 1, it.Value())
	require.Equal(t, 0, it.Offset())

	require.True(t, it.Less(v.CEnd()))
	require.True(t, it.LessEqual(v.CBegin()))
	require.True(t, v.CEnd().Greater(it))
	require.True(t, v.CEnd().GreaterEqual(v.CEnd()))
	require.Equal(t, -1, it.Compare(v.CEnd()))
	require.Equal(t, 5, v.CEnd().Distance(it))
}

func BenchmarkIterator_Forward(b *testing.B) {
	v := New[layout.Dynamic, layout.N2](sequence(4096))
	sum := 0
	for b.Loop() {
		for it, end := v.Begin(), v.End(); !it.Equal(end); it.Inc() {
			sum += it.Value()
		}
	}
	_ = sum
}
