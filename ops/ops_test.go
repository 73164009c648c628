package ops_test

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/ops"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int) ops.Slice[int] {
	return ops.Slice[int](xs)
}

func sum(a, b int) int { return a + b }

func TestMapFilterFlatMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.ops")
	defer teardown()
	//
	src := ints(1, 2, 3, 4)
	strs := ops.Map(src, strconv.Itoa, slices.Collect[string])
	assert.Equal(t, []string{"1", "2", "3", "4"}, strs)

	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, []int{2, 4}, ops.Filter(src, even, slices.Collect[int]))
	assert.Equal(t, []int{1, 3}, ops.FilterNot(src, even, slices.Collect[int]))

	twice := func(n int) iter.Seq[int] { return ints(n, n).All() }
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4}, ops.FlatMap(src, twice, slices.Collect[int]))
	assert.Equal(t, []int{1, 2, 3, 4}, []int(src), "source must stay unchanged")
}

func TestEmptySingletonFold(t *testing.T) {
	assert.Empty(t, ops.Empty(slices.Collect[int]))
	assert.Equal(t, []int{5}, ops.Singleton(5, slices.Collect[int]))
	assert.Equal(t, 10, ops.Fold(ints(1, 2, 3, 4), 0, sum))
	assert.Equal(t, 4, ops.Count(ints(1, 2, 3, 4)))
	assert.True(t, ops.IsEmpty(ints()))
	assert.False(t, ops.IsEmpty(ints(0)))
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.ops")
	defer teardown()
	//
	r := ops.Combine(ints(1, 1, 2, 3), fpcoll.Equals[int], sum, slices.Collect[int])
	if diff := cmp.Diff([]int{2, 2, 3}, r); diff != "" {
		t.Errorf("combine mismatch (-want +got):\n%s", diff)
	}
	r = ops.Combine(ints(), fpcoll.Equals[int], sum, slices.Collect[int])
	assert.Empty(t, r)
	r = ops.Combine(ints(4, 4, 4, 1, 1), fpcoll.Equals[int], sum, slices.Collect[int])
	assert.Equal(t, []int{12, 2}, r)
	// predicate sees neighbours, not the accumulator
	ascending := func(prev, next int) bool { return next == prev+1 }
	r = ops.Combine(ints(1, 2, 3, 7, 8, 1), ascending, sum, slices.Collect[int])
	assert.Equal(t, []int{6, 15, 1}, r)
}

func TestGroupedWhile(t *testing.T) {
	short := func(g []int, _ int) bool { return len(g) < 3 }
	r := ops.GroupedWhile(ints(1, 2, 3, 4, 5), short, slices.Collect[[]int])
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, r)
	assert.Empty(t, ops.GroupedWhile(ints(), short, slices.Collect[[]int]))
}

func TestGrouped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.ops")
	defer teardown()
	//
	r, err := ops.Grouped(ints(1, 2, 3, 4, 5), 2, slices.Collect[[]int])
	require.NoError(t, err)
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}, {5}}, r); diff != "" {
		t.Errorf("grouped mismatch (-want +got):\n%s", diff)
	}
	r, err = ops.Grouped(ints(1, 2, 3, 4), 2, slices.Collect[[]int])
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, r)
	for _, size := range []int{0, -1} {
		_, err = ops.Grouped(ints(1, 2), size, slices.Collect[[]int])
		assert.True(t, errors.Is(err, fpcoll.ErrInvalidArgument), "size %d: %v", size, err)
	}
}

func TestSliding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.ops")
	defer teardown()
	//
	cases := []struct {
		in         []int
		size, step int
		want       [][]int
	}{
		{[]int{1, 2, 3, 4, 5}, 2, 1, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}},
		{[]int{1, 2, 3, 4, 5, 6}, 3, 2, [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6}}},
		{[]int{1, 2, 3, 4, 5}, 1, 2, [][]int{{1}, {3}, {5}}},
		{[]int{1, 2}, 5, 1, [][]int{{1, 2}}},
		{nil, 2, 1, nil},
	}
	for i, c := range cases {
		r, err := ops.Sliding(ints(c.in...), c.size, c.step, slices.Collect[[]int])
		require.NoError(t, err)
		if diff := cmp.Diff(c.want, r); diff != "" {
			t.Errorf("case %d: sliding mismatch (-want +got):\n%s", i, diff)
		}
	}
	_, err := ops.Sliding(ints(1), 0, 1, slices.Collect[[]int])
	assert.ErrorIs(t, err, fpcoll.ErrInvalidArgument)
	_, err = ops.Sliding(ints(1), 1, 0, slices.Collect[[]int])
	assert.ErrorIs(t, err, fpcoll.ErrInvalidArgument)
}

func TestSlidingWindowsDoNotAlias(t *testing.T) {
	r, err := ops.Sliding(ints(1, 2, 3), 2, 1, slices.Collect[[]int])
	require.NoError(t, err)
	r[0][1] = 99
	assert.Equal(t, 2, r[1][0])
}

func TestScan(t *testing.T) {
	r := ops.ScanLeft(ints(1, 2, 3), 0, sum, slices.Collect[int])
	assert.Equal(t, []int{0, 1, 3, 6}, r)
	assert.Equal(t, []int{7}, ops.ScanLeft(ints(), 7, sum, slices.Collect[int]))

	concat := func(s string, acc string) string { return acc + s }
	words := ops.Slice[string]{"a", "b", "c"}
	rr := ops.ScanRight(words, "", concat, slices.Collect[string])
	assert.Equal(t, []string{"", "c", "cb", "cba"}, rr)
	prepend := func(s string, acc string) string { return s + acc }
	rr = ops.ScanRight(words, "", prepend, slices.Collect[string])
	assert.Equal(t, []string{"", "c", "bc", "abc"}, rr)
}

func TestTakeDrop(t *testing.T) {
	src := ints(1, 2, 3, 4, 5)
	r, err := ops.Limit(src, 2, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r)
	r, err = ops.Limit(src, 0, slices.Collect[int])
	require.NoError(t, err)
	assert.Empty(t, r)
	r, err = ops.Skip(src, 3, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, r)
	r, err = ops.TakeRight(src, 2, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, r)
	r, err = ops.DropRight(src, 2, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, r)
	r, err = ops.TakeRight(src, 9, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, r)

	for _, f := range []func() ([]int, error){
		func() ([]int, error) { return ops.Limit(src, -1, slices.Collect[int]) },
		func() ([]int, error) { return ops.Skip(src, -1, slices.Collect[int]) },
		func() ([]int, error) { return ops.TakeRight(src, -1, slices.Collect[int]) },
		func() ([]int, error) { return ops.DropRight(src, -1, slices.Collect[int]) },
		func() ([]int, error) { return ops.Cycle(src, -1, slices.Collect[int]) },
	} {
		_, err := f()
		assert.ErrorIs(t, err, fpcoll.ErrInvalidArgument)
	}

	lt3 := func(n int) bool { return n < 3 }
	assert.Equal(t, []int{1, 2}, ops.TakeWhile(src, lt3, slices.Collect[int]))
	assert.Equal(t, []int{3, 4, 5}, ops.DropWhile(src, lt3, slices.Collect[int]))
}

func TestLimitDoesNotOverpull(t *testing.T) {
	pulled := 0
	naturals := ops.Seq[int](func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	})
	r, err := ops.Limit(naturals, 3, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r)
	assert.Equal(t, 3, pulled)
}

func TestReverseCycleIntersperse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, ops.Reverse(ints(1, 2, 3), slices.Collect[int]))
	r, err := ops.Cycle(ints(1, 2), 3, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2}, r)
	r, err = ops.Cycle(ints(1, 2), 0, slices.Collect[int])
	require.NoError(t, err)
	assert.Empty(t, r)
	assert.Equal(t, []int{1, 0, 2, 0, 3}, ops.Intersperse(ints(1, 2, 3), 0, slices.Collect[int]))
	assert.Equal(t, []int{3, 1, 2}, ops.Distinct(ints(3, 1, 3, 2, 1), slices.Collect[int]))
}

func TestSorted(t *testing.T) {
	words := ops.Slice[string]{"pear", "fig", "apple", "kiwi"}
	byLen := func(a, b string) int { return len(a) - len(b) }
	r := ops.Sorted(words, byLen, slices.Collect[string])
	assert.Equal(t, []string{"fig", "pear", "kiwi", "apple"}, r)
	r = ops.Sorted(words, strings.Compare, slices.Collect[string])
	assert.Equal(t, []string{"apple", "fig", "kiwi", "pear"}, r)
	assert.Equal(t, "pear", words[0])
}

func TestZip(t *testing.T) {
	names := ops.Slice[string]{"a", "b", "c"}
	r := ops.Zip(names, ints(1, 2), slices.Collect[fpcoll.Pair[string, int]])
	assert.Equal(t, []fpcoll.Pair[string, int]{fpcoll.P("a", 1), fpcoll.P("b", 2)}, r)
	ix := ops.ZipWithIndex(names, slices.Collect[fpcoll.Pair[string, int]])
	assert.Equal(t, fpcoll.P("c", 2), ix[2])
	assert.Len(t, ix, 3)
}

func TestZipDoesNotOverpullSource(t *testing.T) {
	pulled := 0
	naturals := ops.Seq[int](func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	})
	r := ops.Zip(naturals, ops.Slice[string]{"x", "y"}, slices.Collect[fpcoll.Pair[int, string]])
	assert.Equal(t, []fpcoll.Pair[int, string]{fpcoll.P(0, "x"), fpcoll.P(1, "y")}, r)
	assert.Equal(t, 2, pulled, "source must not be pulled past the shorter side")
}

func TestOnEmpty(t *testing.T) {
	assert.Equal(t, []int{42}, ops.OnEmpty(ints(), 42, slices.Collect[int]))
	assert.Equal(t, []int{1}, ops.OnEmpty(ints(1), 42, slices.Collect[int]))
	called := false
	get := func() int { called = true; return 7 }
	assert.Equal(t, []int{1}, ops.OnEmptyGet(ints(1), get, slices.Collect[int]))
	assert.False(t, called)
	assert.Equal(t, []int{7}, ops.OnEmptyGet(ints(), get, slices.Collect[int]))
	alt := func() []int { return []int{8, 9} }
	assert.Equal(t, []int{8, 9}, ops.OnEmptySwitch(ints(), alt, slices.Collect[int]))
	boom := errors.New("boom")
	_, err := ops.OnEmptyError(ints(), func() error { return boom }, slices.Collect[int])
	assert.ErrorIs(t, err, boom)
	r, err := ops.OnEmptyError(ints(3), func() error { return boom }, slices.Collect[int])
	require.NoError(t, err)
	assert.Equal(t, []int{3}, r)
}
