package stack_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/ops"
	"github.com/npillmayer/fpcoll/persistent/stack"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Empty[int]()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	_, err := s.Head()
	assert.ErrorIs(t, err, fpcoll.ErrEmptyCollection)
	_, err = s.Tail()
	assert.ErrorIs(t, err, fpcoll.ErrEmptyCollection)
	assert.True(t, s.HeadOption().IsNothing())
	assert.Equal(t, 9, s.HeadOr(9))
	assert.Equal(t, "[]", s.String())
	assert.Nil(t, s.ToSlice())
}

func TestConsDoesNotChangeReceiver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Of(2, 3)
	before := s.ToSlice()
	t1 := s.Cons(1)
	assert.Equal(t, []int{1, 2, 3}, t1.ToSlice())
	assert.Equal(t, before, s.ToSlice())
	assert.Equal(t, 2, s.Len())
	tail, err := t1.Tail()
	require.NoError(t, err)
	assert.True(t, stack.Equal(tail, s), "expected tail of s.Cons(x) to equal s")
	h, err := t1.Head()
	require.NoError(t, err)
	assert.Equal(t, 1, h)
	assert.Equal(t, "[1,2,3]", t1.String())
}

func TestZeroValueIsUsable(t *testing.T) {
	s := stack.Stack[string]{}.Cons("a").Plus("b")
	assert.Equal(t, []string{"b", "a"}, s.ToSlice())
}

func TestPositional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Of(1, 2, 3)
	r, err := s.InsertAt(1, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 2, 3}, r.ToSlice())
	r, err = s.InsertAt(3, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 9}, r.ToSlice())
	r, err = s.InsertAt(0, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 1, 2, 3}, r.ToSlice())

	r, err = s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, r.ToSlice())
	r, err = s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r.ToSlice())

	r, err = s.With(1, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 3}, r.ToSlice())

	x, err := s.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestRemoveAtOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Of(1, 2, 3)
	_, err := s.RemoveAt(5)
	assert.True(t, errors.Is(err, fpcoll.ErrIndexOutOfRange))
	var ie *fpcoll.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "removeAt", ie.Op)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	for _, f := range []func() error{
		func() error { _, err := s.RemoveAt(-1); return err },
		func() error { _, err := s.RemoveAt(3); return err },
		func() error { _, err := s.InsertAt(4, 0); return err },
		func() error { _, err := s.InsertAt(-1, 0); return err },
		func() error { _, err := s.With(3, 0); return err },
		func() error { _, err := s.At(3); return err },
		func() error { _, err := s.SubList(2, 1); return err },
		func() error { _, err := s.SubList(0, 4); return err },
		func() error { _, err := s.SubList(-1, 2); return err },
	} {
		assert.ErrorIs(t, f(), fpcoll.ErrIndexOutOfRange)
	}
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestSubList(t *testing.T) {
	s := stack.Range(0, 6)
	r, err := s.SubList(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, r.ToSlice())
	r, err = s.SubList(4, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, r.ToSlice())
	r, err = s.SubList(3, 3)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
}

func TestReverseConcat(t *testing.T) {
	s := stack.Of(1, 2, 3)
	assert.Equal(t, []int{3, 2, 1}, s.Reverse().ToSlice())
	c := s.Concat(stack.Of(4, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.ToSlice())
	assert.Equal(t, 5, c.Len())
	assert.True(t, stack.Equal(s.Concat(stack.Empty[int]()), s))
	assert.True(t, stack.Equal(stack.Empty[int]().Concat(s), s))
}

func TestRemoveFirst(t *testing.T) {
	s := stack.Of("a", "b", "c", "b")
	r := s.RemoveFirst(func(x string) bool { return x == "b" })
	assert.Equal(t, []string{"a", "c", "b"}, r.ToSlice())
	r = s.RemoveFirst(func(x string) bool { return x == "z" })
	assert.True(t, stack.Equal(r, s))
}

func TestRemoveRetainAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Of(1, 2, 3, 2, 4)
	r := stack.RemoveAll(s, slices.Values([]int{2, 9}))
	assert.Equal(t, []int{1, 3, 4}, r.ToSlice())
	r = stack.RetainAll(s, slices.Values([]int{2, 4}))
	assert.Equal(t, []int{2, 2, 4}, r.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 2, 4}, s.ToSlice(), "receiver must not change")
	assert.True(t, stack.RetainAll(s, slices.Values([]int{})).IsEmpty())
	assert.True(t, stack.Equal(stack.RemoveAll(s, slices.Values([]int{7})), s))
}

func TestPlusInOrder(t *testing.T) {
	s := stack.Of(3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, s.PlusInOrder(slices.Values([]int{1, 2})).ToSlice())
	assert.Equal(t, []int{2, 1, 3, 4}, s.PlusAll(slices.Values([]int{1, 2})).ToSlice())
}

func TestConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	xs := []int{1, 2, 3}
	s := stack.FromSlice(xs)
	xs[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice(), "stack must not alias its source slice")

	assert.Equal(t, []int{3, 4, 5}, stack.Range(3, 6).ToSlice())
	assert.True(t, stack.Range(6, 3).IsEmpty())
	double := func(n int) int { return n * 2 }
	assert.Equal(t, []int{1, 2, 4, 8}, stack.Iterate(4, 1, double).ToSlice())
	assert.True(t, stack.Iterate(0, 1, double).IsEmpty())
	n := 0
	gen := func() int { n++; return n }
	assert.Equal(t, []int{1, 2, 3}, stack.Generate(3, gen).ToSlice())
	countdown := func(i int) (string, int, bool) {
		return strconv.Itoa(i), i - 1, i > 0
	}
	assert.Equal(t, []string{"3", "2", "1"}, stack.Unfold(3, countdown).ToSlice())
	assert.Equal(t, []int{7}, stack.Singleton(7).ToSlice())
	assert.Equal(t, []int{3, 2, 1}, stack.Empty[int]().PlusAll(ops.Slice[int]{1, 2, 3}.All()).ToSlice())
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []stack.Stack[int]{stack.Empty[int](), stack.Of(1), stack.Range(0, 100)} {
		assert.True(t, stack.Equal(stack.FromSlice(s.ToSlice()), s))
		assert.True(t, stack.Equal(stack.FromIterable[int](s), s))
		assert.True(t, stack.Equal(stack.FromSeq(s.All()), s))
	}
	assert.False(t, stack.Equal(stack.Of(1, 2), stack.Of(1, 3)))
	assert.False(t, stack.Equal(stack.Of(1, 2), stack.Of(1)))
}

func TestFromPublisher(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)
	pub := fpcoll.PublisherFunc[int](func(ctx context.Context, onNext func(int) error) error {
		for x := range ch {
			if err := onNext(x); err != nil {
				return err
			}
		}
		return nil
	})
	s, err := stack.FromPublisher[int](context.Background(), pub)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.ToSlice())

	broken := fpcoll.PublisherFunc[int](func(ctx context.Context, onNext func(int) error) error {
		_ = onNext(1)
		return errors.New("lost connection")
	})
	s, err = stack.FromPublisher[int](context.Background(), broken)
	assert.Error(t, err)
	assert.True(t, s.IsEmpty())
}

func TestCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcoll.stack")
	defer teardown()
	//
	s := stack.Of(1, 1, 2, 3)
	sum := func(a, b int) int { return a + b }
	assert.Equal(t, []int{2, 2, 3}, s.Combine(fpcoll.Equals[int], sum).ToSlice())
	assert.Equal(t, []int{2}, s.Filter(func(n int) bool { return n%2 == 0 }).ToSlice())
	l, err := s.Limit(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, l.ToSlice())
	k, err := s.Skip(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, k.ToSlice())
	k, err = s.Skip(10)
	require.NoError(t, err)
	assert.True(t, k.IsEmpty())
	_, err = s.Skip(-1)
	assert.ErrorIs(t, err, fpcoll.ErrInvalidArgument)

	e := stack.Empty[int]()
	assert.Equal(t, []int{5}, e.OnEmpty(5).ToSlice())
	assert.Equal(t, []int{6}, e.OnEmptyGet(func() int { return 6 }).ToSlice())
	assert.Equal(t, []int{7, 8}, e.OnEmptySwitch(func() stack.Stack[int] { return stack.Of(7, 8) }).ToSlice())
	assert.Equal(t, s.ToSlice(), s.OnEmpty(5).ToSlice())

	strs := ops.Map(s, strconv.Itoa, stack.FromSeq[string])
	assert.Equal(t, []string{"1", "1", "2", "3"}, strs.ToSlice())
	groups, err := ops.Grouped(stack.Range(1, 6), 2, stack.FromSeq[[]int])
	require.NoError(t, err)
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}, {5}}, groups.ToSlice()); diff != "" {
		t.Errorf("grouped mismatch (-want +got):\n%s", diff)
	}
	scan := ops.ScanLeft(s, 0, sum, stack.FromSeq[int])
	assert.Equal(t, s.Len()+1, scan.Len())
}

func TestConcurrentReaders(t *testing.T) {
	s := stack.Range(0, 50)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.InsertAt(i, -1)
			if err != nil || r.Len() != 51 {
				t.Errorf("worker %d: unexpected result %v, %v", i, r.Len(), err)
			}
			_ = s.Cons(i).Reverse()
		}(i)
	}
	wg.Wait()
	assert.True(t, stack.Equal(s, stack.Range(0, 50)))
}
