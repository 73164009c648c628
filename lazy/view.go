package lazy

import (
	"iter"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/fpcoll"
	"github.com/npillmayer/fpcoll/ops"
)

// State is the materialization state of a view.
type State int32

// A view starts Unmaterialized. Materialized and Failed are final.
const (
	Unmaterialized State = iota
	Materializing
	Materialized
	Failed
)

func (s State) String() string {
	switch s {
	case Unmaterialized:
		return "unmaterialized"
	case Materializing:
		return "materializing"
	case Materialized:
		return "materialized"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// View is a lazy pipeline producing elements of type T.
// The zero value is an empty view.
type View[T any] struct {
	run   producer[T]
	chain *opnode  // pending operations, last one first
	memo  *memo[T] // shared by all copies of a view
	err   error    // argument error detected at construction time
}

// sink receives an element together with the ordinal of the source element it
// originates from.
type sink[T any] func(pos int, x T) error

// producer pushes elements into a sink until exhausted or until the sink returns
// an error.
type producer[T any] func(c *cursor, emit sink[T]) error

// cursor tracks the progress of a single evaluation run.
type cursor struct {
	pulled int  // number of source elements pulled so far
	busy   bool // an element is travelling down the pipeline
}

// push hands the next source element to emit.
func push[T any](c *cursor, emit sink[T], x T) error {
	pos := c.pulled
	c.pulled++
	c.busy = true
	err := emit(pos, x)
	c.busy = false
	return err
}

// position is the ordinal of the source element currently processed, or of the
// element being produced by the source.
func (c *cursor) position() int {
	if c.busy {
		return c.pulled - 1
	}
	return c.pulled
}

// opnode is a link in the chain of operations of a view. Chains are shared
// between a view and the views derived from it.
type opnode struct {
	name string
	prev *opnode
}

type memo[T any] struct {
	mu    sync.Mutex // held while materializing
	state atomic.Int32
	value []T
	err   error
}

func (m *memo[T]) State() State {
	if m == nil {
		return Unmaterialized
	}
	return State(m.state.Load())
}

// stopSignal ends a run early. Every stage which stops must use a signal of its
// own, so it can tell its own signal from one of stages downstream.
type stopSignal struct {
	stage string
}

func (s *stopSignal) Error() string {
	return "lazy: " + s.stage + " stopped pipeline"
}

// --- Sources ---------------------------------------------------------------

func source[T any](name string, run producer[T]) View[T] {
	return View[T]{run: run, chain: &opnode{name: name}, memo: &memo[T]{}}
}

func derive[T, R any](v View[T], name string, run producer[R]) View[R] {
	return View[R]{
		run:   run,
		chain: &opnode{name: name, prev: v.chain},
		memo:  &memo[R]{},
		err:   v.err,
	}
}

func seqProducer[T any](seq iter.Seq[T]) producer[T] {
	return func(c *cursor, emit sink[T]) error {
		for x := range seq {
			if err := push(c, emit, x); err != nil {
				return err
			}
		}
		return nil
	}
}

// FromSeq wraps a sequence. Every element is pulled from seq at most once and is
// recorded for later evaluations of the view and of views derived from it.
func FromSeq[T any](seq iter.Seq[T]) View[T] {
	return source("seq", tapeProducer(newTape(seq)))
}

// FromSlice wraps a copy of xs.
func FromSlice[T any](xs []T) View[T] {
	cp := append([]T(nil), xs...)
	return source("slice", seqProducer(ops.Slice[T](cp).All()))
}

// Of creates a view of values.
func Of[T any](values ...T) View[T] {
	return FromSlice(values)
}

// FromIterable creates a view on the elements of a container, e.g. of a
// persistent stack. Like FromSeq, it pulls every element at most once: after an
// element has been seen by any evaluation, later changes of a mutable container at
// this position are not reflected by the view.
func FromIterable[T any](src ops.Iterable[T]) View[T] {
	return source("iterable", tapeProducer(newTape(src.All())))
}

// FromFallible wraps a source which may fail. It should call yield for every element
// and stop if yield returns false. If src returns an error, evaluation of the
// view fails with an fpcoll.EvaluationError. src is called at most once, elements
// are recorded as with FromSeq.
func FromFallible[T any](src func(yield func(T) bool) error) View[T] {
	return source("fallible", tapeProducer(fallibleTape(src)))
}

// Iterate creates the infinite view [seed, f(seed), f(f(seed)), …].
// f is called only when the next element is requested, and again for every
// evaluation which is not satisfied by a cache; it should be free of side effects.
func Iterate[T any](seed T, f func(T) T) View[T] {
	return source("iterate", seqProducer(func(yield func(T) bool) {
		for x := seed; yield(x); x = f(x) {
		}
	}))
}

// Generate creates an infinite view of elements produced by calls to s.
// s is called once per element, however often the view is evaluated.
func Generate[T any](s func() T) View[T] {
	return source("generate", tapeProducer(newTape(func(yield func(T) bool) {
		for yield(s()) {
		}
	})))
}

// Unfold creates a view by repeatedly calling f, starting with seed. f returns the
// next element plus the seed for the next call, or false to stop.
func Unfold[T, U any](seed U, f func(U) (T, U, bool)) View[T] {
	return source("unfold", seqProducer(func(yield func(T) bool) {
		for s := seed; ; {
			x, next, ok := f(s)
			if !ok || !yield(x) {
				return
			}
			s = next
		}
	}))
}

// Range creates the view [start … end-1].
func Range(start, end int) View[int] {
	return source("range", seqProducer(func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}))
}

// --- Inspection ------------------------------------------------------------

// State returns the materialization state of v.
func (v View[T]) State() State {
	return v.memo.State()
}

// Ops lists the names of the operations of v, source first.
func (v View[T]) Ops() []string {
	var names []string
	for op := v.chain; op != nil; op = op.prev {
		names = append(names, op.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

func (v View[T]) String() string {
	return "View[" + strings.Join(v.Ops(), " → ") + "](" + v.State().String() + ")"
}

// --- Evaluation ------------------------------------------------------------

// pull runs the pipeline of v, pushing its elements into emit. A materialized view
// replays its cached elements, a failed one repeats its failure.
func (v View[T]) pull(c *cursor, emit sink[T]) error {
	switch v.State() {
	case Materialized:
		for _, x := range v.memo.value {
			if err := push(c, emit, x); err != nil {
				return err
			}
		}
		return nil
	case Failed:
		return v.memo.err
	}
	if v.run == nil {
		return nil
	}
	return v.run(c, emit)
}

// materialize evaluates v at most once and returns the (shared) result.
// Clients must not modify the slice returned.
func (v View[T]) materialize() ([]T, error) {
	if v.err != nil {
		return nil, v.err
	}
	m := v.memo
	if m == nil {
		return v.evaluate()
	}
	if xs, done, err := m.result(); done {
		return xs, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if xs, done, err := m.result(); done {
		return xs, err
	}
	m.state.Store(int32(Materializing))
	tracer().Debugf("materializing %v", v.Ops())
	xs, err := v.evaluate()
	if err != nil {
		tracer().Debugf("materialization of %v failed: %v", v.Ops(), err)
		m.err = err
		m.state.Store(int32(Failed))
		return nil, err
	}
	m.value = xs
	m.state.Store(int32(Materialized))
	tracer().Debugf("materialized %v with %d elements", v.Ops(), len(xs))
	return xs, nil
}

func (m *memo[T]) result() ([]T, bool, error) {
	switch State(m.state.Load()) {
	case Materialized:
		return m.value, true, nil
	case Failed:
		return nil, true, m.err
	}
	return nil, false, nil
}

// evaluate runs the pipeline of v to completion, collecting its elements.
func (v View[T]) evaluate() ([]T, error) {
	var xs []T
	err := v.run0(func(_ int, x T) error {
		xs = append(xs, x)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return xs, nil
}

// run0 runs the pipeline of v in a fresh cursor. Panics of client functions are
// turned into evaluation errors.
func (v View[T]) run0(emit sink[T]) (err error) {
	c := &cursor{}
	defer func() {
		if r := recover(); r != nil {
			err = &fpcoll.EvaluationError{
				Position: c.position(),
				Cause:    fpcoll.PanicError{Value: r},
			}
		}
	}()
	return v.pull(c, emit)
}

// prefix evaluates v until n elements have been produced, without caching.
func (v View[T]) prefix(n int) ([]T, error) {
	if v.err != nil {
		return nil, v.err
	}
	if xs, done, err := v.memoResult(); done {
		if err != nil {
			return nil, err
		}
		return xs[:min(n, len(xs))], nil
	}
	if n <= 0 {
		return nil, nil
	}
	xs := make([]T, 0, n)
	stop := &stopSignal{stage: "prefix"}
	err := v.run0(func(_ int, x T) error {
		xs = append(xs, x)
		if len(xs) == n {
			return stop
		}
		return nil
	})
	if err != nil && err != error(stop) {
		return nil, err
	}
	return xs, nil
}

func (v View[T]) memoResult() ([]T, bool, error) {
	if v.memo == nil {
		return nil, false, nil
	}
	return v.memo.result()
}
