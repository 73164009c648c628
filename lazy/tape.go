package lazy

import (
	"iter"
	"runtime"
	"sync"

	"github.com/npillmayer/fpcoll"
)

// tape pulls a sequence at most once. Elements are recorded as they are pulled, and
// later runs replay the recording before pulling further. Runs may happen
// concurrently, therefore every access is serialized.
type tape[T any] struct {
	mu      sync.Mutex
	seq     iter.Seq[T]
	next    func() (T, bool)
	stop    func()
	buf     []T
	done    bool
	failure *error      // set by fallible sources when they end
	broken  interface{} // panic value of the sequence
}

func newTape[T any](seq iter.Seq[T]) *tape[T] {
	return &tape[T]{seq: seq, failure: new(error)}
}

// fallibleTape records a source which may fail after its last element.
func fallibleTape[T any](src func(yield func(T) bool) error) *tape[T] {
	failure := new(error)
	seq := func(yield func(T) bool) {
		stopped := false
		err := src(func(x T) bool {
			if stopped { // src ignored a previous stop
				return false
			}
			stopped = !yield(x)
			return !stopped
		})
		if !stopped {
			*failure = err
		}
	}
	return &tape[T]{seq: seq, failure: failure}
}

// at returns element i. ok is false if the sequence ends before i. A source error
// is reported once the recording is exhausted.
func (t *tape[T]) at(i int) (x T, ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < len(t.buf) {
		return t.buf[i], true, nil
	}
	if t.broken != nil {
		panic(t.broken)
	}
	if t.done {
		return x, false, *t.failure
	}
	if t.next == nil {
		t.next, t.stop = iter.Pull(t.seq)
		// The cleanup must not reference t, and the coroutine does not.
		runtime.AddCleanup(t, func(stop func()) { stop() }, t.stop)
	}
	defer func() {
		if r := recover(); r != nil {
			t.broken, t.done = r, true
			panic(r)
		}
	}()
	if x, ok = t.next(); !ok {
		tracer().Debugf("source exhausted after %d elements", len(t.buf))
		t.done = true
		t.stop()
		return x, false, *t.failure
	}
	t.buf = append(t.buf, x)
	return x, true, nil
}

// tapeProducer pushes the elements of a tape, pulling new ones as needed.
func tapeProducer[T any](t *tape[T]) producer[T] {
	return func(c *cursor, emit sink[T]) error {
		for i := 0; ; i++ {
			x, ok, err := t.at(i)
			if err != nil {
				return &fpcoll.EvaluationError{Position: c.pulled, Cause: err}
			}
			if !ok {
				return nil
			}
			if err := push(c, emit, x); err != nil {
				return err
			}
		}
	}
}
