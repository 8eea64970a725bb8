package arenalist

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrCapacityExhausted is returned by PushFront when every slot of the
// arena is in use.
var ErrCapacityExhausted = errors.New("capacity exhausted")

var discardLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// Option configures a List at construction time.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used for list events. A nil logger keeps the
// default, which discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// List is a singly-linked list backed by a fixed arena. Not goroutine-safe.
// The zero value is an empty list with capacity zero.
type List[T any] struct {
	slots    []Slot[T]
	head     int
	freeHead int
	length   int

	pushes   int
	rejected int

	log logrus.FieldLogger
}

// New creates a list able to hold capacity elements. All slots start on the
// free chain in ascending order. A negative capacity is treated as zero.
func New[T any](capacity int, opts ...Option) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	o := options{log: discardLogger}
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{
		slots: make([]Slot[T], capacity),
		head:  NoIndex,
		log:   o.log,
	}
	l.freeHead = threadFree(l.slots)
	l.log.WithField("capacity", capacity).Debug("arenalist: created")
	return l
}

// PushFront inserts value as the new head of the list. It fails with an
// error wrapping ErrCapacityExhausted when no free slot remains, leaving the
// list unchanged.
func (l *List[T]) PushFront(value T) error {
	slot, ok := l.popFree()
	if !ok {
		l.rejected++
		l.logger().WithFields(logrus.Fields{
			"capacity": len(l.slots),
			"len":      l.length,
		}).Warn("arenalist: push front rejected, arena full")
		return errors.Wrapf(ErrCapacityExhausted, "arenalist: push front on full list (capacity %d)", len(l.slots))
	}

	l.slots[slot] = occupiedSlot(value, l.head)
	l.head = slot
	l.length++
	l.pushes++
	return nil
}

// MustPushFront is like PushFront but panics when the arena is full.
func (l *List[T]) MustPushFront(value T) {
	if err := l.PushFront(value); err != nil {
		panic(err)
	}
}

// popFree detaches the first slot of the free chain.
func (l *List[T]) popFree() (int, bool) {
	if l.freeHead == NoIndex || len(l.slots) == 0 {
		return NoIndex, false
	}
	slot := l.freeHead
	l.freeHead = l.slots[slot].next
	return slot, true
}

// Head returns the head slot, or nil if the list is empty. The pointer
// refers into the arena and stays valid for the lifetime of the list.
func (l *List[T]) Head() *Slot[T] {
	if l.length == 0 || l.head == NoIndex {
		return nil
	}
	return &l.slots[l.head]
}

// Front returns the value at the head of the list.
func (l *List[T]) Front() (T, bool) {
	if h := l.Head(); h != nil {
		return h.Value()
	}
	var zero T
	return zero, false
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Cap returns the fixed number of slots in the arena.
func (l *List[T]) Cap() int {
	return len(l.slots)
}

// Free returns the number of slots still available to PushFront.
func (l *List[T]) Free() int {
	return len(l.slots) - l.length
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Full reports whether the next PushFront would fail.
func (l *List[T]) Full() bool {
	return l.freeHead == NoIndex || len(l.slots) == 0
}

// Reset empties the list and returns every slot to the free chain in
// ascending order. Stored values are released to the garbage collector.
func (l *List[T]) Reset() {
	l.freeHead = threadFree(l.slots)
	l.head = NoIndex
	l.length = 0
	l.pushes = 0
	l.rejected = 0
	l.logger().WithField("capacity", len(l.slots)).Debug("arenalist: reset")
}

// Iter returns a new cursor positioned at the current head.
//
// The list must not be mutated while the cursor is in use.
func (l *List[T]) Iter() *Iterator[T] {
	head := l.head
	if l.length == 0 {
		head = NoIndex
	}
	return &Iterator[T]{slots: l.slots, cur: head}
}

// All returns an iterator over the values from head to tail, most recently
// pushed first. Each call starts an independent traversal.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(*v) {
				return
			}
		}
	}
}

// Values copies the list contents, head first, into a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List[T]) logger() logrus.FieldLogger {
	if l.log == nil {
		return discardLogger
	}
	return l.log
}

// Iterator walks the used chain of a List. It holds a read-only view of the
// arena; pushing to the list while iterating gives undefined results.
type Iterator[T any] struct {
	slots []Slot[T]
	cur   int
}

// Next returns a pointer to the next value, or false once the chain ends.
// Reaching an unused or out-of-range slot also ends the traversal.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.cur < 0 || it.cur >= len(it.slots) {
		it.cur = NoIndex
		return nil, false
	}
	s := &it.slots[it.cur]
	if s.kind != SlotOccupied {
		it.cur = NoIndex
		return nil, false
	}
	it.cur = s.next
	return &s.value, true
}
