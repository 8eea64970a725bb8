// Package arenalist implements a generic singly-linked list stored in a
// preallocated, fixed-capacity arena.
//
// # Overview
//
// Instead of allocating every node on the heap, a List owns one slice of
// slots created by New. Two singly-linked index chains are threaded through
// that slice:
//
//   - the used chain, which is the logical list, read head first
//   - the free chain, holding the slots still available for insertion
//
// Each slot is tagged either Unused or Occupied, and every slot belongs to
// exactly one chain. Links are plain integer indices, with NoIndex ending a
// chain.
//
// # Basic Usage
//
//	l := arenalist.New[int](10)
//	if err := l.PushFront(10); err != nil {
//		return err
//	}
//	l.MustPushFront(20)
//
//	if h := l.Head(); h != nil {
//		v, _ := h.Value() // 20
//	}
//
//	for v := range l.All() {
//		fmt.Println(v) // 20, then 10
//	}
//
// # Capacity
//
// Capacity is fixed at construction. PushFront takes the first slot of the
// free chain in O(1); once the free chain is empty it returns an error
// matching ErrCapacityExhausted and leaves the list untouched. Reset puts
// every slot back on the free chain.
//
// # Iteration
//
// Iter and All start a fresh cursor at the current head each time they are
// called, so traversals are restartable and independent. Cursors read the
// arena live: do not call PushFront or Reset while a traversal is running.
//
// # Thread Safety
//
// A List is not safe for concurrent use. It is meant to be owned by a single
// goroutine.
//
// # Logging
//
// Lists log through logrus. By default events are discarded; pass
// WithLogger to observe construction, resets and rejected pushes.
package arenalist
