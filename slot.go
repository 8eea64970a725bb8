package arenalist

import "fmt"

// NoIndex is the empty-indicator terminating both the used and free chains.
const NoIndex = -1

// SlotKind tags the variant held by a Slot.
type SlotKind uint8

const (
	// SlotUnused marks a slot on the free chain.
	SlotUnused SlotKind = iota
	// SlotOccupied marks a slot on the used chain carrying a value.
	SlotOccupied
)

func (k SlotKind) String() string {
	switch k {
	case SlotUnused:
		return "unused"
	case SlotOccupied:
		return "occupied"
	default:
		return fmt.Sprintf("SlotKind(%d)", uint8(k))
	}
}

// Slot is one cell of the arena. It is either Unused, linking to the next
// free slot, or Occupied, holding a value and linking to the next used slot.
// The value is only meaningful for occupied slots.
type Slot[T any] struct {
	kind  SlotKind
	next  int
	value T
}

func unusedSlot[T any](next int) Slot[T] {
	return Slot[T]{kind: SlotUnused, next: next}
}

func occupiedSlot[T any](value T, next int) Slot[T] {
	return Slot[T]{kind: SlotOccupied, next: next, value: value}
}

// Kind reports which variant the slot holds.
func (s *Slot[T]) Kind() SlotKind {
	return s.kind
}

// Occupied reports whether the slot holds a value.
func (s *Slot[T]) Occupied() bool {
	return s.kind == SlotOccupied
}

// Value returns the stored value. The second result is false for unused slots,
// in which case the zero value is returned.
func (s *Slot[T]) Value() (T, bool) {
	if s.kind != SlotOccupied {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Next returns the index of the following slot in whichever chain this slot
// belongs to. The second result is false at the end of the chain.
func (s *Slot[T]) Next() (int, bool) {
	if s.next == NoIndex {
		return NoIndex, false
	}
	return s.next, true
}

func (s *Slot[T]) String() string {
	if s.kind == SlotOccupied {
		return fmt.Sprintf("Occupied{value: %v, next: %d}", s.value, s.next)
	}
	return fmt.Sprintf("Unused{next: %d}", s.next)
}

// threadFree rewrites slots as a free chain in ascending index order and
// returns the new free head.
func threadFree[T any](slots []Slot[T]) int {
	n := len(slots)
	if n == 0 {
		return NoIndex
	}
	for i := 0; i < n-1; i++ {
		slots[i] = unusedSlot[T](i + 1)
	}
	slots[n-1] = unusedSlot[T](NoIndex)
	return 0
}
