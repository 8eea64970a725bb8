package arenalist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotVariants(t *testing.T) {
	u := unusedSlot[int](3)
	assert.Equal(t, SlotUnused, u.Kind())
	assert.False(t, u.Occupied())
	v, ok := u.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	next, ok := u.Next()
	assert.True(t, ok)
	assert.Equal(t, 3, next)
	assert.Equal(t, "Unused{next: 3}", u.String())

	o := occupiedSlot(42, NoIndex)
	assert.Equal(t, SlotOccupied, o.Kind())
	assert.True(t, o.Occupied())
	v, ok = o.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	next, ok = o.Next()
	assert.False(t, ok)
	assert.Equal(t, NoIndex, next)
	assert.Equal(t, "Occupied{value: 42, next: -1}", o.String())
}

func TestSlotKindString(t *testing.T) {
	tests := []struct {
		kind     SlotKind
		expected string
	}{
		{SlotUnused, "unused"},
		{SlotOccupied, "occupied"},
		{SlotKind(7), "SlotKind(7)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestThreadFree(t *testing.T) {
	assert.Equal(t, NoIndex, threadFree[int](nil))

	slots := []Slot[int]{occupiedSlot(1, 1), occupiedSlot(2, NoIndex)}
	assert.Equal(t, 0, threadFree(slots))
	assert.Equal(t, unusedSlot[int](1), slots[0])
	assert.Equal(t, unusedSlot[int](NoIndex), slots[1])
}
