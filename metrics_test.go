package arenalist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListMetrics(t *testing.T) {
	l := New[int](4)

	// Test initial state
	m := l.Metrics()
	assert.Equal(t, ListMetrics{Capacity: 4, Free: 4}, m)

	l.MustPushFront(1)
	l.MustPushFront(2)
	assert.InDelta(t, 0.5, l.Utilization(), 1e-9)

	l.MustPushFront(3)
	l.MustPushFront(4)
	_ = l.PushFront(5)
	_ = l.PushFront(6)

	m = l.Metrics()
	assert.Equal(t, 4, m.Len)
	assert.Equal(t, 0, m.Free)
	assert.Equal(t, 4, m.Pushes)
	assert.Equal(t, 2, m.Rejected)
	assert.InDelta(t, 1.0, m.Utilization, 1e-9)

	// Test metrics after reset
	l.Reset()
	assert.Equal(t, ListMetrics{Capacity: 4, Free: 4}, l.Metrics())
}

func TestUtilizationZeroCapacity(t *testing.T) {
	l := New[int](0)
	assert.Zero(t, l.Utilization())
	_ = l.PushFront(1)
	assert.Equal(t, 1, l.Metrics().Rejected)
}
