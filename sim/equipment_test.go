package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipment_AssignReleaseCycle(t *testing.T) {
	u := NewEquipment(EquipmentConfig{ID: "R-1", Type: "Reactor", Capacity: 500})

	assert.True(t, u.IsIdle())
	assert.Equal(t, "", u.LastProduct())

	u.markBusy(2)
	assert.False(t, u.IsIdle())

	u.release(7, "A")
	assert.True(t, u.IsIdle())
	assert.Equal(t, "A", u.LastProduct())
	assert.Equal(t, 5.0, u.BusyHours())

	// double release is an engine defect
	assert.Panics(t, func() { u.release(8, "A") })
}

func TestEquipment_MarkBusyWhileBusyPanics(t *testing.T) {
	u := NewEquipment(EquipmentConfig{ID: "R-1", Type: "Reactor", Capacity: 500})
	u.markBusy(0)
	assert.Panics(t, func() { u.markBusy(1) })
}

func TestEquipment_BusyHoursAtIncludesOpenInterval(t *testing.T) {
	u := NewEquipment(EquipmentConfig{ID: "R-1", Type: "Reactor", Capacity: 500})
	u.markBusy(0)
	u.release(4, "A")
	u.markBusy(4)

	// still running at the 6h cutoff
	assert.Equal(t, 4.0, u.BusyHours())
	assert.Equal(t, 6.0, u.BusyHoursAt(6))
}

func TestEquipment_WaitListTake(t *testing.T) {
	u := NewEquipment(EquipmentConfig{ID: "R-1", Type: "Reactor", Capacity: 500})
	b0 := &Batch{ID: "b0"}
	b1 := &Batch{ID: "b1"}
	b2 := &Batch{ID: "b2"}
	u.enqueue(b0)
	u.enqueue(b1)
	u.enqueue(b2)

	assert.Equal(t, 3, u.WaitLen())

	u.take(b1)
	assert.Equal(t, []*Batch{b0, b2}, u.Waiting())

	// taking a batch that is not waiting is an engine defect
	assert.Panics(t, func() { u.take(b1) })
}
