package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in hours) and an Execute method that
// advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// BatchArrivalEvent fires when a batch requests equipment for its current
// recipe step: at t=0 for freshly generated batches and immediately after
// each completed step for the next one.
type BatchArrivalEvent struct {
	time  float64
	Batch *Batch
}

// Timestamp returns the scheduled time of the BatchArrivalEvent.
func (e *BatchArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute assigns the batch to an idle unit of the required type, or parks
// it on a busy unit's wait list until a dispatch decision admits it.
func (e *BatchArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("[%07.2fh] << Arrival: %s step %d", e.time, e.Batch.ID, e.Batch.Cursor)
	sim.requestEquipment(e.Batch, e.time)
}

// ChangeoverCompleteEvent fires when a unit's setup time has elapsed and
// actual processing begins. Only scheduled when the changeover is nonzero.
type ChangeoverCompleteEvent struct {
	time  float64
	Batch *Batch
	Unit  *Equipment
}

// Timestamp returns the scheduled time of the ChangeoverCompleteEvent.
func (e *ChangeoverCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute moves the batch from InChangeover to InProcess and schedules the
// step completion after the nominal step duration.
func (e *ChangeoverCompleteEvent) Execute(sim *Simulator) {
	logrus.Infof("[%07.2fh] << ChangeoverComplete: %s on %s", e.time, e.Batch.ID, e.Unit.ID)
	sim.beginProcessing(e.Batch, e.Unit, e.time)
}

// StepCompleteEvent fires when a batch finishes its current recipe step.
type StepCompleteEvent struct {
	time  float64
	Batch *Batch
	Unit  *Equipment
}

// Timestamp returns the scheduled time of the StepCompleteEvent.
func (e *StepCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the unit, advances the batch cursor, re-queues the batch
// for its next step or completes it, and schedules the freed-unit dispatch
// decision. The arrival is scheduled before the freed event so that a batch
// whose next step needs the just-released unit can claim it this tick.
func (e *StepCompleteEvent) Execute(sim *Simulator) {
	logrus.Infof("[%07.2fh] << StepComplete: %s on %s", e.time, e.Batch.ID, e.Unit.ID)
	sim.completeStep(e.Batch, e.Unit, e.time)
}

// EquipmentFreedEvent fires after a unit is released; the active dispatch
// policy picks the next batch from the unit's wait list, if any.
type EquipmentFreedEvent struct {
	time float64
	Unit *Equipment
}

// Timestamp returns the scheduled time of the EquipmentFreedEvent.
func (e *EquipmentFreedEvent) Timestamp() float64 {
	return e.time
}

// Execute dispatches the next waiting batch onto the unit. A unit that was
// re-assigned between release and this event (by an arrival at the same
// tick) is skipped; so is a unit with an empty wait list, which stays idle.
func (e *EquipmentFreedEvent) Execute(sim *Simulator) {
	logrus.Infof("[%07.2fh] << EquipmentFreed: %s", e.time, e.Unit.ID)
	sim.dispatchFreedUnit(e.Unit, e.time)
}
