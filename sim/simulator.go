// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// queuedEvent pairs an event with its insertion sequence so that
// simultaneous events pop in schedule order. Determinism of the whole
// simulation rests on this tie-break.
type queuedEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by timestamp,
// ties broken by insertion sequence.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	ti, tj := eq[i].ev.Timestamp(), eq[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator owns one policy run: simulation clock, event queue, equipment
// pool, batches, and metrics. No state is shared with other runs except the
// immutable catalog and changeover matrix.
type Simulator struct {
	Clock   float64
	Horizon float64 // hours

	EventQueue EventQueue
	seq        int64 // insertion counter for the event tie-break

	Catalog     *Catalog
	Changeovers *ChangeoverMatrix
	Policy      DispatchPolicy

	Units       []*Equipment
	unitsByType map[string][]*Equipment

	Batches []*Batch
	Metrics *Metrics

	// remaining incomplete batches per order; an order closes only when
	// this count reaches zero
	openBatches map[string]int
	orderDue    map[string]float64
	totalOrders int

	drained bool
}

// NewSimulator builds a private simulation world for one policy run from a
// validated configuration. All batches arrive at t=0 in creation order.
func NewSimulator(cfg *PlantConfig, catalog *Catalog, changeovers *ChangeoverMatrix, policy DispatchPolicy) (*Simulator, error) {
	s := &Simulator{
		Horizon:     cfg.HorizonHours(),
		EventQueue:  make(EventQueue, 0),
		Catalog:     catalog,
		Changeovers: changeovers,
		Policy:      policy,
		unitsByType: make(map[string][]*Equipment),
		Metrics:     NewMetrics(),
		openBatches: make(map[string]int),
		orderDue:    make(map[string]float64),
		totalOrders: len(cfg.Orders),
	}

	for _, ec := range cfg.Equipment {
		unit := NewEquipment(ec)
		s.Units = append(s.Units, unit)
		s.unitsByType[unit.Type] = append(s.unitsByType[unit.Type], unit)
	}

	batches, err := ExpandOrders(cfg.Orders, catalog, cfg.HoursPerDay)
	if err != nil {
		return nil, err
	}
	s.Batches = batches

	for _, o := range cfg.Orders {
		s.orderDue[o.ID] = o.DueDateDays * cfg.HoursPerDay
	}
	for _, b := range batches {
		s.openBatches[b.OrderID]++
	}

	// seed the initial workload
	for _, b := range batches {
		s.Schedule(&BatchArrivalEvent{time: 0, Batch: b})
	}

	return s, nil
}

// Schedule pushes an event into the simulator's event queue. Scheduling
// into the past is an engine defect, unreachable from valid configurations,
// and treated as an assertion failure.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("schedule: event at %.4fh is before clock %.4fh", ev.Timestamp(), sim.Clock))
	}
	heap.Push(&sim.EventQueue, queuedEvent{ev: ev, seq: sim.seq})
	sim.seq++
}

// Run drives the event loop until the queue drains or the horizon is
// reached. Events scheduled beyond the horizon are simply never popped.
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		next := heap.Pop(&sim.EventQueue).(queuedEvent)
		if next.ev.Timestamp() >= sim.Horizon {
			sim.Clock = sim.Horizon
			logrus.Infof("[%07.2fh] Horizon reached, %d events unprocessed", sim.Clock, len(sim.EventQueue)+1)
			return
		}
		sim.Clock = next.ev.Timestamp()
		next.ev.Execute(sim)
	}
	sim.drained = true
	logrus.Infof("[%07.2fh] Simulation ended, event queue drained", sim.Clock)
}

// Elapsed returns the span used for utilization accounting: the final clock
// when the queue drained, the full horizon otherwise.
func (sim *Simulator) Elapsed() float64 {
	if sim.drained {
		return sim.Clock
	}
	return sim.Horizon
}

// Summary finalizes and returns this run's metrics.
func (sim *Simulator) Summary() *Summary {
	return sim.Metrics.Summarize(sim.Policy.Name(), sim.Elapsed(), sim.totalOrders, sim.Units)
}

// requestEquipment routes a batch to a unit of the type its current step
// requires. If one or more units are idle the batch starts immediately on
// the least-loaded one; otherwise it joins the wait list of the busy unit
// with the shortest queue.
func (sim *Simulator) requestEquipment(b *Batch, now float64) {
	step, ok := b.CurrentStep()
	if !ok {
		panic(fmt.Sprintf("requestEquipment: batch %s has no step at cursor %d", b.ID, b.Cursor))
	}
	units := sim.unitsByType[step.EquipmentType]
	if len(units) == 0 {
		// validation guarantees a unit for every recipe step
		panic(fmt.Sprintf("requestEquipment: no units of type %q", step.EquipmentType))
	}

	if unit := pickIdleUnit(units); unit != nil {
		sim.assign(unit, b, now)
		return
	}

	unit := pickWaitUnit(units)
	unit.enqueue(b)
	b.unit = unit
	b.State = BatchWaiting
	logrus.Debugf("[%07.2fh] %s waiting on %s (%d queued)", now, b.ID, unit.ID, unit.WaitLen())
}

// pickIdleUnit returns the idle unit with the least accumulated busy time,
// unit ID breaking ties, or nil when every unit is busy. Load leveling
// across interchangeable units.
func pickIdleUnit(units []*Equipment) *Equipment {
	var best *Equipment
	for _, u := range units {
		if !u.IsIdle() {
			continue
		}
		if best == nil || u.busyHours < best.busyHours || (u.busyHours == best.busyHours && u.ID < best.ID) {
			best = u
		}
	}
	return best
}

// pickWaitUnit returns the busy unit a batch should queue on: shortest wait
// list first, then least busy time, then unit ID.
func pickWaitUnit(units []*Equipment) *Equipment {
	best := units[0]
	for _, u := range units[1:] {
		switch {
		case u.WaitLen() != best.WaitLen():
			if u.WaitLen() < best.WaitLen() {
				best = u
			}
		case u.busyHours != best.busyHours:
			if u.busyHours < best.busyHours {
				best = u
			}
		case u.ID < best.ID:
			best = u
		}
	}
	return best
}

// assign starts a batch on an idle unit: the unit goes busy, changeover is
// charged when the unit's last product is set and differs from the batch's,
// and either the changeover-complete or the step-complete event is
// scheduled.
func (sim *Simulator) assign(unit *Equipment, b *Batch, now float64) {
	if _, ok := b.CurrentStep(); !ok {
		panic(fmt.Sprintf("assign: batch %s has no step at cursor %d", b.ID, b.Cursor))
	}

	unit.markBusy(now)
	b.unit = unit
	if !b.started {
		b.started = true
		b.StartTime = now
	}

	var changeover float64
	if unit.LastProduct() != "" && unit.LastProduct() != b.Product.ID {
		changeover = sim.Changeovers.Hours(unit.LastProduct(), b.Product.ID)
	}

	if changeover > 0 {
		b.State = BatchInChangeover
		b.ChangeoverHours += changeover
		logrus.Infof("[%07.2fh] %s -> %s, changeover %.2fh (%s -> %s)",
			now, b.ID, unit.ID, changeover, unit.LastProduct(), b.Product.ID)
		sim.Schedule(&ChangeoverCompleteEvent{time: now + changeover, Batch: b, Unit: unit})
		return
	}

	sim.beginProcessing(b, unit, now)
}

// beginProcessing moves a batch into InProcess on its assigned unit and
// schedules the step completion.
func (sim *Simulator) beginProcessing(b *Batch, unit *Equipment, now float64) {
	step, ok := b.CurrentStep()
	if !ok {
		panic(fmt.Sprintf("beginProcessing: batch %s has no step at cursor %d", b.ID, b.Cursor))
	}
	b.State = BatchInProcess
	b.ProcessHours += step.Duration
	sim.Schedule(&StepCompleteEvent{time: now + step.Duration, Batch: b, Unit: unit})
}

// completeStep handles a finished recipe step: the unit is released and its
// last product updated, the cursor advances, and the batch either re-enters
// the arrival path for its next step or completes. Order-level metrics are
// recorded once the last batch of an order completes.
func (sim *Simulator) completeStep(b *Batch, unit *Equipment, now float64) {
	unit.release(now, b.Product.ID)
	b.unit = nil
	b.Cursor++

	if !b.Done() {
		b.State = BatchPending
		sim.Schedule(&BatchArrivalEvent{time: now, Batch: b})
	} else {
		b.State = BatchCompleted
		b.EndTime = now
		sim.Metrics.RecordBatch(b)
		sim.openBatches[b.OrderID]--
		if sim.openBatches[b.OrderID] == 0 {
			sim.Metrics.CompleteOrder(b.OrderID, now, sim.orderDue[b.OrderID])
			logrus.Infof("[%07.2fh] Order %s complete", now, b.OrderID)
		}
	}

	sim.Schedule(&EquipmentFreedEvent{time: now, Unit: unit})
}

// dispatchFreedUnit asks the active policy for the next batch on a unit
// that just released. No-op when the unit was re-assigned at the same tick
// or its wait list is empty.
func (sim *Simulator) dispatchFreedUnit(unit *Equipment, now float64) {
	if !unit.IsIdle() || unit.WaitLen() == 0 {
		return
	}
	next := sim.Policy.Select(unit, unit.Waiting(), now)
	if next == nil {
		return
	}
	unit.take(next)
	sim.assign(unit, next, now)
}

// sortUnitsByID orders a unit slice by ID, for deterministic reporting.
func sortUnitsByID(units []*Equipment) []*Equipment {
	out := make([]*Equipment, len(units))
	copy(out, units)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
