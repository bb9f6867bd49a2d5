// Models one physical equipment unit as an exclusive resource with a
// "last product processed" marker for changeover lookup and a per-unit
// wait list of batches requesting it.

package sim

// EquipmentState is the busy/idle state of a unit.
type EquipmentState string

const (
	StateIdle EquipmentState = "idle"
	StateBusy EquipmentState = "busy"
)

// Equipment is one unit of a given type. Units of the same type are
// interchangeable for recipe purposes but each keeps its own wait list;
// a batch always requests one specific unit. All mutation happens inside
// the engine's event loop.
type Equipment struct {
	ID       string
	Type     string
	Capacity float64

	state       EquipmentState
	lastProduct string // empty until first use

	busyHours float64
	busySince float64

	waitList []*Batch
}

// NewEquipment creates an idle unit from configuration.
func NewEquipment(cfg EquipmentConfig) *Equipment {
	return &Equipment{ID: cfg.ID, Type: cfg.Type, Capacity: cfg.Capacity, state: StateIdle}
}

// IsIdle reports whether the unit can accept a batch.
func (e *Equipment) IsIdle() bool {
	return e.state == StateIdle
}

// LastProduct returns the identifier of the last product processed on this
// unit, or the empty string if the unit has never been used.
func (e *Equipment) LastProduct() string {
	return e.lastProduct
}

// BusyHours returns the accumulated busy time (changeover + processing)
// across completed assignments.
func (e *Equipment) BusyHours() float64 {
	return e.busyHours
}

// BusyHoursAt returns busy time as of now, including the open interval of
// an assignment still running when the horizon cuts the simulation off.
func (e *Equipment) BusyHoursAt(now float64) float64 {
	if e.state == StateBusy && now > e.busySince {
		return e.busyHours + (now - e.busySince)
	}
	return e.busyHours
}

// markBusy transitions Idle -> Busy at the given time.
func (e *Equipment) markBusy(now float64) {
	if e.state != StateIdle {
		panic("markBusy: unit " + e.ID + " is not idle")
	}
	e.state = StateBusy
	e.busySince = now
}

// release transitions Busy -> Idle, accounts the busy interval, and records
// the product just processed for the next changeover lookup.
func (e *Equipment) release(now float64, productID string) {
	if e.state != StateBusy {
		panic("release: unit " + e.ID + " is not busy")
	}
	e.busyHours += now - e.busySince
	e.lastProduct = productID
	e.state = StateIdle
}

// enqueue appends a batch to this unit's wait list. FIFO order is kept so
// that dispatch policies can fall back on stable creation-order ties.
func (e *Equipment) enqueue(b *Batch) {
	e.waitList = append(e.waitList, b)
}

// Waiting returns the unit's wait list. Callers must not reorder it; the
// dispatch policy picks an element and the engine removes it via take.
func (e *Equipment) Waiting() []*Batch {
	return e.waitList
}

// WaitLen returns the number of batches queued for this unit.
func (e *Equipment) WaitLen() int {
	return len(e.waitList)
}

// take removes the given batch from the wait list.
func (e *Equipment) take(b *Batch) {
	for i, w := range e.waitList {
		if w == b {
			e.waitList = append(e.waitList[:i], e.waitList[i+1:]...)
			return
		}
	}
	panic("take: batch " + b.ID + " not waiting on unit " + e.ID)
}
