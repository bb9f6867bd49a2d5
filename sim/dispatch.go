// Dispatch policies decide, at each equipment-free event, which waiting
// batch a unit should serve next. Policies are stateless comparators
// re-evaluated fresh every time: due-date proximity and remaining work
// both shift with simulation time, so no global order is precomputed.

package sim

import "fmt"

// Policy names accepted by NewDispatchPolicy.
const (
	PolicyFIFO          = "fifo"
	PolicyEDD           = "edd"
	PolicyCriticalRatio = "critical-ratio"
)

// DispatchPolicy selects the next batch for a freed equipment unit from
// the batches waiting on it. Returns nil when the wait set is empty.
// Implementations MUST NOT modify the batches or the slice.
type DispatchPolicy interface {
	Name() string
	Select(unit *Equipment, waiting []*Batch, now float64) *Batch
}

// selectBy returns the waiting batch for which less reports it should run
// before every other. less must be a strict ordering; all policies end on
// the creation sequence, so no two batches ever compare equal.
func selectBy(waiting []*Batch, less func(a, b *Batch) bool) *Batch {
	var best *Batch
	for _, b := range waiting {
		if best == nil || less(b, best) {
			best = b
		}
	}
	return best
}

// FIFOPolicy orders by priority (1 = most urgent), then due date, then
// creation order. "First in" follows the documented product behavior of
// priority-then-due-date rather than strict arrival order.
type FIFOPolicy struct{}

func (FIFOPolicy) Name() string { return PolicyFIFO }

func (FIFOPolicy) Select(_ *Equipment, waiting []*Batch, _ float64) *Batch {
	return selectBy(waiting, func(a, b *Batch) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		return a.Seq < b.Seq
	})
}

// EDDPolicy orders by due date alone, creation order breaking ties.
type EDDPolicy struct{}

func (EDDPolicy) Name() string { return PolicyEDD }

func (EDDPolicy) Select(_ *Equipment, waiting []*Batch, _ float64) *Batch {
	return selectBy(waiting, func(a, b *Batch) bool {
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		return a.Seq < b.Seq
	})
}

// CriticalRatioPolicy orders by (due date - now) / remaining processing
// time, lower ratio first. A batch with zero remaining work (last step
// already instantaneous) falls back to the due-date delta alone to avoid
// dividing by zero.
type CriticalRatioPolicy struct{}

func (CriticalRatioPolicy) Name() string { return PolicyCriticalRatio }

func (CriticalRatioPolicy) Select(_ *Equipment, waiting []*Batch, now float64) *Batch {
	key := func(b *Batch) float64 {
		slack := b.DueDate - now
		remaining := b.RemainingWork()
		if remaining <= 0 {
			return slack
		}
		return slack / remaining
	}
	return selectBy(waiting, func(a, b *Batch) bool {
		ka, kb := key(a), key(b)
		if ka != kb {
			return ka < kb
		}
		return a.Seq < b.Seq
	})
}

// PolicyNames lists the valid dispatch policy names in comparison order.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyEDD, PolicyCriticalRatio}
}

// IsValidPolicy reports whether name maps to a dispatch policy.
func IsValidPolicy(name string) bool {
	switch name {
	case PolicyFIFO, PolicyEDD, PolicyCriticalRatio:
		return true
	}
	return false
}

// NewDispatchPolicy creates a DispatchPolicy by name.
// Panics on unrecognized names; the comparison runner converts the panic
// into a failed result row for that policy.
func NewDispatchPolicy(name string) DispatchPolicy {
	switch name {
	case PolicyFIFO:
		return FIFOPolicy{}
	case PolicyEDD:
		return EDDPolicy{}
	case PolicyCriticalRatio:
		return CriticalRatioPolicy{}
	default:
		panic(fmt.Sprintf("unknown dispatch policy %q", name))
	}
}
