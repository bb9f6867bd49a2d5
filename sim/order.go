// Defines the Batch, the unit of work that travels through a recipe, and
// the expansion of customer orders into batches sized to the product's
// batch size. The last chunk takes the remainder; exact multiples produce
// no partial batch.

package sim

import (
	"fmt"
	"math"
)

// BatchState is the lifecycle state of a batch. Transitions are driven
// exclusively by clock events; a batch never self-transitions.
type BatchState string

const (
	BatchPending      BatchState = "pending"       // generated, not yet requesting equipment
	BatchWaiting      BatchState = "waiting"       // queued on a specific unit
	BatchInChangeover BatchState = "in-changeover" // unit assigned, setup time elapsing
	BatchInProcess    BatchState = "in-process"    // processing time elapsing
	BatchCompleted    BatchState = "completed"     // cursor exhausted
)

// Batch is a sub-quantity of an order processed as one indivisible unit
// through the recipe. It carries a private cursor over the product's steps.
type Batch struct {
	ID        string
	OrderID   string
	Product   *Product
	Size      float64
	DueDate   float64 // hours
	Priority  int     // inherited from the order, 1 = most urgent
	Seq       int     // global creation sequence, the deterministic tie-break
	CreatedAt float64

	Cursor int // index into Product.Steps; monotonically increasing
	State  BatchState

	StartTime       float64 // first assignment to equipment
	EndTime         float64 // completion of the last step
	ChangeoverHours float64 // accumulated setup time
	ProcessHours    float64 // accumulated nominal processing time

	started bool
	unit    *Equipment // unit currently held or waited on
}

// CurrentStep returns the recipe step at the cursor, or ok=false when the
// batch has finished its recipe.
func (b *Batch) CurrentStep() (Step, bool) {
	if b.Cursor >= len(b.Product.Steps) {
		return Step{}, false
	}
	return b.Product.Steps[b.Cursor], true
}

// RemainingWork sums the nominal durations of the not-yet-completed steps,
// the current one included. Changeover is excluded from this estimate.
func (b *Batch) RemainingWork() float64 {
	var total float64
	for _, st := range b.Product.Steps[min(b.Cursor, len(b.Product.Steps)):] {
		total += st.Duration
	}
	return total
}

// Done reports whether the cursor has passed the last recipe step.
func (b *Batch) Done() bool {
	return b.Cursor >= len(b.Product.Steps)
}

func (b *Batch) String() string {
	return fmt.Sprintf("%s(%s, %.0f, due=%.1fh)", b.ID, b.Product.ID, b.Size, b.DueDate)
}

// ExpandOrders splits every order into batches sized to its product's batch
// size, preserving order-list arrival order. All batches of one order
// inherit its due date and priority unchanged; the Seq field numbers
// batches globally in creation order.
func ExpandOrders(orders []OrderConfig, catalog *Catalog, hoursPerDay float64) ([]*Batch, error) {
	var batches []*Batch
	seq := 0
	for _, o := range orders {
		product, err := catalog.Product(o.ProductID)
		if err != nil {
			return nil, fmt.Errorf("order %q: %w", o.ID, err)
		}
		needed := int(math.Ceil(o.Quantity / product.BatchSize))
		for i := 0; i < needed; i++ {
			size := product.BatchSize
			if i == needed-1 {
				// the final batch takes whatever quantity is left
				size = o.Quantity - product.BatchSize*float64(needed-1)
			}
			batches = append(batches, &Batch{
				ID:       fmt.Sprintf("B%03d-O%s-P%s-%d", seq, o.ID, product.ID, i),
				OrderID:  o.ID,
				Product:  product,
				Size:     size,
				DueDate:  o.DueDateDays * hoursPerDay,
				Priority: o.Priority,
				Seq:      seq,
				State:    BatchPending,
			})
			seq++
		}
	}
	return batches, nil
}
