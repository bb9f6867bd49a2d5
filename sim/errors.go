package sim

import "errors"

// Sentinel errors returned by configuration validation and catalog lookups.
// All of them surface before simulation time advances; once a run has
// started, the only failure mode left is an engine assertion (panic), which
// the comparison runner converts into a per-policy error row.
var (
	// ErrInvalidConfiguration covers structural problems in the plant
	// document: empty equipment list, non-positive quantities or due
	// dates, out-of-range priorities, and the like.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownProduct is returned when an order or a lookup references
	// a product identifier absent from the catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrUnknownEquipmentType is returned when a recipe step requires an
	// equipment type with no unit in the pool.
	ErrUnknownEquipmentType = errors.New("unknown equipment type")

	// ErrMissingChangeover is returned only in strict mode, when a pair
	// of products reachable on the same unit has no configured entry.
	// The permissive default treats missing entries as zero cost.
	ErrMissingChangeover = errors.New("missing changeover entry")
)
