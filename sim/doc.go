// Package sim provides the discrete-event scheduling engine for a batch
// production plant (reactors, dryers, packagers) processing customer orders.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - order.go: Order expansion into Batches and the batch lifecycle
//     (Pending → Waiting → InChangeover → InProcess → Completed)
//   - event.go: Event types that drive the simulation (BatchArrival,
//     ChangeoverComplete, StepComplete, EquipmentFreed)
//   - simulator.go: The event loop, equipment assignment, and time accounting
//
// # Architecture
//
// A Simulator owns one policy run end to end: its own clock, heap-backed
// event queue, equipment pool, batches, and Metrics. Nothing is shared
// between policy runs except the immutable Catalog and ChangeoverMatrix.
// The comparison runner (runner.go) executes the three dispatch policies
// over the same configuration on separate goroutines and collects one
// Summary per policy; report.go flattens those into the comparative report.
//
// # Key Interfaces
//
// DispatchPolicy is the single extension point: given a freed equipment
// unit and the batches waiting for it, pick the next batch to admit.
// Implementations are stateless and re-evaluated at every equipment-free
// event. See dispatch.go for the FIFO, EDD and Critical Ratio variants.
package sim
