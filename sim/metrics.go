// Tracks per-order, per-batch and per-equipment performance metrics for
// one policy run. A fresh instance is created per run; nothing leaks
// across policy comparisons.

package sim

import (
	"math"
	"sort"
)

// OrderMetrics is the completion record of one order. Times are in hours.
type OrderMetrics struct {
	OrderID    string  `json:"order_id"`
	Completion float64 `json:"completion_hours"`
	DueDate    float64 `json:"due_hours"`
	Tardiness  float64 `json:"tardiness_hours"` // max(0, completion - due)
	NumBatches int     `json:"num_batches"`
}

// BatchDetail is the timing record of one completed batch.
type BatchDetail struct {
	BatchID   string  `json:"batch_id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Start     float64 `json:"start_hours"`
	End       float64 `json:"end_hours"`
	Duration  float64 `json:"duration_hours"`
}

// EquipmentMetrics is the time accounting of one unit over the elapsed run.
type EquipmentMetrics struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	BusyHours   float64 `json:"busy_hours"`
	IdleHours   float64 `json:"idle_hours"`
	Utilization float64 `json:"utilization"` // busy / elapsed, 0..1
}

// Summary is the aggregated result of one policy run.
type Summary struct {
	Policy string `json:"policy"`

	MakespanHours       float64 `json:"makespan_hours"` // latest order completion
	TotalTardinessHours float64 `json:"total_tardiness_hours"`
	MeanTardinessHours  float64 `json:"mean_tardiness_hours"`
	LateOrders          int     `json:"late_orders"`
	CompletedOrders     int     `json:"completed_orders"`
	TotalOrders         int     `json:"total_orders"`
	ElapsedHours        float64 `json:"elapsed_hours"`

	Orders    []OrderMetrics     `json:"orders"`
	Equipment []EquipmentMetrics `json:"equipment"`
	Batches   []BatchDetail      `json:"batches"`
}

// Metrics accumulates observations while a run is in flight.
type Metrics struct {
	orders  []OrderMetrics
	batches []BatchDetail

	makespan       float64
	totalTardiness float64
	lateOrders     int
}

// NewMetrics returns an empty aggregator for one policy run.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordBatch records a completed batch's timing.
func (m *Metrics) RecordBatch(b *Batch) {
	m.batches = append(m.batches, BatchDetail{
		BatchID:   b.ID,
		OrderID:   b.OrderID,
		ProductID: b.Product.ID,
		Start:     b.StartTime,
		End:       b.EndTime,
		Duration:  b.EndTime - b.StartTime,
	})
}

// CompleteOrder records order-level completion once ALL batches of the
// order have completed; partial completion never closes an order.
func (m *Metrics) CompleteOrder(orderID string, completion, due float64) {
	tardiness := math.Max(0, completion-due)
	count := 0
	for _, bd := range m.batches {
		if bd.OrderID == orderID {
			count++
		}
	}
	m.orders = append(m.orders, OrderMetrics{
		OrderID:    orderID,
		Completion: completion,
		DueDate:    due,
		Tardiness:  tardiness,
		NumBatches: count,
	})
	m.totalTardiness += tardiness
	if tardiness > 0 {
		m.lateOrders++
	}
	if completion > m.makespan {
		m.makespan = completion
	}
}

// Summarize produces the final report for one run. Orders and equipment are
// sorted by identifier so repeated runs yield bit-identical output.
func (m *Metrics) Summarize(policy string, elapsed float64, totalOrders int, units []*Equipment) *Summary {
	s := &Summary{
		Policy:              policy,
		MakespanHours:       m.makespan,
		TotalTardinessHours: m.totalTardiness,
		LateOrders:          m.lateOrders,
		CompletedOrders:     len(m.orders),
		TotalOrders:         totalOrders,
		ElapsedHours:        elapsed,
	}
	if len(m.orders) > 0 {
		s.MeanTardinessHours = m.totalTardiness / float64(len(m.orders))
	}

	s.Orders = append([]OrderMetrics(nil), m.orders...)
	sort.Slice(s.Orders, func(i, j int) bool { return s.Orders[i].OrderID < s.Orders[j].OrderID })

	s.Batches = append([]BatchDetail(nil), m.batches...)
	sort.Slice(s.Batches, func(i, j int) bool { return s.Batches[i].BatchID < s.Batches[j].BatchID })

	for _, u := range sortUnitsByID(units) {
		busy := u.BusyHoursAt(elapsed)
		em := EquipmentMetrics{ID: u.ID, Type: u.Type, BusyHours: busy}
		if elapsed > 0 {
			em.IdleHours = elapsed - busy
			em.Utilization = busy / elapsed
		}
		s.Equipment = append(s.Equipment, em)
	}
	return s
}
