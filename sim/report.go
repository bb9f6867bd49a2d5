// Flattens per-policy summaries into the comparative report: a structured
// document for downstream consumers plus a human-readable text rendering.
// Reported times are converted from clock hours to days.

package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// OrderRow is one order's completion record in days.
type OrderRow struct {
	OrderID       string  `json:"order_id"`
	CompletionDay float64 `json:"completion_day"`
	DueDay        float64 `json:"due_day"`
	TardinessDays float64 `json:"tardiness_days"`
	NumBatches    int     `json:"num_batches"`
}

// PolicyRow is the per-policy section of the comparison. A failed run is
// marked unavailable and carries the error cause instead of numbers.
type PolicyRow struct {
	Policy    string `json:"policy"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`

	MakespanDays       float64            `json:"makespan_days"`
	TotalTardinessDays float64            `json:"total_tardiness_days"`
	MeanTardinessDays  float64            `json:"mean_tardiness_days"`
	LateOrders         int                `json:"late_orders"`
	TotalOrders        int                `json:"total_orders"`
	Orders             []OrderRow         `json:"orders,omitempty"`
	Utilization        map[string]float64 `json:"utilization,omitempty"` // unit id -> 0..1
	Batches            []BatchDetail      `json:"batches,omitempty"`
}

// Bottleneck names the most utilized unit and the most constraining orders
// under the best-performing policy.
type Bottleneck struct {
	EquipmentID        string   `json:"equipment_id"`
	Utilization        float64  `json:"utilization"`
	ConstrainingOrders []string `json:"constraining_orders"`
}

// ComparisonReport is the full output of one configuration run across all
// dispatch policies.
type ComparisonReport struct {
	Policies   []PolicyRow `json:"policies"`
	BestPolicy string      `json:"best_policy,omitempty"` // lowest total tardiness
	Bottleneck *Bottleneck `json:"bottleneck,omitempty"`
}

// BuildReport converts policy results into the comparative report.
// hoursPerDay is the same conversion factor the configuration used for due
// dates.
func BuildReport(results []PolicyResult, hoursPerDay float64) *ComparisonReport {
	report := &ComparisonReport{}
	bestIdx := -1

	for _, res := range results {
		if res.Err != nil {
			report.Policies = append(report.Policies, PolicyRow{Policy: res.Policy, Error: res.Err.Error()})
			continue
		}
		row := summaryToRow(res.Summary, hoursPerDay)
		report.Policies = append(report.Policies, row)
		idx := len(report.Policies) - 1
		if bestIdx < 0 || row.TotalTardinessDays < report.Policies[bestIdx].TotalTardinessDays {
			bestIdx = idx
		}
	}

	if bestIdx >= 0 {
		best := report.Policies[bestIdx]
		report.BestPolicy = best.Policy
		report.Bottleneck = findBottleneck(best)
	}
	return report
}

func summaryToRow(s *Summary, hoursPerDay float64) PolicyRow {
	row := PolicyRow{
		Policy:             s.Policy,
		Available:          true,
		MakespanDays:       round2(s.MakespanHours / hoursPerDay),
		TotalTardinessDays: round2(s.TotalTardinessHours / hoursPerDay),
		MeanTardinessDays:  round2(s.MeanTardinessHours / hoursPerDay),
		LateOrders:         s.LateOrders,
		TotalOrders:        s.TotalOrders,
		Utilization:        make(map[string]float64, len(s.Equipment)),
		Batches:            s.Batches,
	}
	for _, om := range s.Orders {
		row.Orders = append(row.Orders, OrderRow{
			OrderID:       om.OrderID,
			CompletionDay: round2(om.Completion / hoursPerDay),
			DueDay:        round2(om.DueDate / hoursPerDay),
			TardinessDays: round2(om.Tardiness / hoursPerDay),
			NumBatches:    om.NumBatches,
		})
	}
	for _, em := range s.Equipment {
		row.Utilization[em.ID] = round2(em.Utilization)
	}
	return row
}

// findBottleneck picks the most utilized unit and the two highest-tardiness
// orders from the best policy's row.
func findBottleneck(row PolicyRow) *Bottleneck {
	b := &Bottleneck{}
	ids := make([]string, 0, len(row.Utilization))
	for id := range row.Utilization {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if row.Utilization[id] > b.Utilization {
			b.EquipmentID = id
			b.Utilization = row.Utilization[id]
		}
	}

	late := append([]OrderRow(nil), row.Orders...)
	sort.SliceStable(late, func(i, j int) bool { return late[i].TardinessDays > late[j].TardinessDays })
	for i := 0; i < len(late) && i < 2; i++ {
		if late[i].TardinessDays > 0 {
			b.ConstrainingOrders = append(b.ConstrainingOrders, late[i].OrderID)
		}
	}
	return b
}

// Text renders the flattened comparison table, one line per policy, with
// the best performer starred.
func (r *ComparisonReport) Text() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString("COMPARISON SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-18s %12s %12s %12s\n", "Policy", "Makespan", "Tardiness", "Late Orders"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, row := range r.Policies {
		if !row.Available {
			sb.WriteString(fmt.Sprintf("%-18s %s\n", row.Policy, "unavailable: "+row.Error))
			continue
		}
		star := ""
		if row.Policy == r.BestPolicy {
			star = "  *best"
		}
		sb.WriteString(fmt.Sprintf("%-18s %9.2f d  %9.2f d  %5d / %d%s\n",
			row.Policy, row.MakespanDays, row.TotalTardinessDays, row.LateOrders, row.TotalOrders, star))
	}

	for _, row := range r.Policies {
		if !row.Available || len(row.Orders) == 0 {
			continue
		}
		sb.WriteString("\n" + row.Policy + " order completion:\n")
		for _, o := range row.Orders {
			status := "on time"
			if o.TardinessDays > 0 {
				status = fmt.Sprintf("LATE by %.1fd", o.TardinessDays)
			}
			sb.WriteString(fmt.Sprintf("  Order %-6s day %6.2f (due %5.2f, %d batches) %s\n",
				o.OrderID, o.CompletionDay, o.DueDay, o.NumBatches, status))
		}
	}

	if r.Bottleneck != nil && r.Bottleneck.EquipmentID != "" {
		sb.WriteString(fmt.Sprintf("\nBottleneck: %s at %.0f%% utilization",
			r.Bottleneck.EquipmentID, r.Bottleneck.Utilization*100))
		if len(r.Bottleneck.ConstrainingOrders) > 0 {
			sb.WriteString(fmt.Sprintf(", constraining orders %s",
				strings.Join(r.Bottleneck.ConstrainingOrders, ", ")))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
