package sim

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResults() []PolicyResult {
	fifo := &Summary{
		Policy:              PolicyFIFO,
		MakespanHours:       48,
		TotalTardinessHours: 12,
		MeanTardinessHours:  6,
		LateOrders:          1,
		CompletedOrders:     2,
		TotalOrders:         2,
		ElapsedHours:        48,
		Orders: []OrderMetrics{
			{OrderID: "1", Completion: 48, DueDate: 36, Tardiness: 12, NumBatches: 2},
			{OrderID: "2", Completion: 24, DueDate: 24, Tardiness: 0, NumBatches: 1},
		},
		Equipment: []EquipmentMetrics{
			{ID: "D-201", Type: "Dryer", BusyHours: 40, IdleHours: 8, Utilization: 40.0 / 48.0},
			{ID: "R-101", Type: "Reactor", BusyHours: 12, IdleHours: 36, Utilization: 0.25},
		},
	}
	edd := &Summary{
		Policy:              PolicyEDD,
		MakespanHours:       48,
		TotalTardinessHours: 6,
		MeanTardinessHours:  3,
		LateOrders:          1,
		CompletedOrders:     2,
		TotalOrders:         2,
		ElapsedHours:        48,
		Orders: []OrderMetrics{
			{OrderID: "1", Completion: 42, DueDate: 36, Tardiness: 6, NumBatches: 2},
			{OrderID: "2", Completion: 24, DueDate: 24, Tardiness: 0, NumBatches: 1},
		},
		Equipment: fifo.Equipment,
	}
	return []PolicyResult{
		{Policy: PolicyFIFO, Summary: fifo},
		{Policy: PolicyEDD, Summary: edd},
		{Policy: PolicyCriticalRatio, Err: errors.New("boom")},
	}
}

func TestBuildReport_BestPolicyByLowestTardiness(t *testing.T) {
	report := BuildReport(sampleResults(), 24)

	assert.Equal(t, PolicyEDD, report.BestPolicy)
	assert.Len(t, report.Policies, 3)
	assert.True(t, report.Policies[0].Available)
	assert.Equal(t, 2.0, report.Policies[0].MakespanDays)
	assert.Equal(t, 0.5, report.Policies[0].TotalTardinessDays)
}

func TestBuildReport_FailedPolicyMarkedUnavailable(t *testing.T) {
	report := BuildReport(sampleResults(), 24)

	cr := report.Policies[2]
	assert.False(t, cr.Available)
	assert.Equal(t, "boom", cr.Error)
	assert.Empty(t, cr.Orders)

	text := report.Text()
	assert.Contains(t, text, "unavailable: boom")
}

func TestBuildReport_BottleneckFromBestRun(t *testing.T) {
	report := BuildReport(sampleResults(), 24)

	if assert.NotNil(t, report.Bottleneck) {
		assert.Equal(t, "D-201", report.Bottleneck.EquipmentID)
		assert.Equal(t, []string{"1"}, report.Bottleneck.ConstrainingOrders)
	}
}

func TestReport_TextMarksBest(t *testing.T) {
	text := BuildReport(sampleResults(), 24).Text()

	assert.Contains(t, text, "COMPARISON SUMMARY")

	var bestLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "*best") {
			bestLine = line
		}
	}
	assert.True(t, strings.HasPrefix(bestLine, PolicyEDD), "best marker on the EDD row, got %q", bestLine)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	report := BuildReport(sampleResults(), 24)

	data, err := json.Marshal(report)
	assert.NoError(t, err)

	var decoded ComparisonReport
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.BestPolicy, decoded.BestPolicy)
	assert.Len(t, decoded.Policies, 3)
}
