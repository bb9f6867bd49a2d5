package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func comparisonConfig() *PlantConfig {
	return &PlantConfig{
		Equipment: []EquipmentConfig{
			{ID: "R-101", Type: "Reactor", Capacity: 500},
			{ID: "D-201", Type: "Dryer", Capacity: 200},
		},
		Products: []ProductConfig{
			{ID: "A", BatchSize: 100, Steps: []StepConfig{
				{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 4},
				{Name: "Drying", EquipmentType: "Dryer", DurationHours: 8},
			}},
		},
		Orders: []OrderConfig{
			{ID: "1", ProductID: "A", Quantity: 300, DueDateDays: 2, Priority: 2},
			{ID: "2", ProductID: "A", Quantity: 100, DueDateDays: 1, Priority: 1},
		},
		HoursPerDay: 24,
		HorizonDays: 30,
	}
}

func TestRunComparison_AllPoliciesProduceSummaries(t *testing.T) {
	results, err := RunComparison(comparisonConfig(), nil)
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	for i, name := range PolicyNames() {
		assert.Equal(t, name, results[i].Policy)
		assert.NoError(t, results[i].Err)
		if assert.NotNil(t, results[i].Summary) {
			assert.Equal(t, 2, results[i].Summary.CompletedOrders)
		}
	}
}

func TestRunComparison_InvalidConfigurationRejectedUpFront(t *testing.T) {
	cfg := comparisonConfig()
	cfg.Orders[0].Quantity = -5

	results, err := RunComparison(cfg, nil)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestRunComparison_FailedRunDoesNotAbortOthers(t *testing.T) {
	// an unknown policy name panics inside its own run; the other rows
	// must still carry summaries
	results, err := RunComparison(comparisonConfig(), []string{PolicyFIFO, "bogus", PolicyEDD})
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Summary)

	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Summary)
	assert.Contains(t, results[1].Err.Error(), "bogus")

	assert.NoError(t, results[2].Err)
	assert.NotNil(t, results[2].Summary)
}

func TestRunComparison_RunsAreIsolated(t *testing.T) {
	// repeated comparisons over the same config are bit-identical; no
	// state leaks between policy runs or invocations
	first, err := RunComparison(comparisonConfig(), nil)
	assert.NoError(t, err)
	second, err := RunComparison(comparisonConfig(), nil)
	assert.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Summary, second[i].Summary)
	}
}
