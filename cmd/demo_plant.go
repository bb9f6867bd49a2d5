package cmd

import "github.com/plantsim/plantsim/sim"

// DemoPlant returns the built-in example configuration: two reactors, one
// dryer, one packager, three products, and six orders sized to stress the
// dryer. Used by `plantsim run --demo` to try the simulator without
// writing a plant document.
func DemoPlant() *sim.PlantConfig {
	return &sim.PlantConfig{
		Equipment: []sim.EquipmentConfig{
			{ID: "R-101", Type: "Reactor", Capacity: 500},
			{ID: "R-102", Type: "Reactor", Capacity: 500},
			{ID: "D-201", Type: "Dryer", Capacity: 200},
			{ID: "P-301", Type: "Packager", Capacity: 100},
		},
		Products: []sim.ProductConfig{
			{ID: "A", Name: "Product-A", BatchSize: 100, Steps: []sim.StepConfig{
				{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 4},
				{Name: "Drying", EquipmentType: "Dryer", DurationHours: 8},
				{Name: "Packaging", EquipmentType: "Packager", DurationHours: 2},
			}},
			{ID: "B", Name: "Product-B", BatchSize: 80, Steps: []sim.StepConfig{
				{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 6},
				{Name: "Drying", EquipmentType: "Dryer", DurationHours: 6},
				{Name: "Packaging", EquipmentType: "Packager", DurationHours: 1.5},
			}},
			{ID: "C", Name: "Product-C", BatchSize: 120, Steps: []sim.StepConfig{
				{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 3},
				{Name: "Drying", EquipmentType: "Dryer", DurationHours: 10},
				{Name: "Packaging", EquipmentType: "Packager", DurationHours: 2.5},
			}},
		},
		Changeovers: []sim.ChangeoverConfig{
			{FromProduct: "A", ToProduct: "B", Hours: 4},
			{FromProduct: "A", ToProduct: "C", Hours: 6},
			{FromProduct: "B", ToProduct: "A", Hours: 5},
			{FromProduct: "B", ToProduct: "C", Hours: 3},
			{FromProduct: "C", ToProduct: "A", Hours: 8},
			{FromProduct: "C", ToProduct: "B", Hours: 4},
		},
		Orders: []sim.OrderConfig{
			{ID: "1", ProductID: "A", Quantity: 1000, DueDateDays: 1, Priority: 2},
			{ID: "2", ProductID: "B", Quantity: 800, DueDateDays: 4, Priority: 2},
			{ID: "3", ProductID: "C", Quantity: 1200, DueDateDays: 5, Priority: 4},
			{ID: "4", ProductID: "A", Quantity: 600, DueDateDays: 3, Priority: 1},
			{ID: "5", ProductID: "B", Quantity: 500, DueDateDays: 2, Priority: 3},
			{ID: "6", ProductID: "C", Quantity: 400, DueDateDays: 6, Priority: 2},
		},
		HoursPerDay: 24,
		HorizonDays: 30,
	}
}
