package sim

import (
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog([]ProductConfig{
		{ID: "A", Name: "Product-A", BatchSize: 100, Steps: []StepConfig{
			{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 4},
			{Name: "Drying", EquipmentType: "Dryer", DurationHours: 8},
			{Name: "Packaging", EquipmentType: "Packager", DurationHours: 2},
		}},
		{ID: "B", Name: "Product-B", BatchSize: 80, Steps: []StepConfig{
			{Name: "Reaction", EquipmentType: "Reactor", DurationHours: 6},
		}},
	})
}

func TestExpandOrders_MassConserved(t *testing.T) {
	// GIVEN orders whose quantities are not all exact batch multiples
	catalog := testCatalog()
	orders := []OrderConfig{
		{ID: "1", ProductID: "A", Quantity: 250, DueDateDays: 2, Priority: 1},
		{ID: "2", ProductID: "B", Quantity: 160, DueDateDays: 3, Priority: 2},
	}

	// WHEN the orders are expanded into batches
	batches, err := ExpandOrders(orders, catalog, 24)
	if err != nil {
		t.Fatalf("ExpandOrders: %v", err)
	}

	// THEN per order, batch sizes sum exactly to the order quantity
	sums := map[string]float64{}
	for _, b := range batches {
		sums[b.OrderID] += b.Size
	}
	if sums["1"] != 250 {
		t.Errorf("order 1 total: got %v, want 250", sums["1"])
	}
	if sums["2"] != 160 {
		t.Errorf("order 2 total: got %v, want 160", sums["2"])
	}
}

func TestExpandOrders_PartialLastBatch(t *testing.T) {
	// GIVEN an order of 250 against batch size 100
	catalog := testCatalog()
	orders := []OrderConfig{{ID: "1", ProductID: "A", Quantity: 250, DueDateDays: 1, Priority: 1}}

	// WHEN expanded
	batches, err := ExpandOrders(orders, catalog, 24)
	if err != nil {
		t.Fatalf("ExpandOrders: %v", err)
	}

	// THEN three batches are produced and the final one takes the remainder
	if len(batches) != 3 {
		t.Fatalf("batch count: got %d, want 3", len(batches))
	}
	wantSizes := []float64{100, 100, 50}
	for i, b := range batches {
		if b.Size != wantSizes[i] {
			t.Errorf("batch %d size: got %v, want %v", i, b.Size, wantSizes[i])
		}
	}
}

func TestExpandOrders_ExactMultiple_NoRemainderBatch(t *testing.T) {
	// GIVEN an order of exactly two batch sizes
	catalog := testCatalog()
	orders := []OrderConfig{{ID: "1", ProductID: "A", Quantity: 200, DueDateDays: 1, Priority: 1}}

	// WHEN expanded
	batches, err := ExpandOrders(orders, catalog, 24)
	if err != nil {
		t.Fatalf("ExpandOrders: %v", err)
	}

	// THEN exactly two full batches exist, no partial batch
	if len(batches) != 2 {
		t.Fatalf("batch count: got %d, want 2", len(batches))
	}
	for i, b := range batches {
		if b.Size != 100 {
			t.Errorf("batch %d size: got %v, want 100", i, b.Size)
		}
	}
}

func TestExpandOrders_BatchesInheritDueDateAndPriority(t *testing.T) {
	// GIVEN an order with a 2-day due date and priority 3, hours per day 24
	catalog := testCatalog()
	orders := []OrderConfig{{ID: "7", ProductID: "A", Quantity: 300, DueDateDays: 2, Priority: 3}}

	// WHEN expanded
	batches, err := ExpandOrders(orders, catalog, 24)
	if err != nil {
		t.Fatalf("ExpandOrders: %v", err)
	}

	// THEN every batch carries due date 48h and priority 3, with Seq in
	// creation order
	for i, b := range batches {
		if b.DueDate != 48 {
			t.Errorf("batch %d due: got %v, want 48", i, b.DueDate)
		}
		if b.Priority != 3 {
			t.Errorf("batch %d priority: got %d, want 3", i, b.Priority)
		}
		if b.Seq != i {
			t.Errorf("batch %d seq: got %d, want %d", i, b.Seq, i)
		}
	}
}

func TestExpandOrders_UnknownProduct(t *testing.T) {
	// GIVEN an order referencing a product absent from the catalog
	catalog := testCatalog()
	orders := []OrderConfig{{ID: "1", ProductID: "Z", Quantity: 100, DueDateDays: 1, Priority: 1}}

	// WHEN expanded THEN the unknown product surfaces as an error
	if _, err := ExpandOrders(orders, catalog, 24); err == nil {
		t.Fatal("ExpandOrders: expected error for unknown product, got nil")
	}
}

func TestBatch_RemainingWork(t *testing.T) {
	catalog := testCatalog()
	product, _ := catalog.Product("A")
	b := &Batch{Product: product}

	if got := b.RemainingWork(); got != 14 {
		t.Errorf("remaining at cursor 0: got %v, want 14", got)
	}
	b.Cursor = 1
	if got := b.RemainingWork(); got != 10 {
		t.Errorf("remaining at cursor 1: got %v, want 10", got)
	}
	b.Cursor = 3
	if got := b.RemainingWork(); got != 0 {
		t.Errorf("remaining at cursor 3: got %v, want 0", got)
	}
	if !b.Done() {
		t.Error("batch with exhausted cursor should be done")
	}
}
