// Pure lookup structures built once from configuration: the product/recipe
// catalog and the sequence-dependent changeover matrix. Neither is mutated
// during a run, so both are shared read-only across parallel policy runs.

package sim

import "fmt"

// Step is one processing step of a recipe.
type Step struct {
	Name          string
	EquipmentType string
	Duration      float64 // hours
}

// Product is an immutable product definition with its ordered recipe.
type Product struct {
	ID        string
	Name      string
	BatchSize float64
	Steps     []Step
}

// TotalProcessingTime sums the nominal durations of all recipe steps,
// changeovers excluded.
func (p *Product) TotalProcessingTime() float64 {
	var total float64
	for _, st := range p.Steps {
		total += st.Duration
	}
	return total
}

// Catalog maps product identifiers to their definitions.
type Catalog struct {
	products map[string]*Product
}

// NewCatalog builds the catalog from validated configuration.
func NewCatalog(configs []ProductConfig) *Catalog {
	c := &Catalog{products: make(map[string]*Product, len(configs))}
	for _, pc := range configs {
		steps := make([]Step, len(pc.Steps))
		for i, sc := range pc.Steps {
			steps[i] = Step{Name: sc.Name, EquipmentType: sc.EquipmentType, Duration: sc.DurationHours}
		}
		c.products[pc.ID] = &Product{ID: pc.ID, Name: pc.Name, BatchSize: pc.BatchSize, Steps: steps}
	}
	return c
}

// Product returns the definition for a product identifier.
func (c *Catalog) Product(id string) (*Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, id)
	}
	return p, nil
}

// StepsFor returns the ordered recipe steps for a product identifier.
func (c *Catalog) StepsFor(id string) ([]Step, error) {
	p, err := c.Product(id)
	if err != nil {
		return nil, err
	}
	return p.Steps, nil
}

// ChangeoverMatrix holds directional (from, to) setup times in hours.
type ChangeoverMatrix struct {
	entries map[[2]string]float64
}

// NewChangeoverMatrix builds the matrix from validated configuration.
func NewChangeoverMatrix(configs []ChangeoverConfig) *ChangeoverMatrix {
	m := &ChangeoverMatrix{entries: make(map[[2]string]float64, len(configs))}
	for _, co := range configs {
		m.entries[[2]string{co.FromProduct, co.ToProduct}] = co.Hours
	}
	return m
}

// Hours returns the setup time between two products. Same-product
// transitions cost nothing regardless of table contents, and unconfigured
// pairs default to zero (strict mode rejects those at validation instead).
func (m *ChangeoverMatrix) Hours(from, to string) float64 {
	if from == to {
		return 0
	}
	return m.entries[[2]string{from, to}]
}
