// Defines the validated plant configuration document consumed by the engine.
// The document arrives from the boundary layer (CLI file or HTTP body) as
// YAML or JSON; after Validate passes it is treated as immutable and shared
// read-only by all policy runs.

package sim

import "fmt"

// EquipmentConfig declares one physical unit.
type EquipmentConfig struct {
	ID       string  `yaml:"id" json:"id"`
	Type     string  `yaml:"type" json:"type"`
	Capacity float64 `yaml:"capacity" json:"capacity"` // mass units
}

// StepConfig is one recipe step: a label, the equipment type it needs,
// and its nominal duration in hours.
type StepConfig struct {
	Name          string  `yaml:"name" json:"name"`
	EquipmentType string  `yaml:"equipment_type" json:"equipment_type"`
	DurationHours float64 `yaml:"duration_hours" json:"duration_hours"`
}

// ProductConfig declares a product and its recipe.
type ProductConfig struct {
	ID        string       `yaml:"id" json:"id"`
	Name      string       `yaml:"name" json:"name"`
	BatchSize float64      `yaml:"batch_size" json:"batch_size"` // mass units per batch
	Steps     []StepConfig `yaml:"steps" json:"steps"`
}

// ChangeoverConfig is one (from, to) entry of the changeover matrix.
// Entries are directional; symmetry is not assumed.
type ChangeoverConfig struct {
	FromProduct string  `yaml:"from_product" json:"from_product"`
	ToProduct   string  `yaml:"to_product" json:"to_product"`
	Hours       float64 `yaml:"hours" json:"hours"`
}

// OrderConfig is one customer order. Due dates are expressed in days and
// converted to simulation hours via HoursPerDay.
type OrderConfig struct {
	ID          string  `yaml:"id" json:"id"`
	ProductID   string  `yaml:"product_id" json:"product_id"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	DueDateDays float64 `yaml:"due_date_days" json:"due_date_days"`
	Priority    int     `yaml:"priority" json:"priority"` // 1..4, 1 = most urgent
}

// PlantConfig is the full configuration document for one comparison run.
type PlantConfig struct {
	Equipment   []EquipmentConfig  `yaml:"equipment" json:"equipment"`
	Products    []ProductConfig    `yaml:"products" json:"products"`
	Changeovers []ChangeoverConfig `yaml:"changeovers" json:"changeovers"`
	Orders      []OrderConfig      `yaml:"orders" json:"orders"`

	HoursPerDay float64 `yaml:"hours_per_day" json:"hours_per_day"`
	HorizonDays float64 `yaml:"horizon_days" json:"horizon_days"`

	// StrictChangeovers turns missing (from, to) entries between products
	// referenced by orders into a validation error instead of zero cost.
	StrictChangeovers bool `yaml:"strict_changeovers" json:"strict_changeovers"`
}

// HorizonHours returns the simulation horizon in clock units.
func (c *PlantConfig) HorizonHours() float64 {
	return c.HorizonDays * c.HoursPerDay
}

// ApplyDefaults fills zero-valued global parameters. The boundary layer may
// override these from its settings file before calling Validate.
func (c *PlantConfig) ApplyDefaults() {
	if c.HoursPerDay == 0 {
		c.HoursPerDay = 24
	}
	if c.HorizonDays == 0 {
		c.HorizonDays = 30
	}
}

// Validate checks the document before any simulation time advances.
// A run is never started on a configuration that fails here.
func (c *PlantConfig) Validate() error {
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("%w: hours_per_day must be positive, got %v", ErrInvalidConfiguration, c.HoursPerDay)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon_days must be positive, got %v", ErrInvalidConfiguration, c.HorizonDays)
	}
	if len(c.Equipment) == 0 {
		return fmt.Errorf("%w: equipment list is empty", ErrInvalidConfiguration)
	}

	unitIDs := make(map[string]bool, len(c.Equipment))
	unitsByType := make(map[string]int, len(c.Equipment))
	for _, eq := range c.Equipment {
		if eq.ID == "" || eq.Type == "" {
			return fmt.Errorf("%w: equipment needs id and type, got %+v", ErrInvalidConfiguration, eq)
		}
		if unitIDs[eq.ID] {
			return fmt.Errorf("%w: duplicate equipment id %q", ErrInvalidConfiguration, eq.ID)
		}
		if eq.Capacity <= 0 {
			return fmt.Errorf("%w: equipment %q capacity must be positive", ErrInvalidConfiguration, eq.ID)
		}
		unitIDs[eq.ID] = true
		unitsByType[eq.Type]++
	}

	products := make(map[string]ProductConfig, len(c.Products))
	for _, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("%w: product without id", ErrInvalidConfiguration)
		}
		if _, dup := products[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product id %q", ErrInvalidConfiguration, p.ID)
		}
		if p.BatchSize <= 0 {
			return fmt.Errorf("%w: product %q batch_size must be positive", ErrInvalidConfiguration, p.ID)
		}
		if len(p.Steps) == 0 {
			return fmt.Errorf("%w: product %q has no recipe steps", ErrInvalidConfiguration, p.ID)
		}
		for _, st := range p.Steps {
			if st.DurationHours < 0 {
				return fmt.Errorf("%w: product %q step %q has negative duration", ErrInvalidConfiguration, p.ID, st.Name)
			}
			if unitsByType[st.EquipmentType] == 0 {
				return fmt.Errorf("%w: %q required by product %q step %q", ErrUnknownEquipmentType, st.EquipmentType, p.ID, st.Name)
			}
		}
		products[p.ID] = p
	}

	orderIDs := make(map[string]bool, len(c.Orders))
	ordered := make(map[string]bool) // product ids referenced by orders
	for _, o := range c.Orders {
		if o.ID == "" {
			return fmt.Errorf("%w: order without id", ErrInvalidConfiguration)
		}
		if orderIDs[o.ID] {
			return fmt.Errorf("%w: duplicate order id %q", ErrInvalidConfiguration, o.ID)
		}
		orderIDs[o.ID] = true
		if _, ok := products[o.ProductID]; !ok {
			return fmt.Errorf("%w: %q referenced by order %q", ErrUnknownProduct, o.ProductID, o.ID)
		}
		if o.Quantity <= 0 {
			return fmt.Errorf("%w: order %q quantity must be positive", ErrInvalidConfiguration, o.ID)
		}
		if o.DueDateDays <= 0 {
			return fmt.Errorf("%w: order %q due date must be positive", ErrInvalidConfiguration, o.ID)
		}
		if o.Priority < 1 || o.Priority > 4 {
			return fmt.Errorf("%w: order %q priority must be 1..4, got %d", ErrInvalidConfiguration, o.ID, o.Priority)
		}
		ordered[o.ProductID] = true
	}

	for _, co := range c.Changeovers {
		if co.Hours < 0 {
			return fmt.Errorf("%w: changeover %s->%s has negative hours", ErrInvalidConfiguration, co.FromProduct, co.ToProduct)
		}
	}

	if c.StrictChangeovers {
		entries := make(map[[2]string]bool, len(c.Changeovers))
		for _, co := range c.Changeovers {
			entries[[2]string{co.FromProduct, co.ToProduct}] = true
		}
		for from := range ordered {
			for to := range ordered {
				if from == to {
					continue // same-product transitions are always zero
				}
				if !entries[[2]string{from, to}] {
					return fmt.Errorf("%w: %s->%s (strict mode)", ErrMissingChangeover, from, to)
				}
			}
		}
	}

	return nil
}
