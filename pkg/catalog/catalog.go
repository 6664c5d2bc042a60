// pkg/catalog/catalog.go
package catalog

// Pizza is a single catalog record. Fields are unexported so a record
// cannot change after the catalog is built.
type Pizza struct {
	name  string
	price uint32
}

// NewPizza builds a record outside the fixed catalog (tests, response shaping).
func NewPizza(name string, price uint32) Pizza { return Pizza{name: name, price: price} }

func (p Pizza) Name() string  { return p.name }
func (p Pizza) Price() uint32 { return p.price }

// Catalog is the ordered, read-only set of pizzas served by the process.
// It is built once and shared across invocations without locking.
type Catalog struct {
	pizzas []Pizza
}

// New returns the fixed catalog.
func New() *Catalog {
	return &Catalog{pizzas: []Pizza{
		{name: "veggie", price: 10},
		{name: "regina", price: 12},
		{name: "deluxe", price: 14},
	}}
}

func (c *Catalog) Len() int { return len(c.pizzas) }

// All returns a copy of the records in catalog order.
func (c *Catalog) All() []Pizza {
	return append([]Pizza(nil), c.pizzas...)
}
