package catalog

// Outcome is the result of a lookup: Found, NotFound or NameMissing.
type Outcome interface {
	outcome()
	// Label is a short stable name used for logs and metrics.
	Label() string
}

// Found carries the matched record.
type Found struct{ Pizza Pizza }

// NotFound means a name was given but nothing in the catalog matched it.
type NotFound struct{ Name string }

// NameMissing means the caller did not supply a name at all.
type NameMissing struct{}

func (Found) outcome()       {}
func (NotFound) outcome()    {}
func (NameMissing) outcome() {}

func (Found) Label() string       { return "found" }
func (NotFound) Label() string    { return "not_found" }
func (NameMissing) Label() string { return "name_missing" }

// Find scans the catalog in order for an exact, case-sensitive name match.
// ok reports whether a name was supplied; an empty name with ok set is a
// normal lookup that matches nothing.
func (c *Catalog) Find(name string, ok bool) Outcome {
	if !ok {
		return NameMissing{}
	}
	for _, p := range c.pizzas {
		if p.name == name {
			return Found{Pizza: p}
		}
	}
	return NotFound{Name: name}
}
