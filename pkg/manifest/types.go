package manifest

// HandlerType enumerates the supported handler kinds.
type HandlerType string

const (
	HandlerPizzaLookup HandlerType = "pizza.lookup"
)

const (
	DefaultService = "pizzeria"
	DefaultLogDir  = "log"
)
