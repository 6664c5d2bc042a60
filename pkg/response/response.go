// pkg/response/response.go
package response

import (
	"fmt"
	"net/http"

	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/codec"
)

const (
	MsgNotFound    = "Pizza not found"
	MsgNameMissing = "Pizza name not provided"
)

// Descriptor is a transport-agnostic response; host adapters translate it.
type Descriptor struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// field order is the wire order
type pizzaBody struct {
	Name  string `json:"name"`
	Price uint32 `json:"price"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Success renders a found pizza as a 200.
func Success(p catalog.Pizza) Descriptor {
	return build(http.StatusOK, pizzaBody{Name: p.Name(), Price: p.Price()})
}

// Failure renders a caller error as a 400.
func Failure(msg string) Descriptor {
	return build(http.StatusBadRequest, errorBody{Error: msg})
}

// FromOutcome maps a lookup outcome to its response.
func FromOutcome(o catalog.Outcome) Descriptor {
	switch o := o.(type) {
	case catalog.Found:
		return Success(o.Pizza)
	case catalog.NotFound:
		return Failure(MsgNotFound)
	case catalog.NameMissing:
		return Failure(MsgNameMissing)
	default:
		panic(fmt.Sprintf("response: unhandled lookup outcome %T", o))
	}
}

// build panics on encode failure: the bodies are fixed shapes, so an error
// here means the process is broken, not the request.
func build(status int, v any) Descriptor {
	body, err := codec.JSON.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("response: encode %T: %v", v, err))
	}
	return Descriptor{
		StatusCode:  status,
		ContentType: codec.JSON.ContentType(),
		Body:        body,
	}
}
