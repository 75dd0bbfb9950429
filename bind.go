package casegen

import (
	"fmt"
	"go/token"
)

// Param is one declared parameter of a template, in signature order.
type Param struct {
	Name     string
	Type     string // source text of the declared type
	Position token.Position
}

// Binding associates a parameter with the argument expression a case
// supplies for it.
type Binding struct {
	Param
	Value string
}

// Bind zips the arguments of c against params positionally. The argument
// count must equal the parameter count.
func Bind(c *Case, params []Param) ([]Binding, error) {
	if len(c.Args) != len(params) {
		return nil, &Error{
			Kind:     KindArity,
			Pos:      c.Pos,
			Position: c.Position,
			Msg: fmt.Sprintf("case %q: wrong number of arguments: got %d, want %d",
				c.Name, len(c.Args), len(params)),
		}
	}
	bindings := make([]Binding, len(params))
	for i, p := range params {
		bindings[i] = Binding{Param: p, Value: c.Args[i]}
	}
	return bindings, nil
}
