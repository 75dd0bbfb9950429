package casegen

import "fmt"

// Func is one generated function: a template instantiated for a single case.
type Func struct {
	Ident    string
	Case     *Case
	Bindings []Binding
	Unused   []string // bound names the body never references
}

// Instantiate binds the arguments of c to the template's parameters and
// names the result after the sanitized case name.
func (t *Template) Instantiate(c *Case) (*Func, error) {
	bindings, err := Bind(c, t.Params)
	if err != nil {
		return nil, err
	}
	f := &Func{
		Ident:    Sanitize(c.Name),
		Case:     c,
		Bindings: bindings,
	}
	if !usableIdent(f.Ident) {
		return nil, &Error{
			Kind:     KindName,
			Pos:      c.Pos,
			Position: c.Position,
			Msg:      fmt.Sprintf("case name %q does not produce a usable identifier", c.Name),
		}
	}
	for _, b := range bindings {
		if b.Name != "_" && !t.refs[b.Name] {
			f.Unused = append(f.Unused, b.Name)
		}
	}
	return f, nil
}
