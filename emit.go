package casegen

import "fmt"

// ListMethod is the method every namespace gets for listing its cases in
// declaration order. No case may generate a method of that name.
const ListMethod = "Cases"

// Namespace groups the generated functions of one template under a type
// named after it. Funcs are in case order.
type Namespace struct {
	Name     string
	Doc      []string
	Context  string
	Results  string
	RunType  string // func type of a method value of a generated function
	Body     string
	Trailing []string
	Funcs    []*Func
}

// Expand instantiates every case of the template. All per-case errors are
// reported together; two cases whose names sanitize to the same identifier
// are rejected rather than one replacing the other.
func (t *Template) Expand() (*Namespace, error) {
	ns := &Namespace{
		Name:     t.Name,
		Doc:      t.Doc,
		Context:  t.Context,
		Results:  t.Results,
		RunType:  "func(" + t.CtxType + ")",
		Body:     t.Body,
		Trailing: t.Trailing,
	}
	if t.Results != "" {
		ns.RunType += " " + t.Results
	}
	var errs ErrorList
	seen := make(map[string]*Case, len(t.Cases))
	for _, c := range t.Cases {
		f, err := t.Instantiate(c)
		if err != nil {
			errs.add(err)
			continue
		}
		if f.Ident == ListMethod {
			errs.add(&Error{
				Kind:     KindCollision,
				Pos:      c.Pos,
				Position: c.Position,
				Msg: fmt.Sprintf("case %q generates %s.%s, which lists the cases",
					c.Name, t.Name, f.Ident),
			})
			continue
		}
		if prev, ok := seen[f.Ident]; ok {
			errs.add(&Error{
				Kind:     KindCollision,
				Pos:      c.Pos,
				Position: c.Position,
				Msg: fmt.Sprintf("cases %q and %q both generate %s.%s",
					prev.Name, c.Name, t.Name, f.Ident),
			})
			continue
		}
		seen[f.Ident] = c
		ns.Funcs = append(ns.Funcs, f)
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return ns, nil
}
