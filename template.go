package casegen

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// Template is a function declaration carrying case directives, split into
// the pieces every generated function is built from.
type Template struct {
	Name     string
	Doc      []string // doc comment lines above the first case
	Cases    []*Case
	Dirs     []*DirCases // directory directives; see LoadDirs
	Trailing []string    // doc comment lines after the last case, verbatim
	Context  string      // leading context.Context parameter; empty if synchronous
	CtxType  string      // type of the context parameter as written
	Params   []Param     // parameters bound by each case
	Results  string      // result list source, empty if none
	Body     string      // source between the body braces
	Pos      token.Pos
	Position token.Position

	// Misordered holds case directives that follow a trailing annotation.
	// Outside strict mode they are forwarded with the other trailing lines.
	Misordered []*ast.Comment

	refs map[string]bool
}

// Async reports whether the template takes a leading context.Context, the
// qualifier every generated function keeps.
func (t *Template) Async() bool { return t.Context != "" }

// source gives access to the text of the file a template was parsed from.
type source struct {
	fset *token.FileSet
	src  []byte
}

func (s source) offset(pos token.Pos) int {
	return s.fset.File(pos).Offset(pos)
}

func (s source) text(n ast.Node) string {
	return string(s.src[s.offset(n.Pos()):s.offset(n.End())])
}

// ReadTemplate reads fn as a template. It returns nil and no error when fn
// carries no case directive.
//
// The doc comment is scanned once: lines before the first case directive are
// kept as namespace documentation, contiguous case directives are parsed, and
// the first other line ends case collection. A case directive after that
// point is forwarded like any other annotation unless strict is set.
func ReadTemplate(fset *token.FileSet, src []byte, file *ast.File, fn *ast.FuncDecl, strict bool) (*Template, error) {
	if fn.Doc == nil || !hasCase(fn.Doc) {
		return nil, nil
	}
	s := source{fset: fset, src: src}
	t := &Template{
		Name:     fn.Name.Name,
		Pos:      fn.Name.Pos(),
		Position: fset.Position(fn.Name.Pos()),
	}
	var errs ErrorList

	const (
		lead = iota
		cases
		trailing
	)
	phase := lead
	for _, c := range fn.Doc.List {
		isCase := isCaseSource(c.Text)
		switch {
		case isCase && phase != trailing && IsDirDirective(c.Text):
			phase = cases
			d, err := ParseDir(fset, c)
			if err != nil {
				errs.add(err)
				continue
			}
			t.Dirs = append(t.Dirs, d)
		case isCase && phase != trailing:
			phase = cases
			tc, err := ParseCase(fset, c)
			if err != nil {
				errs.add(err)
				continue
			}
			t.Cases = append(t.Cases, tc)
		case isCase && strict:
			errs.add(newError(fset, KindOrder, c.Pos(),
				"case directive follows %q; case directives must come before other annotations", t.Trailing[0]))
		case isCase:
			t.Misordered = append(t.Misordered, c)
			t.Trailing = append(t.Trailing, c.Text)
		case phase == lead:
			t.Doc = append(t.Doc, c.Text)
		default:
			phase = trailing
			t.Trailing = append(t.Trailing, c.Text)
		}
	}

	// gofmt separates doc text from directives with an empty line.
	for len(t.Doc) > 0 && t.Doc[len(t.Doc)-1] == "//" {
		t.Doc = t.Doc[:len(t.Doc)-1]
	}

	if fn.Recv != nil {
		errs.add(newError(fset, KindSignature, fn.Recv.Pos(), "%s: methods cannot carry case directives", t.Name))
	}
	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		errs.add(newError(fset, KindSignature, fn.Type.TypeParams.Pos(), "%s: type parameters are not supported", t.Name))
	}
	if fn.Body == nil {
		errs.add(newError(fset, KindSignature, fn.Name.Pos(), "%s: template has no body", t.Name))
		return nil, errs.err()
	}

	var ctxParam bool
	for i, field := range fn.Type.Params.List {
		if len(field.Names) == 0 {
			errs.add(newError(fset, KindSignature, field.Pos(), "%s: parameter %d has no name", t.Name, i+1))
			continue
		}
		typ := s.text(field.Type)
		if ell, ok := field.Type.(*ast.Ellipsis); ok {
			typ = "[]" + s.text(ell.Elt)
		}
		if i == 0 && isContext(file, field.Type) {
			ctxParam = true
		}
		for _, name := range field.Names {
			t.Params = append(t.Params, Param{
				Name:     name.Name,
				Type:     typ,
				Position: fset.Position(name.Pos()),
			})
		}
	}
	if ctxParam && len(t.Params) > 0 {
		t.Context = t.Params[0].Name + " " + t.Params[0].Type
		t.CtxType = t.Params[0].Type
		t.Params = t.Params[1:]
	}
	if len(t.Dirs) > 0 && !checkDirParams(t.Params) {
		errs.add(newError(fset, KindSignature, fn.Name.Pos(),
			"%s: directory cases need (path, contents string) parameters", t.Name))
	}

	if res := fn.Type.Results; res != nil && len(res.List) > 0 {
		if res.Opening.IsValid() {
			t.Results = string(src[s.offset(res.Opening) : s.offset(res.Closing)+1])
		} else {
			t.Results = s.text(res.List[0].Type)
		}
	}

	t.Body = strings.TrimPrefix(string(src[s.offset(fn.Body.Lbrace)+1:s.offset(fn.Body.Rbrace)]), "\n")
	t.refs = references(fn.Body)

	if err := errs.err(); err != nil {
		return nil, err
	}
	return t, nil
}

// references returns the names body uses as plain identifiers and never
// declares. Field names, selectors, composite literal keys and labels are
// not uses, and a name declared anywhere in body counts as unreferenced.
// A parameter wrongly left out only costs a redundant "_ = name".
func references(body *ast.BlockStmt) map[string]bool {
	used := make(map[string]bool)
	declared := make(map[string]bool)
	declare := func(exprs ...ast.Expr) {
		for _, x := range exprs {
			if id, ok := x.(*ast.Ident); ok {
				declared[id.Name] = true
			}
		}
	}

	var visit func(n ast.Node) bool
	walk := func(x ast.Expr) {
		if x != nil {
			ast.Inspect(x, visit)
		}
	}
	visit = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			used[n.Name] = true
		case *ast.SelectorExpr:
			walk(n.X)
			return false
		case *ast.CompositeLit:
			walk(n.Type)
			for _, elt := range n.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					walk(elt)
					continue
				}
				if _, isIdent := kv.Key.(*ast.Ident); !isIdent {
					walk(kv.Key)
				}
				walk(kv.Value)
			}
			return false
		case *ast.Field:
			for _, name := range n.Names {
				declared[name.Name] = true
			}
			walk(n.Type)
			return false
		case *ast.LabeledStmt:
			ast.Inspect(n.Stmt, visit)
			return false
		case *ast.BranchStmt:
			return false
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE {
				return true
			}
			declare(n.Lhs...)
			for _, x := range n.Rhs {
				walk(x)
			}
			return false
		case *ast.RangeStmt:
			if n.Tok != token.DEFINE {
				return true
			}
			declare(n.Key, n.Value)
			walk(n.X)
			ast.Inspect(n.Body, visit)
			return false
		case *ast.ValueSpec:
			for _, name := range n.Names {
				declared[name.Name] = true
			}
			walk(n.Type)
			for _, x := range n.Values {
				walk(x)
			}
			return false
		case *ast.TypeSpec:
			declared[n.Name.Name] = true
			if n.TypeParams != nil {
				ast.Inspect(n.TypeParams, visit)
			}
			walk(n.Type)
			return false
		}
		return true
	}
	ast.Inspect(body, visit)

	for name := range declared {
		delete(used, name)
	}
	return used
}

func hasCase(doc *ast.CommentGroup) bool {
	for _, c := range doc.List {
		if isCaseSource(c.Text) {
			return true
		}
	}
	return false
}

// isContext reports whether typ is context.Context under the name the file
// imports package context as.
func isContext(file *ast.File, typ ast.Expr) bool {
	sel, ok := typ.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Context" {
		return false
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != "context" {
			continue
		}
		name := "context"
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == x.Name {
			return true
		}
	}
	return false
}
