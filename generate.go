package casegen

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// DefaultTag is the build tag that keeps template files out of normal builds.
const DefaultTag = "casegen"

// Generator rewrites template files into generated files. The zero value is
// ready to use.
type Generator struct {
	Tag      string // build tag guarding template files; DefaultTag if empty
	Strict   bool   // reject case directives that follow other annotations
	Template string // custom template archive to use instead of the embedded one
	FS       fs.FS  // where directory cases are read; the template file's directory if nil

	// Warn, if set, receives problems that do not stop generation: case
	// directives forwarded unexpanded because they follow other annotations.
	Warn func(*Error)

	fileTemplate      *template.Template
	namespaceTemplate *template.Template
}

// edit replaces src[start:end] with text.
type edit struct {
	start, end int
	text       string
}

func (g *Generator) fsys(filename string) fs.FS {
	if g.FS != nil {
		return g.FS
	}
	return os.DirFS(filepath.Dir(filename))
}

func (g *Generator) warn(e *Error) {
	if g.Warn != nil {
		g.Warn(e)
	}
}

func (g *Generator) tag() string {
	if g.Tag == "" {
		return DefaultTag
	}
	return g.Tag
}

// Generate reads the template file named filename from input and writes the
// generated file to output. Every template in the file is replaced by its
// namespace; everything else is copied unchanged.
//
// Nothing is written when any template fails: all errors found are returned
// together as an ErrorList.
func (g *Generator) Generate(output io.Writer, filename string, input io.Reader) error {
	src, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if strings.TrimSpace(string(src)) == "" {
		return fmt.Errorf("no input provided")
	}
	if err := g.loadTemplates(); err != nil {
		return err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	s := source{fset: fset, src: src}

	var (
		errs  ErrorList
		edits []edit
	)

	constraintEdits, err := g.rewriteConstraint(s, file)
	errs.add(err)
	edits = append(edits, constraintEdits...)

	attached := make(map[*ast.CommentGroup]bool)
	templates := 0
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fn.Doc != nil {
			attached[fn.Doc] = true
		}
		t, err := ReadTemplate(fset, src, file, fn, g.Strict)
		if err != nil {
			errs.add(err)
			continue
		}
		if t == nil {
			continue
		}
		templates++
		for _, c := range t.Misordered {
			g.warn(newError(fset, KindOrder, c.Pos(),
				"case directive follows %q and is forwarded without being expanded", t.Trailing[0]))
		}
		if err := t.LoadDirs(g.fsys(filename)); err != nil {
			errs.add(err)
			continue
		}
		ns, err := t.Expand()
		if err != nil {
			errs.add(err)
			continue
		}
		text, err := g.renderNamespace(ns)
		if err != nil {
			return err
		}
		edits = append(edits, edit{
			start: s.offset(fn.Doc.Pos()),
			end:   s.offset(fn.End()),
			text:  text,
		})
	}

	for _, group := range file.Comments {
		if attached[group] {
			continue
		}
		for _, c := range group.List {
			if isCaseSource(c.Text) {
				errs.add(newError(fset, KindPlacement, c.Pos(),
					"case directive is not attached to a top-level function declaration"))
			}
		}
	}

	if templates == 0 && len(errs) == 0 {
		errs.add(newError(fset, KindUsage, file.Package,
			"no %s directives in %s: nothing to expand", Directive, filepath.Base(filename)))
	}
	if err := errs.err(); err != nil {
		return err
	}

	src2, err := g.renderFile(filepath.Base(filename), applyEdits(src, edits))
	if err != nil {
		return err
	}

	formatted, err := format.Source([]byte(src2))
	if err != nil {
		// Write the unformatted source to output anyway so user can see what was generated
		output.Write([]byte(src2))

		var lineNum, colNum int
		fmt.Sscanf(err.Error(), "%d:%d:", &lineNum, &colNum)
		return &FormatError{
			OriginalError: err,
			Source:        src2,
			LineNum:       lineNum,
			Column:        colNum,
		}
	}

	_, err = output.Write(formatted)
	return err
}

// rewriteConstraint negates the template tag in the file's //go:build line so
// the generated file is built exactly when the template file is not. Legacy
// // +build lines are dropped.
func (g *Generator) rewriteConstraint(s source, file *ast.File) ([]edit, error) {
	var (
		edits []edit
		found bool
	)
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			switch {
			case constraint.IsGoBuild(c.Text):
				expr, err := constraint.Parse(c.Text)
				if err != nil {
					return nil, newError(s.fset, KindUsage, c.Pos(), "invalid build constraint: %v", err)
				}
				negated, ok := negateTag(expr, g.tag())
				if !ok {
					continue
				}
				found = true
				edits = append(edits, edit{
					start: s.offset(c.Pos()),
					end:   s.offset(c.End()),
					text:  "//go:build " + negated.String(),
				})
			case constraint.IsPlusBuild(c.Text):
				edits = append(edits, edit{start: s.offset(c.Pos()), end: s.offset(c.End())})
			}
		}
	}
	if !found {
		return nil, newError(s.fset, KindUsage, file.Package,
			"template file must carry a //go:build constraint requiring the %q tag", g.tag())
	}
	return edits, nil
}

// negateTag replaces every occurrence of tag in x with its negation and
// reports whether tag occurred at all.
func negateTag(x constraint.Expr, tag string) (constraint.Expr, bool) {
	switch x := x.(type) {
	case *constraint.TagExpr:
		if x.Tag == tag {
			return &constraint.NotExpr{X: x}, true
		}
		return x, false
	case *constraint.NotExpr:
		y, ok := negateTag(x.X, tag)
		if not, isNot := y.(*constraint.NotExpr); isNot && ok {
			return not.X, true
		}
		return &constraint.NotExpr{X: y}, ok
	case *constraint.AndExpr:
		l, lok := negateTag(x.X, tag)
		r, rok := negateTag(x.Y, tag)
		return &constraint.AndExpr{X: l, Y: r}, lok || rok
	case *constraint.OrExpr:
		l, lok := negateTag(x.X, tag)
		r, rok := negateTag(x.Y, tag)
		return &constraint.OrExpr{X: l, Y: r}, lok || rok
	}
	return x, false
}

func applyEdits(src []byte, edits []edit) string {
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	var b strings.Builder
	last := 0
	for _, e := range edits {
		b.Write(src[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.Write(src[last:])
	return b.String()
}

// OutputName returns the name of the file generated from the template file
// path: x.go becomes x_gen.go and x_test.go becomes x_gen_test.go.
func OutputName(path string) string {
	if base, ok := strings.CutSuffix(path, "_test.go"); ok {
		return base + "_gen_test.go"
	}
	return strings.TrimSuffix(path, ".go") + "_gen.go"
}
