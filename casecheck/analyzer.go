// Package casecheck implements an analyzer that reports malformed casegen
// templates at the position of the offending directive, so they show up while
// linting instead of only when go generate runs.
//
// Template files are guarded by the casegen build tag, so the analyzer has to
// run with that tag set to see them, e.g. go vet -tags casegen.
package casecheck

import (
	"errors"
	"go/ast"

	"github.com/tmc/casegen"
	"golang.org/x/tools/go/analysis"
)

const _doc = "Report casegen templates that cannot be expanded: malformed //casegen:case" +
	" and //casegen:dir directives, argument count mismatches, colliding case names and" +
	" case directives placed after other annotations. Directories are not read."

// MisorderedFlag is the name of the flag that controls reporting of case
// directives placed after other annotations.
const MisorderedFlag = "misordered"

// Analyzer checks casegen templates in the files of a package.
var Analyzer = &analysis.Analyzer{
	Name: "casecheck",
	Doc:  _doc,
	Run:  run,
}

var _misordered bool

func init() {
	Analyzer.Flags.BoolVar(&_misordered, MisorderedFlag, true,
		"report case directives that follow other annotations; go generate forwards them unexpanded")
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		tf := pass.Fset.File(file.Pos())
		if tf == nil {
			continue
		}
		src, err := pass.ReadFile(tf.Name())
		if err != nil {
			return nil, err
		}

		attached := make(map[*ast.CommentGroup]bool)
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if fn.Doc != nil {
				attached[fn.Doc] = true
			}
			t, err := casegen.ReadTemplate(pass.Fset, src, file, fn, _misordered)
			if err != nil {
				reportAll(pass, err)
				continue
			}
			if t == nil {
				continue
			}
			if _, err := t.Expand(); err != nil {
				reportAll(pass, err)
			}
		}

		for _, group := range file.Comments {
			if attached[group] {
				continue
			}
			for _, c := range group.List {
				if casegen.IsCaseDirective(c.Text) || casegen.IsDirDirective(c.Text) {
					pass.Reportf(c.Pos(), "case directive is not attached to a top-level function declaration")
				}
			}
		}
	}
	return nil, nil
}

// reportAll reports every casegen error contained in err.
func reportAll(pass *analysis.Pass, err error) {
	var list casegen.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			report(pass, e)
		}
		return
	}
	var e *casegen.Error
	if errors.As(err, &e) {
		report(pass, e)
		return
	}
	pass.Reportf(pass.Files[0].Package, "%v", err)
}

func report(pass *analysis.Pass, e *casegen.Error) {
	pass.Report(analysis.Diagnostic{
		Pos:      e.Pos,
		Category: e.Kind.String(),
		Message:  e.Kind.String() + ": " + e.Msg,
	})
}
