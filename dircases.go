package casegen

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// DirDirective turns every regular file of one or more directories into a
// case:
//
//	//casegen:dir "testdata/inputs"
//
// Each case binds the file's slash-separated path and its contents to the
// template's two string parameters. Files are read when the template file is
// generated, so the contents end up in the generated code.
const DirDirective = "//casegen:dir"

// DirCases is one parsed directory directive.
type DirCases struct {
	Dirs     []string
	Pos      token.Pos
	Position token.Position
}

// IsDirDirective reports whether a comment line is a directory directive.
func IsDirDirective(text string) bool {
	rest, ok := strings.CutPrefix(text, DirDirective)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// isCaseSource reports whether a comment line contributes cases.
func isCaseSource(text string) bool {
	return IsCaseDirective(text) || IsDirDirective(text)
}

// ParseDir parses the comment c, which must be a directory directive. It
// takes a non-empty comma-separated list of string literals.
func ParseDir(fset *token.FileSet, c *ast.Comment) (*DirCases, error) {
	if !IsDirDirective(c.Text) {
		return nil, newError(fset, KindParse, c.Pos(), "not a %s directive", DirDirective)
	}
	body := c.Text[len(DirDirective):]
	base := c.Pos() + token.Pos(len(DirDirective))
	fail := func(off int, format string, args ...any) (*DirCases, error) {
		return nil, newError(fset, KindParse, base+token.Pos(off), format, args...)
	}

	var (
		sc      scanner.Scanner
		scanErr *scanner.Error
	)
	file := token.NewFileSet().AddFile("", -1, len(body))
	sc.Init(file, []byte(body), func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = &scanner.Error{Pos: pos, Msg: msg}
		}
	}, 0)
	end := func(tok token.Token, lit string) bool {
		return tok == token.EOF || tok == token.SEMICOLON && lit == "\n"
	}

	d := &DirCases{Pos: c.Pos()}
	if fset != nil {
		d.Position = fset.Position(c.Pos())
	}
	for {
		pos, tok, lit := sc.Scan()
		if scanErr != nil {
			return fail(scanErr.Pos.Offset, "%s", scanErr.Msg)
		}
		if tok != token.STRING {
			if end(tok, lit) {
				return fail(file.Offset(pos), "missing directory")
			}
			return fail(file.Offset(pos), "directory must be a string literal, found %s", describe(tok, lit))
		}
		dir, err := strconv.Unquote(lit)
		if err != nil {
			return fail(file.Offset(pos), "invalid directory %s: %v", lit, err)
		}
		if dir == "" {
			return fail(file.Offset(pos), "directory is empty")
		}
		d.Dirs = append(d.Dirs, dir)

		pos, tok, lit = sc.Scan()
		if scanErr != nil {
			return fail(scanErr.Pos.Offset, "%s", scanErr.Msg)
		}
		if end(tok, lit) {
			return d, nil
		}
		if tok != token.COMMA {
			return fail(file.Offset(pos), "unexpected %s after directory", describe(tok, lit))
		}
	}
}

// checkDirParams reports whether params fit a directory directive: exactly a
// path and a contents parameter, both strings.
func checkDirParams(params []Param) bool {
	return len(params) == 2 && params[0].Type == "string" && params[1].Type == "string"
}

// LoadDirs reads the directories named by the template's directory
// directives from fsys and appends one case per regular file, in directive
// order and by file name within a directory. A directory without regular
// files is an error. The case name is the lower-cased path, so a file's case
// identifier is its path with separators turned into underscores.
func (t *Template) LoadDirs(fsys fs.FS) error {
	var errs ErrorList
	for _, d := range t.Dirs {
		for _, dir := range d.Dirs {
			dir = path.Clean(dir)
			entries, err := fs.ReadDir(fsys, dir)
			if err != nil {
				errs.add(&Error{
					Kind:     KindDir,
					Pos:      d.Pos,
					Position: d.Position,
					Msg:      err.Error(),
				})
				continue
			}
			files := 0
			for _, e := range entries {
				if !e.Type().IsRegular() {
					continue
				}
				files++
				p := path.Join(dir, e.Name())
				data, err := fs.ReadFile(fsys, p)
				if err != nil {
					errs.add(&Error{Kind: KindDir, Pos: d.Pos, Position: d.Position, Msg: err.Error()})
					continue
				}
				t.Cases = append(t.Cases, &Case{
					Args:     []string{strconv.Quote(p), strconv.Quote(string(data))},
					Name:     strings.ToLower(p),
					Pos:      d.Pos,
					Position: d.Position,
				})
			}
			if files == 0 {
				errs.add(&Error{
					Kind:     KindDir,
					Pos:      d.Pos,
					Position: d.Position,
					Msg:      fmt.Sprintf("%s has no files to turn into cases", dir),
				})
			}
		}
	}
	return errs.err()
}
