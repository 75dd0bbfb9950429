package casegen

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// Directive introduces a case in a template's doc comment:
//
//	//casegen:case 1, 2; "small example"
const Directive = "//casegen:case"

// Case is one parsed case directive: the source text of its argument
// expressions and the display name of the case.
type Case struct {
	Args     []string
	Name     string
	Pos      token.Pos
	Position token.Position
}

// IsCaseDirective reports whether a comment line is a case directive.
func IsCaseDirective(text string) bool {
	rest, ok := strings.CutPrefix(text, Directive)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ParseCase parses the comment c, which must be a case directive.
func ParseCase(fset *token.FileSet, c *ast.Comment) (*Case, error) {
	if !IsCaseDirective(c.Text) {
		return nil, newError(fset, KindParse, c.Pos(), "not a %s directive", Directive)
	}
	body := c.Text[len(Directive):]
	// Positions inside the directive are offsets from the start of the comment.
	base := c.Pos() + token.Pos(len(Directive))
	fail := func(off int, format string, args ...any) (*Case, error) {
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

	var (
		args  []string
		start = 0 // offset of the current argument
		depth = 0
		semi  = -1
	)
	for semi < 0 {
		pos, tok, lit := sc.Scan()
		off := file.Offset(pos)
		switch tok {
		case token.EOF:
			return fail(len(body), "missing ';' before case name")
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		case token.COMMA:
			if depth == 0 {
				args = append(args, body[start:off])
				start = off + 1
			}
		case token.SEMICOLON:
			if lit == "\n" {
				// automatically inserted at end of input
				return fail(len(body), "missing ';' before case name")
			}
			if depth == 0 {
				semi = off
			}
		}
	}
	if scanErr != nil {
		return fail(scanErr.Pos.Offset, "%s", scanErr.Msg)
	}
	if last := body[start:semi]; strings.TrimSpace(last) != "" || len(args) > 0 {
		args = append(args, last)
	}

	c0 := &Case{Pos: c.Pos()}
	if fset != nil {
		c0.Position = fset.Position(c.Pos())
	}
	off := 0
	for i, a := range args {
		expr := strings.TrimSpace(a)
		if expr == "" {
			return fail(off, "argument %d is empty", i+1)
		}
		if _, err := parser.ParseExpr(expr); err != nil {
			return fail(off, "argument %d: %q is not an expression", i+1, expr)
		}
		c0.Args = append(c0.Args, expr)
		off += len(a) + 1
	}

	pos, tok, lit := sc.Scan()
	if scanErr != nil {
		return fail(scanErr.Pos.Offset, "%s", scanErr.Msg)
	}
	if tok != token.STRING {
		if tok == token.EOF || (tok == token.SEMICOLON && lit == "\n") {
			return fail(file.Offset(pos), "missing case name")
		}
		return fail(file.Offset(pos), "case name must be a string literal, found %s", describe(tok, lit))
	}
	name, err := strconv.Unquote(lit)
	if err != nil {
		return fail(file.Offset(pos), "invalid case name %s: %v", lit, err)
	}
	c0.Name = name

	for {
		pos, tok, lit := sc.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		return fail(file.Offset(pos), "unexpected %s after case name", describe(tok, lit))
	}
	if scanErr != nil {
		return fail(scanErr.Pos.Offset, "%s", scanErr.Msg)
	}
	return c0, nil
}

func describe(tok token.Token, lit string) string {
	if lit != "" && tok != token.SEMICOLON {
		return strconv.Quote(lit)
	}
	return strconv.Quote(tok.String())
}
