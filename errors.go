package casegen

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
)

// Kind classifies a generation error.
type Kind int

const (
	KindParse     Kind = iota + 1 // malformed case directive
	KindArity                     // argument count differs from parameter count
	KindCollision                 // two case names sanitize to the same identifier
	KindName                      // case name sanitizes to nothing usable
	KindSignature                 // template signature cannot be expanded
	KindPlacement                 // case directive not attached to a top-level function
	KindOrder                     // case directive after a trailing annotation
	KindUsage                     // file cannot be used as a template file
	KindDir                       // case directory cannot be read
)

var kindNames = map[Kind]string{
	KindParse:     "invalid case",
	KindArity:     "arity mismatch",
	KindCollision: "name collision",
	KindName:      "invalid case name",
	KindSignature: "invalid template",
	KindPlacement: "misplaced case",
	KindOrder:     "misordered case",
	KindUsage:     "usage",
	KindDir:       "unreadable case directory",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a positioned generation error. Pos is only meaningful with the
// FileSet the template was parsed with; Position is already resolved.
type Error struct {
	Kind     Kind
	Pos      token.Pos
	Position token.Position
	Msg      string
}

func (e *Error) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Position, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(fset *token.FileSet, kind Kind, pos token.Pos, format string, args ...any) *Error {
	e := &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	if fset != nil && pos.IsValid() {
		e.Position = fset.Position(pos)
	}
	return e
}

// ErrorList collects the errors of one generation run.
type ErrorList []*Error

func (l *ErrorList) add(err error) {
	switch err := err.(type) {
	case nil:
	case *Error:
		*l = append(*l, err)
	case ErrorList:
		*l = append(*l, err...)
	default:
		*l = append(*l, &Error{Kind: KindUsage, Msg: err.Error()})
	}
}

func (l ErrorList) sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Position, l[j].Position
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// err returns nil for an empty list so callers can return it directly.
func (l ErrorList) err() error {
	if len(l) == 0 {
		return nil
	}
	l.sort()
	return l
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// FormatError is returned when generated code fails to format
type FormatError struct {
	OriginalError error
	Source        string // The unformatted source code
	LineNum       int
	Column        int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting error at line %d:%d: %v", e.LineNum, e.Column, e.OriginalError)
}

func (e *FormatError) Unwrap() error {
	return e.OriginalError
}
