package templates

import "context"

// double checks doubling.
//
//casegen:case 1, 2; "one"
//casegen:case 2, 4; "two"
//go:noinline
func double(in, want int) bool {
	return in*2 == want
}

//casegen:case 1; "one"
func wait(ctx context.Context, n int) error {
	return ctx.Err()
}

//casegen:case 1; "ok"
//casegen:case 1, 2; "extra" // want `arity mismatch: case "extra": wrong number of arguments: got 2, want 1`
func arity(n int) int {
	return n
}

//casegen:case 1; "edge!"
//casegen:case 2; "edge." // want `name collision: cases "edge!" and "edge." both generate collide.edge_`
func collide(n int) {}

//casegen:case 1 "one" // want `invalid case: missing ';' before case name`
//casegen:case 2; two // want `invalid case: case name must be a string literal, found "two"`
func malformed(n int) {}

//casegen:case 3; "!" // want `invalid case name: case name "!" does not produce a usable identifier`
func unnamed(n int) {}

//casegen:case 1; "first"
//go:noinline
//casegen:case 2; "second" // want `misordered case: case directive follows "//go:noinline"`
func misordered(n int) {}

type T struct{}

//casegen:case 1; "one"
func (T) method(n int) {} // want `invalid template: method: methods cannot carry case directives`

func loose() {
	//casegen:case 1; "inside" // want `case directive is not attached to a top-level function declaration`
}

//casegen:dir "testdata/inputs"
func files(n int) {} // want `invalid template: files: directory cases need \(path, contents string\) parameters`

//casegen:dir inputs // want `invalid case: directory must be a string literal, found "inputs"`
func badDir(path, contents string) {}
