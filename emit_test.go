package casegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpand(t *testing.T) {
	const src = `package p

//casegen:case 1, 2; "one and two"
//casegen:case 3, 4; "three_and_four"
//casegen:case 5, 6; "Five"
func add(a, b int) int {
	return a
}
`
	tmpl, err := readTemplate(t, src, "add", false)
	if err != nil {
		t.Fatalf("ReadTemplate() error = %v", err)
	}
	ns, err := tmpl.Expand()
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	var idents []string
	for _, f := range ns.Funcs {
		idents = append(idents, f.Ident)
		if diff := cmp.Diff([]string{"b"}, f.Unused); diff != "" {
			t.Errorf("%s: Unused mismatch (-want +got):\n%s", f.Ident, diff)
		}
	}
	if diff := cmp.Diff([]string{"one_and_two", "three_and_four", "Five"}, idents); diff != "" {
		t.Errorf("generated functions mismatch (-want +got):\n%s", diff)
	}
	if ns.Name != "add" || ns.Results != "int" {
		t.Errorf("Namespace = %q returning %q, want add returning int", ns.Name, ns.Results)
	}
	if got := ns.Funcs[2].Bindings[1].Value; got != "6" {
		t.Errorf("Five binds b = %s, want 6", got)
	}
}

func TestExpandBlankParam(t *testing.T) {
	const src = `package p

//casegen:case 1, 2; "x"
func f(_ int, n int) int {
	return n
}
`
	tmpl, err := readTemplate(t, src, "f", false)
	if err != nil {
		t.Fatalf("ReadTemplate() error = %v", err)
	}
	ns, err := tmpl.Expand()
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if unused := ns.Funcs[0].Unused; len(unused) != 0 {
		t.Errorf("Unused = %v, want none", unused)
	}
}

func TestExpandErrors(t *testing.T) {
	const src = `package p

//casegen:case 1; "edge!"
//casegen:case 2; "edge?"
//casegen:case 1, 2; "too many"
//casegen:case 3; "!"
//casegen:case 4; "edge."
func k(n int) {}
`
	tmpl, err := readTemplate(t, src, "k", false)
	if err != nil {
		t.Fatalf("ReadTemplate() error = %v", err)
	}
	ns, err := tmpl.Expand()
	if ns != nil {
		t.Errorf("Expand() returned a namespace despite failing")
	}
	var list ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Expand() error = %v, want ErrorList", err)
	}
	var got []string
	for _, e := range list {
		got = append(got, e.Kind.String()+" at "+e.Position.String())
	}
	want := []string{
		"name collision at template.go:4:1",
		"arity mismatch at template.go:5:1",
		"invalid case name at template.go:6:1",
		"name collision at template.go:7:1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if msg := list[0].Msg; !strings.Contains(msg, `cases "edge!" and "edge?" both generate k.edge_`) {
		t.Errorf("collision message = %q", msg)
	}
	if msg := list[3].Msg; !strings.Contains(msg, `"edge!" and "edge."`) {
		t.Errorf("collision message = %q, want it to name the first case", msg)
	}
}

func TestExpandRunType(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"package p\n\n//casegen:case 1; \"a\"\nfunc f(n int) {}\n", "func()"},
		{"package p\n\n//casegen:case 1; \"a\"\nfunc f(n int) error { return nil }\n", "func() error"},
		{"package p\n\n//casegen:case 1; \"a\"\nfunc f(n int) (a, b int) { return }\n", "func() (a, b int)"},
		{"package p\n\nimport c \"context\"\n\n//casegen:case 1; \"a\"\nfunc f(ctx c.Context, n int) bool { return true }\n", "func(c.Context) bool"},
	}
	for _, tt := range tests {
		tmpl, err := readTemplate(t, tt.src, "f", false)
		if err != nil {
			t.Fatalf("ReadTemplate() error = %v", err)
		}
		ns, err := tmpl.Expand()
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if ns.RunType != tt.want {
			t.Errorf("RunType = %q, want %q", ns.RunType, tt.want)
		}
	}
}

func TestExpandListMethodReserved(t *testing.T) {
	const src = `package p

//casegen:case 1; "Cases"
//casegen:case 2; "cases"
func f(n int) {}
`
	tmpl, err := readTemplate(t, src, "f", false)
	if err != nil {
		t.Fatalf("ReadTemplate() error = %v", err)
	}
	_, err = tmpl.Expand()
	var list ErrorList
	if !errors.As(err, &list) || len(list) != 1 {
		t.Fatalf("Expand() error = %v, want one error", err)
	}
	if list[0].Kind != KindCollision || !strings.Contains(list[0].Msg, "f.Cases") {
		t.Errorf("Expand() error = %v, want a collision with f.Cases", list[0])
	}
}
