// Package casegen generates parameterized test functions from a function
// template and a list of case directives.
//
// A template is an ordinary function in a file guarded by the casegen build
// tag. Each case directive lists the arguments for one case and names it:
//
//	//go:build casegen
//
//	package double
//
//	//casegen:case 1, 2; "small example"
//	//casegen:case 100, 200; "large example"
//	//go:noinline
//	func doubleTest(n, want int) error {
//		if got := double(n); got != want {
//			return fmt.Errorf("double(%d) = %d, want %d", n, got, want)
//		}
//		return nil
//	}
//
// Running casegen on the file writes double_cases_gen.go, where the template
// becomes a type of the same name and every case a method binding the
// arguments in place of the parameters:
//
//	// doubleTest groups the cases generated from the doubleTest template.
//	type doubleTest struct{}
//
//	// Cases lists the cases of doubleTest in declaration order.
//	func (doubleTest) Cases() []struct {
//		Name string
//		Run  func() error
//	} {
//		return []struct {
//			Name string
//			Run  func() error
//		}{
//			{"small example", doubleTest{}.small_example},
//			{"large example", doubleTest{}.large_example},
//		}
//	}
//
//	//go:noinline
//	func (doubleTest) small_example() error {
//		var n int = 1
//		var want int = 2
//		if got := double(n); got != want {
//			return fmt.Errorf("double(%d) = %d, want %d", n, got, want)
//		}
//		return nil
//	}
//
// Case directives must come first in the doc comment. Every line after the
// last case directive is copied unchanged onto every generated function. A
// template whose first parameter is a context.Context keeps that parameter;
// all other parameters are bound by the cases.
//
// A //casegen:dir directive adds one case per file of a directory, binding
// the file's path and contents to a (path, contents string) template.
//
// A case directive that follows another annotation is copied like one and
// not expanded. Generator.Warn hears about it; Generator.Strict rejects it.
//
// Malformed directives, a wrong number of arguments and case names that
// collide once turned into identifiers are reported as errors and no file is
// written.
package casegen
