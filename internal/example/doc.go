// Package example runs casegen over a template file. cases_test.go holds the
// templates and cases_gen_test.go the generated cases the tests call.
package example

//go:generate go run github.com/tmc/casegen/cmd/casegen cases_test.go
