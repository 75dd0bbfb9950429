//go:build !js

// casegen expands function templates carrying //casegen:case directives into
// one generated function per case.
//
// casegen reads template files named on the command line, or $GOFILE when run
// by go generate, and writes the generated file next to each of them. With no
// file and input on stdin it reads stdin and prints to stdout.
//
// Example:
//
//	//go:generate go run github.com/tmc/casegen/cmd/casegen double_cases.go
//
// Output: double_cases_gen.go
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/tmc/casegen"
	"golang.org/x/term"
)

var (
	flagOutput   = flag.String("o", "", "output file (only with a single input file); default derived from the input name")
	flagTag      = flag.String("tag", casegen.DefaultTag, "build tag guarding template files")
	flagStrict   = flag.Bool("strict", false, "reject case directives that follow other annotations")
	flagTemplate = flag.String("template", "", "txtar archive with file.tmpl and namespace.tmpl to render with")
	flagStdout   = flag.Bool("stdout", false, "print generated code to stdout instead of writing files")
	flagVerify   = flag.Bool("verify", false, "run go vet on each output directory after generating")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: casegen [flags] [file.go ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

	g := &casegen.Generator{
		Tag:      *flagTag,
		Strict:   *flagStrict,
		Template: *flagTemplate,
		Warn:     warn,
	}

	files := flag.Args()
	if len(files) == 0 {
		if f := os.Getenv("GOFILE"); f != "" {
			files = []string{f}
		}
	}

	if len(files) == 0 {
		if isInteractive() {
			flag.Usage()
			fmt.Fprintln(os.Stderr, "Expects template files or input on stdin")
			os.Exit(1)
		}
		if err := g.Generate(os.Stdout, "stdin.go", os.Stdin); err != nil {
			report(err)
			os.Exit(1)
		}
		return
	}

	if *flagOutput != "" && len(files) > 1 {
		fmt.Fprintln(os.Stderr, "-o requires a single input file")
		os.Exit(2)
	}

	failed := false
	dirs := make(map[string]bool)
	for _, file := range files {
		out := *flagOutput
		if out == "" {
			out = casegen.OutputName(file)
		}
		if err := run(g, file, out); err != nil {
			report(err)
			failed = true
			continue
		}
		dirs[filepath.Dir(out)] = true
	}
	if failed {
		os.Exit(1)
	}

	if *flagVerify && !*flagStdout {
		for dir := range dirs {
			if err := casegen.Verify(context.Background(), dir); err != nil {
				report(err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	}
}

// run generates out from the template file in. The output file is only
// written once generation has succeeded.
func run(g *casegen.Generator, in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := g.Generate(&buf, in, f); err != nil {
		return err
	}
	if *flagStdout {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0644)
}

// report prints err to stderr, one line per positioned error.
func report(err error) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("error: ")
	var list casegen.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			fmt.Fprintln(os.Stderr, prefix+e.Error())
		}
		return
	}
	fmt.Fprintln(os.Stderr, prefix+err.Error())
}

// warn prints a problem that did not stop generation.
func warn(e *casegen.Error) {
	prefix := color.New(color.FgYellow, color.Bold).Sprint("warning: ")
	fmt.Fprintln(os.Stderr, prefix+e.Error())
}

// Return true if os.Stdin appears to be interactive
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
