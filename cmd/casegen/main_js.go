//go:build js

package main

import (
	"strings"
	"syscall/js"

	"github.com/tmc/casegen"
)

func casegenFunction(this js.Value, p []js.Value) interface{} {
	if len(p) == 0 {
		return js.ValueOf("casegen: missing template source")
	}
	var out strings.Builder
	g := &casegen.Generator{}
	if err := g.Generate(&out, "template.go", strings.NewReader(p[0].String())); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("casegen", js.FuncOf(casegenFunction))

	<-c
}
