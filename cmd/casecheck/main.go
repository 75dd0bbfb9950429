// casecheck reports casegen templates that go generate would reject, at the
// position of the offending directive. Template files are guarded by a build
// tag, so pass it along:
//
//	casecheck -tags casegen ./...
package main

import (
	"github.com/tmc/casegen/casecheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(casecheck.Analyzer) }
