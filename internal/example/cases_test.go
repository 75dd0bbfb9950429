//go:build casegen

package example

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmc/casegen"
)

// sanitize checks the identifiers case names map to.
//
//casegen:case "case 1", "case_1"; "spaces"
//casegen:case "99 bottles", "_99_bottles"; "leading digit"
//casegen:case "func", "_func"; "keyword"
func sanitize(name, want string) error {
	if got := casegen.Sanitize(name); got != want {
		return fmt.Errorf("Sanitize(%q) = %q, want %q", name, got, want)
	}
	return nil
}

//casegen:case 0; "immediate"
//casegen:case time.Millisecond; "one millisecond"
//casegen:case time.Hour; "an hour"
func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// doubles checks the n:2n pair each file under testdata/doubles holds.
//
//casegen:dir "testdata/doubles"
func doubles(path, contents string) error {
	in, out, ok := strings.Cut(strings.TrimSpace(contents), ":")
	if !ok {
		return fmt.Errorf("%s: want n:2n, got %q", path, contents)
	}
	n, err := strconv.Atoi(in)
	if err != nil {
		return err
	}
	want, err := strconv.Atoi(out)
	if err != nil {
		return err
	}
	if n*2 != want {
		return fmt.Errorf("%s: %d*2 != %d", path, n, want)
	}
	return nil
}
