//go:build !js

package casegen

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Verify runs go vet on the package in dir with the generated files in
// place. Problems the generator does not detect itself, such as a case
// argument that does not fit its parameter type, surface here.
func Verify(ctx context.Context, dir string, tags ...string) error {
	cmd := verifyCommand(ctx, dir, tags)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("verify %s failed: %w\nOutput: %s", dir, err, output)
	}
	return nil
}

func verifyCommand(ctx context.Context, dir string, tags []string) *exec.Cmd {
	args := []string{"vet"}
	if len(tags) > 0 {
		args = append(args, "-tags", strings.Join(tags, ","))
	}
	args = append(args, ".")
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = dir // run in the package directory so relative imports resolve
	return cmd
}
