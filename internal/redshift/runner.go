package redshift

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its captured output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError reports a failed invocation: launch failure or non-zero exit.
type CommandError struct {
	Name   string
	Args   []string
	Output []byte
	Err    error
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(string(e.Output))
	if out == "" {
		return fmt.Sprintf("%s: %v", Describe(e.Name, e.Args), e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", Describe(e.Name, e.Args), e.Err, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec, capturing stdout and stderr.
type ExecRunner struct{}

// Run starts name with args and waits for it to exit.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.Bytes(), &CommandError{
			Name:   name,
			Args:   args,
			Output: out.Bytes(),
			Err:    err,
		}
	}
	return out.Bytes(), nil
}

// CheckDependencies verifies that every named binary can be found.
func CheckDependencies(names ...string) error {
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("'%s' not found in PATH. Install it (e.g., sudo apt install %s)", name, name)
		}
	}
	return nil
}
