package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// StepSpec is everything an executor needs to run one pipeline step.
type StepSpec struct {
	RunID   uint64
	Index   int
	Name    string
	Command string
	Image   string
	WorkDir string
	Env     map[string]string
}

// Outcome is what a step produced. A non-zero exit code is not an error at
// this layer; the runner applies the exit-code contract.
type Outcome struct {
	Output   string
	ExitCode int
}

// Executor runs one step to completion. The returned error means the step
// could not be run at all (infrastructure failure), not that it exited
// non-zero.
type Executor interface {
	RunStep(ctx context.Context, spec StepSpec) (Outcome, error)
}

// LocalExecutor runs steps directly on the host under sh -c.
type LocalExecutor struct{}

func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{}
}

func (e *LocalExecutor) RunStep(ctx context.Context, spec StepSpec) (Outcome, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", spec.Command)
	cmd.Dir = spec.WorkDir
	cmd.Env = append(os.Environ(), flattenEnv(spec.Env)...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Outcome{Output: out.String(), ExitCode: exitErr.ExitCode()}, nil
		}
		return Outcome{Output: out.String(), ExitCode: -1}, fmt.Errorf("failed to run step %q: %w", spec.Name, err)
	}
	return Outcome{Output: out.String(), ExitCode: 0}, nil
}

func flattenEnv(env map[string]string) []string {
	flat := make([]string, 0, len(env))
	for k, v := range env {
		flat = append(flat, fmt.Sprintf("%s=%s", k, v))
	}
	return flat
}
