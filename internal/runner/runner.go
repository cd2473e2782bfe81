// Package runner executes a built awk command and captures its output.
package runner

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/awkstudio/internal/awk"
	"github.com/vegasq/awkstudio/internal/logger"
)

// ErrProcess matches every ProcessError
var ErrProcess = errors.New("awk reported an error")

// ProcessError carries the verbatim stderr of a run
type ProcessError struct {
	Stderr   string
	ExitCode int
}

func (e *ProcessError) Error() string {
	return strings.TrimRight(e.Stderr, "\n")
}

// Is reports whether target is ErrProcess
func (e *ProcessError) Is(target error) bool {
	return target == ErrProcess
}

// Result is the captured outcome of one run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Err returns a *ProcessError when the process wrote to stderr, nil
// otherwise. Any stderr output marks the run as failed.
func (r Result) Err() error {
	if r.Stderr == "" {
		return nil
	}
	return &ProcessError{Stderr: r.Stderr, ExitCode: r.ExitCode}
}

// Executor runs commands. Runner is the process-backed implementation.
type Executor interface {
	Run(cmd awk.Command) (Result, error)
}

// Runner runs awk as a child process
type Runner struct {
	log logger.LoggerI
}

// New creates a Runner
func New(log logger.LoggerI) *Runner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Runner{log: log}
}

// Run executes cmd and waits for it to exit. There is no timeout.
//
// A non-zero exit status is reported through Result, not as an error; the
// error is only set when the process could not be started.
func (r *Runner) Run(cmd awk.Command) (Result, error) {
	args := cmd.Args()
	r.log.Debug("running awk", logger.Any("args", args))

	var stdout, stderr bytes.Buffer
	proc := exec.Command(args[0], args[1:]...)
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	err := proc.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		r.log.Info("awk exited with non-zero status", logger.Int("code", res.ExitCode))
		return res, nil
	}
	if err != nil {
		return res, errors.Wrapf(err, "failed to start %s", args[0])
	}

	r.log.Debug("awk finished", logger.Int("stdout_bytes", stdout.Len()), logger.Int("stderr_bytes", stderr.Len()))
	return res, nil
}

var _ Executor = (*Runner)(nil)
