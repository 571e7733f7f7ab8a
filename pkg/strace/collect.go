package strace

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/criyle/syscallgap/pkg/pipe"
)

// DefaultTracer is the tracer program resolved from PATH
const DefaultTracer = "strace"

// ErrTracerUnavailable is returned when the tracer program cannot be started
var ErrTracerUnavailable = errors.New("tracer unavailable")

// Collector runs the target command under the tracer
type Collector struct {
	Tracer string   // tracer program name or path, DefaultTracer if empty
	Flags  []string // extra tracer options placed before the target command

	// stdin and stdout of the traced command, nil for none
	Stdin  io.Reader
	Stdout io.Writer
}

// Collect runs args under the tracer and returns the tracer's diagnostic output
func (c *Collector) Collect(args []string) (string, error) {
	tracer := c.Tracer
	if tracer == "" {
		tracer = DefaultTracer
	}

	path, err := exec.LookPath(tracer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTracerUnavailable, err)
	}

	buf, err := pipe.NewBuffer(0)
	if err != nil {
		return "", fmt.Errorf("failed to create trace pipe: %v", err)
	}

	cmdArgs := make([]string, 0, len(c.Flags)+len(args))
	cmdArgs = append(cmdArgs, c.Flags...)
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.Command(path, cmdArgs...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = buf.W
	cmd.SysProcAttr = sysProcAttr()

	err = cmd.Start()
	// the write end belongs to the tracer now
	buf.W.Close()
	if err != nil {
		<-buf.Done
		return "", fmt.Errorf("%w: %s: %v", ErrTracerUnavailable, path, err)
	}

	err = cmd.Wait()
	<-buf.Done

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return buf.Buffer.String(), fmt.Errorf("failed to wait for tracer: %v", err)
	}
	return buf.Buffer.String(), nil
}
