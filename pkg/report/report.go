// Package report renders the syscalls observed in a trace but absent from the
// sandbox allowlist.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/criyle/syscallgap/pkg/syscalls"
)

// DefaultSystem is the sandbox name used in the report header
const DefaultSystem = "saferun"

// Gap is the sorted list of syscalls used but not allowed
type Gap []string

// Missing computes observed - allowed in lexicographical order
func Missing(allowed, observed syscalls.Set) Gap {
	return Gap(observed.Difference(allowed).Sorted())
}

// Reporter renders the Gap for the sandbox named System
type Reporter struct {
	System string
}

// Header returns the header line of the report
func (r Reporter) Header() string {
	system := r.System
	if system == "" {
		system = DefaultSystem
	}
	return fmt.Sprintf("--- Missing syscalls in %s: ---", system)
}

// Render writes the header line followed by one syscall per line,
// an empty gap renders as an empty line after the header
func (r Reporter) Render(w io.Writer, g Gap) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", r.Header(), strings.Join(g, "\n"))
	return err
}

// Render writes the report for DefaultSystem
func Render(w io.Writer, g Gap) error {
	return Reporter{}.Render(w, g)
}
