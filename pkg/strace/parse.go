package strace

import (
	"regexp"
	"strings"

	"github.com/criyle/syscallgap/pkg/syscalls"
)

var callRe = regexp.MustCompile(`^([a-z0-9_]*)\(`)

// Parse returns the syscall names invoked according to the tracer output
func Parse(report string) syscalls.Set {
	s := syscalls.NewSet()
	for _, token := range strings.Fields(report) {
		if m := callRe.FindStringSubmatch(token); m != nil {
			s.Add(m[1])
		}
	}
	return s
}
