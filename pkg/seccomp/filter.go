// Package seccomp assembles a syscall allowlist into the seccomp BPF program
// for the host architecture, so an extracted allowlist can be checked against
// the syscall table the kernel actually knows.
package seccomp

import "fmt"

// sizeof(struct sock_filter)
const instructionSize = 8

// Filter is the BPF seccomp filter value
type Filter []byte

// Len returns the number of BPF instructions
func (f Filter) Len() int {
	return len(f) / instructionSize
}

func (f Filter) String() string {
	return fmt.Sprintf("Filter[%d instructions]", f.Len())
}
