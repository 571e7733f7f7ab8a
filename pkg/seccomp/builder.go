package seccomp

import (
	"encoding/binary"
	"fmt"
	"sort"

	libseccomp "github.com/elastic/go-seccomp-bpf"
	"github.com/elastic/go-seccomp-bpf/arch"
	"golang.org/x/net/bpf"
)

// Builder is used to build the filter
type Builder struct {
	Allow   []string
	Default Action
}

// Build builds the filter for the host architecture
func (b *Builder) Build() (Filter, error) {
	unknown, err := Unknown(b.Allow)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown syscalls for host architecture: %v", unknown)
	}

	def := b.Default
	if def == 0 {
		def = ActionKill
	}
	policy := libseccomp.Policy{
		DefaultAction: toSeccompAction(def),
	}
	if len(b.Allow) > 0 {
		policy.Syscalls = []libseccomp.SyscallGroup{{
			Names:  b.Allow,
			Action: libseccomp.ActionAllow,
		}}
	}

	insts, err := policy.Assemble()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble seccomp policy: %v", err)
	}
	raw, err := bpf.Assemble(insts)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble bpf: %v", err)
	}
	return toFilter(raw), nil
}

// Unknown returns the names not in the host architecture syscall table
func Unknown(names []string) ([]string, error) {
	info, err := arch.GetInfo("")
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(info.SyscallNumbers))
	for _, n := range info.SyscallNumbers {
		known[n] = true
	}
	var rt []string
	for _, n := range names {
		if !known[n] {
			rt = append(rt, n)
		}
	}
	sort.Strings(rt)
	return rt, nil
}

// toFilter lays out instructions as struct sock_filter
func toFilter(raw []bpf.RawInstruction) Filter {
	f := make(Filter, 0, len(raw)*instructionSize)
	for _, r := range raw {
		f = binary.NativeEndian.AppendUint16(f, r.Op)
		f = append(f, r.Jt, r.Jf)
		f = binary.NativeEndian.AppendUint32(f, r.K)
	}
	return f
}
