package seccomp

import (
	libseccomp "github.com/elastic/go-seccomp-bpf"
)

// Action is seccomp trap action
type Action uint32

// Action defines seccomp action to the syscall
// default value 0 is invalid
const (
	ActionAllow Action = iota + 1
	ActionErrno
	ActionTrace
	ActionKill
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionErrno:
		return "errno"
	case ActionTrace:
		return "trace"
	case ActionKill:
		return "kill"
	default:
		return "invalid"
	}
}

// toSeccompAction convert action to go-seccomp-bpf compatible action
func toSeccompAction(a Action) libseccomp.Action {
	switch a {
	case ActionAllow:
		return libseccomp.ActionAllow
	case ActionErrno:
		return libseccomp.ActionErrno
	case ActionTrace:
		return libseccomp.ActionTrace
	default:
		return libseccomp.ActionKillProcess
	}
}
