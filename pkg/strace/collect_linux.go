package strace

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// tracer should never outlive the tool
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Pdeathsig: unix.SIGKILL,
	}
}
