//go:build !linux

package strace

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
