// Command syscallgap traces a command and reports the syscalls it invokes
// that the saferun seccomp allowlist does not permit.
//
// Usage:
//
//	syscallgap <command> [args...]
//
// All arguments are passed to the tracer unmodified, including none at all. Settings are read from
// the SYSCALLGAP_* environment variables, see package config.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/criyle/syscallgap/cmd/syscallgap/config"
	"github.com/criyle/syscallgap/pkg/allowlist"
	"github.com/criyle/syscallgap/pkg/report"
	"github.com/criyle/syscallgap/pkg/seccomp"
	"github.com/criyle/syscallgap/pkg/strace"
	"github.com/criyle/syscallgap/pkg/syscalls"
)

var showDetails bool

func debug(v ...interface{}) {
	if showDetails {
		fmt.Fprintln(os.Stderr, v...)
	}
}

func main() {
	args := os.Args[1:]
	conf := config.FromEnv()
	showDetails = conf.Debug
	debug("config:", fmt.Sprintf("%+v", conf))

	if err := run(conf, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(conf config.Config, args []string, stdout io.Writer) error {
	allowed, err := allowlist.NewExtractor(conf.Marker).Load(conf.PolicyPath)
	if err != nil {
		return err
	}
	debug("allowed syscalls:", allowed.Len())
	checkFilter(allowed)

	c := strace.Collector{
		Tracer: conf.Tracer,
		Flags:  conf.TracerFlags,
		Stdin:  os.Stdin,
		Stdout: os.Stderr,
	}
	trace, err := c.Collect(args)
	if err != nil {
		return err
	}
	observed := strace.Parse(trace)
	debug("trace bytes:", len(trace), "observed syscalls:", observed.Len())

	r := report.Reporter{System: conf.System}
	return r.Render(stdout, report.Missing(allowed, observed))
}

// checkFilter reports whether the allowlist assembles for the host
func checkFilter(allowed syscalls.Set) {
	if !showDetails {
		return
	}
	names := allowed.Sorted()
	unknown, err := seccomp.Unknown(names)
	if err != nil {
		debug("seccomp: host architecture:", err)
		return
	}
	if len(unknown) > 0 {
		debug("seccomp: unknown on host architecture:", unknown)
		return
	}
	b := seccomp.Builder{Allow: names, Default: seccomp.ActionKill}
	f, err := b.Build()
	if err != nil {
		debug("seccomp:", err)
		return
	}
	debug("seccomp:", f)
}
