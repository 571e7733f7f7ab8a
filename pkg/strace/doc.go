// Package strace runs a target command under an strace-compatible tracer and
// parses the syscall records the tracer writes to its diagnostic stream.
//
// Collector
//
// Collector starts the tracer with the target command as its trailing
// arguments and captures everything written to the tracer's stderr. A target
// command exiting with non-zero status is not an error, the trace collected
// so far is still returned. Only failing to start the tracer is reported, as
// ErrTracerUnavailable.
//
// Parse
//
// Parse extracts syscall names from records of the form
//
//	openat(AT_FDCWD, "/etc/ld.so.cache", O_RDONLY|O_CLOEXEC) = 3
//
// A syscall name is a lowercase token of letters, digits and underscores
// directly followed by "(", so names such as exit_group and rt_sigaction are
// kept. Anything not shaped like a call (signal deliveries, exit lines, argument
// fragments) is skipped.
package strace
