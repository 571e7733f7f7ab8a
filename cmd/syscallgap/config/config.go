// Package config resolves the syscallgap settings from the environment
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/criyle/syscallgap/pkg/allowlist"
	"github.com/criyle/syscallgap/pkg/report"
	"github.com/criyle/syscallgap/pkg/strace"
)

// Environment variables recognized by Load
const (
	EnvPolicy      = "SYSCALLGAP_POLICY"
	EnvMarker      = "SYSCALLGAP_MARKER"
	EnvTracer      = "SYSCALLGAP_TRACER"
	EnvTracerFlags = "SYSCALLGAP_TRACER_ARGS"
	EnvSystem      = "SYSCALLGAP_SYSTEM"
	EnvDebug       = "SYSCALLGAP_DEBUG"
)

// policy source location relative to the directory of the executable
var defaultPolicyPath = filepath.Join("..", "src", "setup_seccomp.cpp")

// Config defines the settings of a single run
type Config struct {
	PolicyPath  string
	Marker      string
	Tracer      string
	TracerFlags []string
	System      string
	Debug       bool
}

// Load reads the config through getenv, exe is the path of the running
// executable and is used to locate the policy source when not set
func Load(getenv func(string) string, exe string) Config {
	c := Config{
		PolicyPath:  getenv(EnvPolicy),
		Marker:      getenv(EnvMarker),
		Tracer:      getenv(EnvTracer),
		TracerFlags: strings.Fields(getenv(EnvTracerFlags)),
		System:      getenv(EnvSystem),
	}
	switch strings.ToLower(getenv(EnvDebug)) {
	case "1", "true", "yes", "on":
		c.Debug = true
	}

	if c.PolicyPath == "" {
		c.PolicyPath = filepath.Join(filepath.Dir(exe), defaultPolicyPath)
	}
	if c.Marker == "" {
		c.Marker = allowlist.DefaultMarker
	}
	if c.Tracer == "" {
		c.Tracer = strace.DefaultTracer
	}
	if c.System == "" {
		c.System = report.DefaultSystem
	}
	return c
}

// FromEnv loads the config of the running process
func FromEnv() Config {
	return Load(os.Getenv, executablePath())
}

// executablePath returns the real path of the running executable,
// falls back to argv[0]
func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	if p, err := filepath.EvalSymlinks(exe); err == nil {
		return p
	}
	return exe
}
