// Package allowlist extracts the syscall allowlist declared by a seccomp
// policy source.
//
// The policy source declares each permitted syscall with a function-call
// like macro naming exactly one syscall, for example
//
//	ALLOW_SYSCALL(read);
//	ALLOW_SYSCALL(exit_group);
//
// Any other content of the source is ignored.
package allowlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/criyle/syscallgap/pkg/syscalls"
)

// DefaultMarker is the allow-declaration macro used by the saferun profile
const DefaultMarker = "ALLOW_SYSCALL"

// ErrSourceUnreadable is returned when the policy source cannot be read
var ErrSourceUnreadable = errors.New("policy source unreadable")

var defaultExtractor = NewExtractor(DefaultMarker)

// Extractor extracts syscall names declared with Marker
type Extractor struct {
	Marker string
	re     *regexp.Regexp
}

// NewExtractor creates an Extractor for the given allow-declaration macro
func NewExtractor(marker string) *Extractor {
	// surrounding spaces are trimmed, anything but a syscall identifier is skipped
	return &Extractor{
		Marker: marker,
		re:     regexp.MustCompile(regexp.QuoteMeta(marker) + `\(\s*([a-z0-9_]+)\s*\)`),
	}
}

// Extract returns all syscall names declared in src
func (e *Extractor) Extract(src string) syscalls.Set {
	s := syscalls.NewSet()
	for _, m := range e.re.FindAllStringSubmatch(src, -1) {
		s.Add(m[1])
	}
	return s
}

// Load reads the policy source at path and extracts its declarations
func (e *Extractor) Load(path string) (syscalls.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	return e.Extract(string(src)), nil
}

// Extract returns syscall names declared with DefaultMarker in src
func Extract(src string) syscalls.Set {
	return defaultExtractor.Extract(src)
}

// Load reads path and extracts syscall names declared with DefaultMarker
func Load(path string) (syscalls.Set, error) {
	return defaultExtractor.Load(path)
}
