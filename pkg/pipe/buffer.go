// Package pipe provides a wrapper to create a pipe and
// collect the bytes written to its write end into a buffer
package pipe

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Buffer is used to create a writable pipe and read
// at most max bytes to a buffer (no limit if max <= 0)
type Buffer struct {
	W      *os.File
	Max    int64
	Buffer *bytes.Buffer
	Done   <-chan struct{}
}

// NewPipe create a pipe with a goroutine to copy its read-end to writer
// returns the write end and signal for finish
// caller need to close w
func NewPipe(writer io.Writer, n int64) (<-chan struct{}, *os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer r.Close()
		if n <= 0 {
			io.Copy(writer, r)
			return
		}
		io.CopyN(writer, r, n)
		// ensure no blocking / SIGPIPE on the other end
		io.Copy(io.Discard, r)
	}()
	return done, w, nil
}

// NewBuffer creates a os pipe, caller need to close w
// Notice: if rely on done for finish, w need be closed in parent process
func NewBuffer(max int64) (*Buffer, error) {
	buffer := new(bytes.Buffer)
	n := max
	if n > 0 {
		n++
	}
	done, w, err := NewPipe(buffer, n)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		W:      w,
		Max:    max,
		Buffer: buffer,
		Done:   done,
	}, nil
}

func (b Buffer) String() string {
	if b.Max <= 0 {
		return fmt.Sprintf("Buffer[%d]", b.Buffer.Len())
	}
	return fmt.Sprintf("Buffer[%d/%d]", b.Buffer.Len(), b.Max)
}
