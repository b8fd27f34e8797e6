package diag

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives every diagnostic as soon as it is found
type Reporter interface {
	Report(err *Error)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(err *Error)

// Report calls f(err)
func (f ReporterFunc) Report(err *Error) {
	f(err)
}

// WriterReporter prints one diagnostic line per error
type WriterReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterReporter creates a reporter writing to w
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report writes the diagnostic line
func (r *WriterReporter) Report(err *Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, err.Error())
}

// Collector keeps every reported diagnostic
type Collector struct {
	mu     sync.Mutex
	errors ErrorList
}

// Report stores the diagnostic
func (c *Collector) Report(err *Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors.Add(err)
}

// Errors returns a copy of the collected diagnostics
func (c *Collector) Errors() ErrorList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(ErrorList(nil), c.errors...)
}

// Reset drops all collected diagnostics
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
}

type discard struct{}

func (discard) Report(*Error) {}

// Discard is a Reporter that drops every diagnostic
var Discard Reporter = discard{}
