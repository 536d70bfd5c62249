package dsa

import "io"

// Progress is a coarse signal emitted during parameter generation.
type Progress int

const (
	// ProgressUnknown is reported for signals outside the known set.
	ProgressUnknown Progress = iota
	// ProgressRejected means a candidate failed a primality test.
	ProgressRejected
	// ProgressPassedOnce means the subgroup order q was accepted.
	ProgressPassedOnce
	// ProgressPassedFinal means the modulus p was accepted.
	ProgressPassedFinal
)

// Observer receives Progress signals synchronously from inside the
// generation loop. Implementations must not block.
type Observer interface {
	Observe(Progress)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Progress)

func (f ObserverFunc) Observe(p Progress) { f(p) }

// Discard is an Observer that drops every signal.
var Discard Observer = ObserverFunc(func(Progress) {})

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// TickWriter maps each Progress signal to a single character on w and
// flushes after every write, so an operator watching a long generation
// sees liveness.
type TickWriter struct {
	w io.Writer
}

// NewTickWriter returns an Observer printing progress characters to w.
func NewTickWriter(w io.Writer) *TickWriter { return &TickWriter{w: w} }

func (t *TickWriter) Observe(p Progress) {
	var c byte
	switch p {
	case ProgressRejected:
		c = '.'
	case ProgressPassedOnce:
		c = '+'
	case ProgressPassedFinal:
		c = '*'
	default:
		c = '?'
	}
	_, _ = t.w.Write([]byte{c})
	switch w := t.w.(type) {
	case flusher:
		_ = w.Flush()
	case syncer:
		_ = w.Sync()
	}
}
