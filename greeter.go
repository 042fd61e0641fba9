package greetbridge

import (
	"runtime"
	"sync"

	"github.com/feather-lang/greetbridge/native"
)

// Greeter owns a native greeting object.
//
// Greet and GreetUTF16 may be called concurrently; the native subject is
// immutable after construction. Close releases the native object and may
// race with Greet safely.
type Greeter struct {
	mu      sync.RWMutex
	native  *native.Greeting
	cleanup runtime.Cleanup
	subject string
}

// New constructs a Greeter from UTF-8 text. Text that is not valid UTF-8
// yields an *EncodingError and no native object is allocated.
func New(subject string) (*Greeter, error) {
	b, err := ToNative(subject)
	if err != nil {
		return nil, err
	}
	return newGreeter(subject, b), nil
}

// NewUTF16 constructs a Greeter from UTF-16 code units, as supplied by
// managed runtimes whose strings are UTF-16.
func NewUTF16(subject []uint16) (*Greeter, error) {
	s, err := DecodeUTF16(subject)
	if err != nil {
		return nil, err
	}
	return newGreeter(s, []byte(s)), nil
}

func newGreeter(subject string, b []byte) *Greeter {
	g := &Greeter{
		native:  native.New(b),
		subject: subject,
	}
	// Frees the native object if the caller drops the Greeter without Close.
	g.cleanup = runtime.AddCleanup(g, func(n *native.Greeting) { n.Free() }, g.native)
	return g
}

// Subject returns the text the Greeter was constructed from.
func (g *Greeter) Subject() string {
	return g.subject
}

// Greet returns the greeting, "Hello, <subject>!".
func (g *Greeter) Greet() (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.native == nil {
		return "", ErrClosed
	}
	return FromNative(g.native.Greet())
}

// GreetUTF16 returns the greeting as UTF-16 code units.
func (g *Greeter) GreetUTF16() ([]uint16, error) {
	msg, err := g.Greet()
	if err != nil {
		return nil, err
	}
	return EncodeUTF16(msg)
}

// Close releases the native object. Only the first call has an effect.
func (g *Greeter) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.native == nil {
		return nil
	}
	g.cleanup.Stop()
	g.native.Free()
	g.native = nil
	return nil
}

// Closed reports whether Close has been called.
func (g *Greeter) Closed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.native == nil
}
