// Package native wraps the C++ Greeting object compiled into this package.
//
// Every string crossing the boundary is copied: subjects are copied into C
// memory before construction and greetings are copied back into Go memory
// before the native buffer is freed. No Go pointer is retained by C code.
package native

/*
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lstdc++
#include <stdlib.h>
#include "greeting.h"
*/
import "C"

import (
	"bytes"
	"unsafe"
)

// Template parts used by the native greet method.
const (
	Salutation = "Hello, "
	Terminator = "!"
)

// Greeting is a handle to a natively allocated greeting object.
// A Greeting is not safe for concurrent Free; callers that share one
// across goroutines must serialize Free against Greet.
type Greeting struct {
	ptr *C.gb_greeting
}

// New constructs a native greeting from subject. The bytes are copied and
// may contain NUL or any other value.
func New(subject []byte) *Greeting {
	var data *C.char
	if len(subject) > 0 {
		data = (*C.char)(C.CBytes(subject))
		defer C.free(unsafe.Pointer(data))
	}
	ptr := C.gb_greeting_new(data, C.size_t(len(subject)))
	if ptr == nil {
		panic("native: out of memory constructing greeting")
	}
	return &Greeting{ptr: ptr}
}

// Greet returns a Go-owned copy of the native greeting.
// It returns nil if the greeting has been freed.
func (g *Greeting) Greet() []byte {
	if g == nil || g.ptr == nil {
		return nil
	}
	var n C.size_t
	cstr := C.gb_greeting_greet(g.ptr, &n)
	if cstr == nil {
		panic("native: out of memory producing greeting")
	}
	defer C.gb_string_free(cstr)
	// n is a size_t; C.int would truncate greetings of 2 GiB or more.
	return bytes.Clone(unsafe.Slice((*byte)(unsafe.Pointer(cstr)), int(n)))
}

// Free destroys the native object. It is safe to call more than once;
// only the first call reaches the native destructor.
func (g *Greeting) Free() {
	if g == nil || g.ptr == nil {
		return
	}
	C.gb_greeting_free(g.ptr)
	g.ptr = nil
}

// Freed reports whether Free has been called.
func (g *Greeting) Freed() bool {
	return g == nil || g.ptr == nil
}
