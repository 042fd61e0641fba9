// Package main exports the greeter bridge as a C shared library for managed
// runtimes (Swift, JNI, .NET, JavaScript engines).
// Build with: go build -buildmode=c-shared -o libgreeter.so .
//
// Every buffer returned by this library is owned by the caller and must be
// released with GreeterFree. Input buffers are copied before a call returns.
package main

/*
#include <stdlib.h>
#include <stdint.h>
#include <string.h>

#define GREETER_OK               0
#define GREETER_ENCODING_ERROR   1
#define GREETER_INVALID_HANDLE   2
#define GREETER_INVALID_ARGUMENT 3
*/
import "C"

import (
	"math"
	"unsafe"
)

// maxInputBytes bounds the length of a subject buffer. Larger lengths are
// rejected before the buffer is touched.
const maxInputBytes = math.MaxInt32

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

//export GreeterNew
func GreeterNew(s *C.char, n C.size_t, out *C.size_t, errOut **C.char) C.int {
	if out == nil || (s == nil && n > 0) || n > maxInputBytes {
		return fail(errInvalidArgument, errOut)
	}
	*out = 0
	subject := string(unsafe.Slice((*byte)(unsafe.Pointer(s)), int(n)))
	h, err := newGreeter(subject)
	if err != nil {
		return fail(err, errOut)
	}
	*out = C.size_t(h)
	return C.GREETER_OK
}

//export GreeterNewUTF16
func GreeterNewUTF16(s *C.uint16_t, n C.size_t, out *C.size_t, errOut **C.char) C.int {
	if out == nil || (s == nil && n > 0) || n > maxInputBytes/2 {
		return fail(errInvalidArgument, errOut)
	}
	*out = 0
	h, err := newGreeterUTF16(unsafe.Slice((*uint16)(unsafe.Pointer(s)), int(n)))
	if err != nil {
		return fail(err, errOut)
	}
	*out = C.size_t(h)
	return C.GREETER_OK
}

//export GreeterRelease
func GreeterRelease(h C.size_t) C.int {
	if err := release(uintptr(h)); err != nil {
		return C.int(statusOf(err))
	}
	return C.GREETER_OK
}

//export GreeterLive
func GreeterLive() C.size_t {
	return C.size_t(live())
}

// -----------------------------------------------------------------------------
// Greeting
// -----------------------------------------------------------------------------

//export GreeterGreet
func GreeterGreet(h C.size_t, out **C.char, n *C.size_t, errOut **C.char) C.int {
	if out == nil {
		return fail(errInvalidArgument, errOut)
	}
	*out = nil
	msg, err := greet(uintptr(h))
	if err != nil {
		return fail(err, errOut)
	}
	// C.CString terminates with NUL; n carries the length for embedded NULs.
	*out = C.CString(msg)
	if n != nil {
		*n = C.size_t(len(msg))
	}
	return C.GREETER_OK
}

//export GreeterGreetUTF16
func GreeterGreetUTF16(h C.size_t, out **C.uint16_t, n *C.size_t, errOut **C.char) C.int {
	if out == nil {
		return fail(errInvalidArgument, errOut)
	}
	*out = nil
	units, err := greetUTF16(uintptr(h))
	if err != nil {
		return fail(err, errOut)
	}
	buf := (*C.uint16_t)(C.malloc(C.size_t(len(units)+1) * C.size_t(unsafe.Sizeof(C.uint16_t(0)))))
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(buf)), len(units)+1)
	copy(dst, units)
	dst[len(units)] = 0
	*out = buf
	if n != nil {
		*n = C.size_t(len(units))
	}
	return C.GREETER_OK
}

// -----------------------------------------------------------------------------
// Memory
// -----------------------------------------------------------------------------

//export GreeterFree
func GreeterFree(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// fail stores err's message in errOut, when the caller asked for one, and
// returns the matching status code.
func fail(err error, errOut **C.char) C.int {
	if errOut != nil {
		*errOut = C.CString(err.Error())
	}
	return C.int(statusOf(err))
}

func main() {}
