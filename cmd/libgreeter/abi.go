package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import "unsafe"

// abiCall captures what a C caller observes after one exported call: the
// status, the handle or greeting written through the out parameters, and
// the error message, if any. Buffers are copied into Go memory and freed
// with GreeterFree, the way a host binding would.
type abiCall struct {
	Status     int
	Handle     uintptr
	Text       string
	Units      []uint16
	Terminated bool
	Err        string
}

// takeError copies and frees an error message returned through errOut.
func takeError(p *C.char) string {
	if p == nil {
		return ""
	}
	defer GreeterFree(unsafe.Pointer(p))
	return C.GoString(p)
}

// abiNew passes subject to GreeterNew in a C buffer with an explicit length.
// A nil subject is passed as a NULL pointer.
func abiNew(subject []byte) abiCall {
	var p unsafe.Pointer
	if subject != nil {
		p = C.CBytes(subject)
		defer C.free(p)
	}
	return abiNewRaw(p, uint64(len(subject)))
}

// abiNewRaw calls GreeterNew with an arbitrary pointer and length.
func abiNewRaw(s unsafe.Pointer, n uint64) abiCall {
	var h C.size_t
	var errMsg *C.char
	status := GreeterNew((*C.char)(s), C.size_t(n), &h, &errMsg)
	return abiCall{Status: int(status), Handle: uintptr(h), Err: takeError(errMsg)}
}

// abiNewUTF16 passes units to GreeterNewUTF16 in a C buffer. A nil slice is
// passed as a NULL pointer.
func abiNewUTF16(units []uint16) abiCall {
	var p *C.uint16_t
	if units != nil {
		size := C.size_t(len(units)+1) * C.size_t(unsafe.Sizeof(C.uint16_t(0)))
		p = (*C.uint16_t)(C.malloc(size))
		defer C.free(unsafe.Pointer(p))
		copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(units)), units)
	}
	return abiNewUTF16Raw(unsafe.Pointer(p), uint64(len(units)))
}

// abiNewUTF16Raw calls GreeterNewUTF16 with an arbitrary pointer and length.
func abiNewUTF16Raw(s unsafe.Pointer, n uint64) abiCall {
	var h C.size_t
	var errMsg *C.char
	status := GreeterNewUTF16((*C.uint16_t)(s), C.size_t(n), &h, &errMsg)
	return abiCall{Status: int(status), Handle: uintptr(h), Err: takeError(errMsg)}
}

// abiNewNoOut calls GreeterNew without an out parameter. When withErr is
// false errOut is NULL as well.
func abiNewNoOut(withErr bool) abiCall {
	var errMsg *C.char
	errOut := &errMsg
	if !withErr {
		errOut = nil
	}
	status := GreeterNew(nil, 0, nil, errOut)
	return abiCall{Status: int(status), Err: takeError(errMsg)}
}

// abiGreet calls GreeterGreet and reads the greeting by its reported length.
// Terminated reports whether a NUL follows the last byte.
func abiGreet(h uintptr) abiCall {
	var out *C.char
	var n C.size_t
	var errMsg *C.char
	status := GreeterGreet(C.size_t(h), &out, &n, &errMsg)
	call := abiCall{Status: int(status), Handle: h, Err: takeError(errMsg)}
	if out == nil {
		return call
	}
	defer GreeterFree(unsafe.Pointer(out))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(n)+1)
	call.Text = string(buf[:n])
	call.Terminated = buf[n] == 0
	return call
}

// abiGreetUTF16 calls GreeterGreetUTF16 and reads the units by their
// reported length. Terminated reports whether a zero unit follows them.
func abiGreetUTF16(h uintptr) abiCall {
	var out *C.uint16_t
	var n C.size_t
	var errMsg *C.char
	status := GreeterGreetUTF16(C.size_t(h), &out, &n, &errMsg)
	call := abiCall{Status: int(status), Handle: h, Err: takeError(errMsg)}
	if out == nil {
		return call
	}
	defer GreeterFree(unsafe.Pointer(out))
	buf := unsafe.Slice((*uint16)(unsafe.Pointer(out)), int(n)+1)
	call.Units = append([]uint16(nil), buf[:n]...)
	call.Terminated = buf[n] == 0
	return call
}

// abiGreetNoOut calls GreeterGreet with NULL for every out parameter.
func abiGreetNoOut(h uintptr) int {
	return int(GreeterGreet(C.size_t(h), nil, nil, nil))
}

// abiGreetNoLength calls GreeterGreet without a length out parameter and
// reads the greeting up to its NUL terminator.
func abiGreetNoLength(h uintptr) abiCall {
	var out *C.char
	status := GreeterGreet(C.size_t(h), &out, nil, nil)
	call := abiCall{Status: int(status), Handle: h}
	if out != nil {
		defer GreeterFree(unsafe.Pointer(out))
		call.Text = C.GoString(out)
	}
	return call
}

// abiRelease calls GreeterRelease.
func abiRelease(h uintptr) int {
	return int(GreeterRelease(C.size_t(h)))
}

// abiBuffer returns a two byte C buffer for calls whose length is rejected
// before the buffer is read. Free it with GreeterFree.
func abiBuffer() unsafe.Pointer {
	return C.calloc(1, 2)
}
