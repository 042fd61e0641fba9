// Package greetbridge exposes a natively implemented greeting object to Go
// callers and, through cmd/libgreeter, to other managed runtimes.
//
// # Overview
//
// The greeting object lives on the native side of a cgo boundary (see
// package native). A Greeter is the managed-side owner of one such object:
//
//	g, err := greetbridge.New("World")
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
//	msg, _ := g.Greet() // "Hello, World!"
//
// The greeting template is fixed: "Hello, " + subject + "!". An empty
// subject greets as "Hello, !".
//
// # Strings at the Boundary
//
// Text is copied every time it crosses the boundary, in both directions.
// No Go memory is retained by native code and no native memory is exposed
// to Go callers.
//
// Conversions are lossless or they fail. Go strings that are not valid
// UTF-8 and UTF-16 input containing unpaired surrogates are rejected with
// an *EncodingError; nothing is truncated or replaced:
//
//	_, err := greetbridge.NewUTF16([]uint16{0xD800})
//	errors.Is(err, greetbridge.ErrEncoding) // true
//
// # Ownership
//
// A Greeter owns its native object exclusively. Close runs the native
// destructor exactly once; later calls are no-ops, and Greet on a closed
// Greeter returns ErrClosed. A Greeter that becomes unreachable without
// Close is released by a runtime cleanup.
package greetbridge
