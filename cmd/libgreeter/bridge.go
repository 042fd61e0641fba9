package main

import (
	"errors"
	"log/slog"
	"os"
	"slices"

	"github.com/feather-lang/greetbridge"
	"github.com/feather-lang/greetbridge/internal/registry"
)

// Status codes returned across the C ABI.
const (
	statusOK              = 0
	statusEncodingError   = 1
	statusInvalidHandle   = 2
	statusInvalidArgument = 3
)

var (
	errInvalidHandle   = errors.New("libgreeter: invalid or released handle")
	errInvalidArgument = errors.New("libgreeter: invalid argument")
)

// greeters owns every Greeter handed out to C callers.
var greeters = registry.New[*greetbridge.Greeter]()

var logger = newLogger(os.Getenv("GREETER_DEBUG") != "")

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// statusOf maps a bridge error onto its C status code.
func statusOf(err error) int {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, greetbridge.ErrEncoding):
		return statusEncodingError
	case errors.Is(err, errInvalidHandle), errors.Is(err, greetbridge.ErrClosed):
		return statusInvalidHandle
	default:
		return statusInvalidArgument
	}
}

func register(g *greetbridge.Greeter) uintptr {
	h := greeters.Register(g)
	logger.Debug("greeter created", slog.Uint64("handle", uint64(h)), slog.Int("live", greeters.Len()))
	return h
}

func newGreeter(subject string) (uintptr, error) {
	g, err := greetbridge.New(subject)
	if err != nil {
		logger.Debug("construct failed", slog.Any("error", err))
		return 0, err
	}
	return register(g), nil
}

func newGreeterUTF16(subject []uint16) (uintptr, error) {
	g, err := greetbridge.NewUTF16(slices.Clone(subject))
	if err != nil {
		logger.Debug("construct failed", slog.Any("error", err))
		return 0, err
	}
	return register(g), nil
}

func lookup(h uintptr) (*greetbridge.Greeter, error) {
	g, ok := greeters.Lookup(h)
	if !ok {
		logger.Debug("unknown handle", slog.Uint64("handle", uint64(h)))
		return nil, errInvalidHandle
	}
	return g, nil
}

func greet(h uintptr) (string, error) {
	g, err := lookup(h)
	if err != nil {
		return "", err
	}
	return g.Greet()
}

func greetUTF16(h uintptr) ([]uint16, error) {
	g, err := lookup(h)
	if err != nil {
		return nil, err
	}
	return g.GreetUTF16()
}

// release drops the handle and destroys the native object. A handle can be
// released once; later releases report errInvalidHandle.
func release(h uintptr) error {
	g, ok := greeters.Release(h)
	if !ok {
		logger.Debug("release of unknown handle", slog.Uint64("handle", uint64(h)))
		return errInvalidHandle
	}
	logger.Debug("greeter released", slog.Uint64("handle", uint64(h)), slog.Int("live", greeters.Len()))
	return g.Close()
}

func live() int {
	return greeters.Len()
}
