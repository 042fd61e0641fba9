// Package registry maps opaque integer handles to Go values so that C code
// can refer to Go objects without holding Go pointers.
package registry

import "sync"

// Registry holds values addressed by handles. Handles start at 1 and are
// never reused, so a stale handle can never alias a newer value.
type Registry[T any] struct {
	mu     sync.Mutex
	values map[uintptr]T
	next   uintptr
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		values: make(map[uintptr]T),
		next:   1,
	}
}

// Register stores v and returns its handle.
func (r *Registry[T]) Register(v T) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.values[h] = v
	return h
}

// Lookup returns the value for h.
func (r *Registry[T]) Lookup(h uintptr) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[h]
	return v, ok
}

// Release removes h and returns its value. Only the first release of a
// handle reports ok.
func (r *Registry[T]) Release(h uintptr) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[h]
	if ok {
		delete(r.values, h)
	}
	return v, ok
}

// Len returns the number of live handles.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
