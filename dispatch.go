package variant

import (
	"reflect"
	"unsafe"
)

// Interact calls body with a pointer to the live value and returns its
// result. T must be the live type; errors from body are returned as is.
func Interact[T, R any](v *Variant, body func(*T) (R, error)) (R, error) {
	if err := v.check(errMetaOpInteract, reflect.TypeFor[T]()); err != nil {
		var zero R
		return zero, err
	}
	return body(live[T](v))
}

// InteractAsAny calls body with a settable Value aliasing the live value,
// without any type check, and returns its result. body must not store a
// value of another type.
func InteractAsAny[R any](v *Variant, body func(reflect.Value) (R, error)) (R, error) {
	v.mustLive()
	return body(v.region.Load(v.types[v.tag]))
}

// Handler is one case of Visit. Build it with Case.
type Handler struct {
	typ reflect.Type
	fn  func(unsafe.Pointer) error
}

// Case returns a Handler for candidates of type T.
func Case[T any](fn func(*T) error) Handler {
	return Handler{
		typ: reflect.TypeFor[T](),
		fn: func(p unsafe.Pointer) error {
			return fn((*T)(p))
		},
	}
}

// Visit calls the handler at the live position. handlers must list exactly
// one case per candidate, in candidate order; otherwise Visit fails with
// ErrHandlerMismatch before calling anything. The typed UnionN wrappers
// check this at compile time instead.
func (v *Variant) Visit(handlers ...Handler) error {
	v.mustLive()
	if len(handlers) != len(v.types) {
		return fail(errMetaOpVisit, nil, ErrHandlerMismatch)
	}
	for i, h := range handlers {
		if h.typ != v.types[i] {
			return fail(errMetaOpVisit, h.typ, ErrHandlerMismatch)
		}
	}
	return handlers[v.tag].fn(v.region.Pointer(v.types[v.tag]))
}
