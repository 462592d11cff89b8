// Package slot provides a container for exactly one value of a fixed type that
// is created empty and initialized later.
//
// Slot is the unchecked primitive under variant.Variant: it trusts its single
// owner to follow the lifecycle
//
//	New -> Initialize (once) -> Value ... -> Drop | Take
//
// and panics when the owner does not. Nothing here returns an error.
package slot

import (
	"reflect"
	"unsafe"

	"github.com/rawbytedev/variant/internal/common"
	"github.com/rawbytedev/variant/internal/region"
)

type state uint8

const (
	empty state = iota
	live
	dead
)

// Slot holds storage for one value of type T.
type Slot[T any] struct {
	region *region.Region
	typ    reflect.Type
	state  state
}

// New allocates storage for a T. No value is live yet.
func New[T any]() *Slot[T] {
	t := reflect.TypeFor[T]()
	return &Slot[T]{
		region: region.New(common.LayoutOf(t), common.IsPlain(t)),
		typ:    t,
	}
}

// Zeroed returns a slot whose storage is filled with zero bytes and treated as
// initialized. T must be plain: no pointers, slices, maps, strings, channels,
// functions or interfaces anywhere inside it.
func Zeroed[T any]() *Slot[T] {
	s := New[T]()
	if !common.IsPlain(s.typ) {
		panic("slot: Zeroed requires a plain type, got " + s.typ.String())
	}
	UnsafeInitialize(s, func(p unsafe.Pointer) struct{} {
		common.SetZero(unsafe.Slice((*byte)(p), s.typ.Size()))
		return struct{}{}
	})
	return s
}

// UnsafeInitialize hands the raw storage of s to body and returns whatever it
// returns. body must leave a valid T behind; the slot is live afterwards.
func UnsafeInitialize[T, R any](s *Slot[T], body func(p unsafe.Pointer) R) R {
	s.expect(empty, "UnsafeInitialize")
	res := body(s.region.Reserve(s.typ))
	s.state = live
	return res
}

// Initialize stores v. It panics if the slot already holds a value.
func (s *Slot[T]) Initialize(v T) {
	s.expect(empty, "Initialize")
	*(*T)(s.region.Reserve(s.typ)) = v
	s.state = live
}

// Value returns a pointer to the live value. Fields can be read and written
// through it in place.
func (s *Slot[T]) Value() *T {
	s.expect(live, "Value")
	return (*T)(s.region.Pointer(s.typ))
}

// Take moves the value out. The slot must not be used again.
func (s *Slot[T]) Take() T {
	s.expect(live, "Take")
	p := (*T)(s.region.Pointer(s.typ))
	v := *p
	var zero T
	*p = zero
	s.release()
	return v
}

// Drop destroys the live value, calling its Drop method if it has one, and
// releases the storage.
func (s *Slot[T]) Drop() {
	s.expect(live, "Drop")
	s.region.Drop(s.typ)
	s.release()
}

// Layout returns the size and alignment of the slot's storage.
func (s *Slot[T]) Layout() (size, align uintptr) {
	l := s.region.Layout()
	return l.Size, l.Align
}

func (s *Slot[T]) release() {
	s.region.Release()
	s.state = dead
}

func (s *Slot[T]) expect(want state, op string) {
	if s.state == want {
		return
	}
	switch s.state {
	case empty:
		panic("slot: " + op + " on uninitialized slot")
	case live:
		panic("slot: " + op + " on initialized slot")
	default:
		panic("slot: " + op + " after Take or Drop")
	}
}
