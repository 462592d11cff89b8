// Package region manages the raw storage behind slots and variants.
//
// A Region holds at most one live value at a time. Plain (pointer-free) values
// are written straight into a single raw block sized and aligned for the
// region's layout, so every plain candidate reuses the same bytes. Values that
// contain pointers cannot hide in raw bytes without escaping the garbage
// collector, so they are kept in a typed cell that is reused for as long as the
// stored type does not change.
//
// Region does no bookkeeping of which type is live. Callers pass the type on
// every access and are responsible for passing the right one.
package region

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/variant/internal/common"
)

// zerobase is the address handed out for zero-size values.
var zerobase uint64

type Region struct {
	layout common.Layout
	raw    []byte
	base   unsafe.Pointer

	cell     reflect.Value // *T for the last non-plain type stored
	cellType reflect.Type
}

// New allocates a region with layout l. When raw is false no raw block is
// reserved and only non-plain values may be stored.
func New(l common.Layout, raw bool) *Region {
	if l.Align == 0 {
		l.Align = 1
	}
	r := &Region{layout: l}
	if !raw {
		return r
	}
	if l.Size == 0 {
		r.base = unsafe.Pointer(&zerobase)
		return r
	}
	r.raw = make([]byte, l.Size+l.Align-1)
	addr := uintptr(unsafe.Pointer(&r.raw[0]))
	off := common.AlignUp(addr, l.Align) - addr
	r.raw = r.raw[off : off+l.Size : off+l.Size]
	r.base = unsafe.Pointer(&r.raw[0])
	return r
}

// Layout returns the size and alignment the region was allocated for.
func (r *Region) Layout() common.Layout {
	return r.layout
}

// Reserve returns the address a value of type t occupies in the region,
// allocating a typed cell for non-plain types if needed. Memory behind the
// returned pointer is zeroed for fresh cells and unspecified otherwise.
func (r *Region) Reserve(t reflect.Type) unsafe.Pointer {
	if !r.layout.Fits(common.LayoutOf(t)) {
		panic(fmt.Sprintf("region: %s does not fit layout %+v", t, r.layout))
	}
	if common.IsPlain(t) {
		if r.base == nil {
			panic(fmt.Sprintf("region: no raw block for plain type %s", t))
		}
		return r.base
	}
	if r.cellType != t {
		r.cell = reflect.New(t)
		r.cellType = t
	}
	return r.cell.UnsafePointer()
}

// Pointer returns the address of the live value of type t.
func (r *Region) Pointer(t reflect.Type) unsafe.Pointer {
	if common.IsPlain(t) {
		return r.base
	}
	if r.cellType != t {
		panic(fmt.Sprintf("region: no live value of type %s", t))
	}
	return r.cell.UnsafePointer()
}

// Store initializes the region with v.
func (r *Region) Store(v reflect.Value) {
	t := v.Type()
	reflect.NewAt(t, r.Reserve(t)).Elem().Set(v)
}

// Load returns an addressable Value aliasing the live value of type t.
func (r *Region) Load(t reflect.Type) reflect.Value {
	return reflect.NewAt(t, r.Pointer(t)).Elem()
}

// Take moves the live value of type t out of the region and leaves the
// storage cleared.
func (r *Region) Take(t reflect.Type) reflect.Value {
	out := reflect.New(t).Elem()
	out.Set(r.Load(t))
	r.Clear(t)
	return out
}

// Drop destroys the live value of type t in place and clears the storage.
func (r *Region) Drop(t reflect.Type) {
	common.DropValue(reflect.NewAt(t, r.Pointer(t)))
	r.Clear(t)
}

// Clear zeroes the storage of type t so it no longer keeps anything alive.
func (r *Region) Clear(t reflect.Type) {
	if common.IsPlain(t) {
		common.SetZero(r.Bytes()[:t.Size()])
		return
	}
	if r.cellType == t {
		r.cell.Elem().SetZero()
	}
}

// Bytes returns the raw block. It is nil for regions without one.
func (r *Region) Bytes() []byte {
	return r.raw
}

// Release drops every reference the region holds. The region must not be
// used afterwards.
func (r *Region) Release() {
	r.raw = nil
	r.base = nil
	r.cell = reflect.Value{}
	r.cellType = nil
}
