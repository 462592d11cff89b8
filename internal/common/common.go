package common

import (
	"bytes"
	"reflect"
)

// Layout is the byte size and alignment of a storage region.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a single value of type t.
func LayoutOf(t reflect.Type) Layout {
	return Layout{Size: t.Size(), Align: uintptr(t.Align())}
}

// MaxLayout returns a layout that fits a value of every type in ts.
func MaxLayout(ts ...reflect.Type) Layout {
	l := Layout{Align: 1}
	for _, t := range ts {
		l = l.Max(LayoutOf(t))
	}
	return l
}

// Max returns the component-wise maximum of l and o.
func (l Layout) Max(o Layout) Layout {
	return Layout{Size: max(l.Size, o.Size), Align: max(l.Align, o.Align)}
}

// Fits reports whether a value with layout o can live in a region with layout l.
func (l Layout) Fits(o Layout) bool {
	return o.Size <= l.Size && o.Align <= l.Align
}

// AlignUp rounds n up to a multiple of a. a must be a power of two.
func AlignUp(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// IsPlainKind reports whether k is a scalar kind that never holds a pointer.
func IsPlainKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPlain reports whether values of t contain no pointers, so their bytes can
// be copied, zeroed and reinterpreted without involving the garbage collector.
// Arrays and structs are plain when their elements and fields are.
func IsPlain(t reflect.Type) bool {
	switch k := t.Kind(); k {
	case reflect.Array:
		return t.Len() == 0 || IsPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return IsPlainKind(k)
	}
}

var zeros [4096]byte

// IsZero returns true if bs is all zeros.
func IsZero(bs []byte) bool {
	size := len(bs)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		if !bytes.Equal(bs[i:i+sz], zeros[:sz]) {
			return false
		}
	}
	return true
}

// SetZero writes zeros into bs.
func SetZero(bs []byte) {
	size := len(bs)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		copy(bs[i:i+sz], zeros[:sz])
	}
}

// Dropper is implemented by values that release resources when they are
// destroyed in place.
type Dropper interface {
	Drop()
}

// DropValue calls Drop on the value ptr points at, if its pointer or value
// method set has one. ptr must be a non-nil pointer Value. When the value is
// itself a non-nil pointer or interface, the value it refers to is consulted.
func DropValue(ptr reflect.Value) {
	if d, ok := ptr.Interface().(Dropper); ok {
		d.Drop()
		return
	}
	elem := ptr.Elem()
	switch elem.Kind() {
	case reflect.Interface, reflect.Pointer:
		if elem.IsNil() {
			return
		}
		if d, ok := elem.Interface().(Dropper); ok {
			d.Drop()
		}
	}
}
