package variant

import (
	"reflect"
)

// Change replaces the live value with x and returns the old one. The tag
// moves to the first position holding T.
//
// The old value is moved out, not dropped. On ErrArgumentTypeNotFound the
// variant is untouched.
func Change[T any](v *Variant, x T) (any, error) {
	v.mustLive()
	t := reflect.TypeFor[T]()
	idx := v.types.Index(t)
	if idx < 0 {
		return nil, fail(errMetaOpChange, t, ErrArgumentTypeNotFound)
	}

	old := v.region.Take(v.types[v.tag])
	install(v, idx, t, x)
	return old.Interface(), nil
}

// ChangeAndReturning is Change with the old value returned as an R.
//
// R must be the live type, otherwise the call fails with
// ErrReturnTypeNotFound. T must be a candidate, otherwise it fails with
// ErrArgumentTypeNotFound. Both are checked before anything is modified.
func ChangeAndReturning[R, T any](v *Variant, x T) (R, error) {
	v.mustLive()
	var old R
	rt := reflect.TypeFor[R]()
	if v.types[v.tag] != rt {
		return old, fail(errMetaOpChangeAndReturning, rt, ErrReturnTypeNotFound)
	}
	t := reflect.TypeFor[T]()
	idx := v.types.Index(t)
	if idx < 0 {
		return old, fail(errMetaOpChangeAndReturning, t, ErrArgumentTypeNotFound)
	}

	old = *live[R](v)
	v.region.Clear(rt)
	install(v, idx, t, x)
	return old, nil
}

// install writes x into the cleared storage and points the tag at idx.
func install[T any](v *Variant, idx int, t reflect.Type, x T) {
	*(*T)(v.region.Reserve(t)) = x
	v.tag = uint8(idx)
}
