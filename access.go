package variant

import (
	"reflect"

	"github.com/rawbytedev/variant/internal/common"
)

// Get returns a copy of the live value as a T.
//
// It fails with ErrArgumentTypeNotFound when T is not a candidate and with
// ErrWrongTypeSupplied when T is a candidate but not the live one.
func Get[T any](v *Variant) (T, error) {
	if err := v.check(errMetaOpGet, reflect.TypeFor[T]()); err != nil {
		var zero T
		return zero, err
	}
	return *live[T](v), nil
}

// GetIf is Get without the error: ok is false whenever Get would fail.
func GetIf[T any](v *Variant) (value T, ok bool) {
	v.mustLive()
	if v.types[v.tag] != reflect.TypeFor[T]() {
		return value, false
	}
	return *live[T](v), true
}

// At returns a pointer to the live value for reading and writing in place.
// The pointer is valid until the next Change, ChangeAndReturning or Close.
func At[T any](v *Variant) (*T, error) {
	if err := v.check(errMetaOpAt, reflect.TypeFor[T]()); err != nil {
		return nil, err
	}
	return live[T](v), nil
}

// Set overwrites the live value with x without changing the tag. The old
// value is dropped. T must be the live type.
func Set[T any](v *Variant, x T) error {
	if err := v.check(errMetaOpSet, reflect.TypeFor[T]()); err != nil {
		return err
	}
	p := live[T](v)
	common.DropValue(reflect.ValueOf(p))
	*p = x
	return nil
}
