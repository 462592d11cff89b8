// Package variant provides a tagged union over a closed, ordered list of
// candidate types.
//
// A Variant always holds exactly one value. Its type is one of the candidates,
// and a tag records which position is live. All candidates share a single
// storage region sized and aligned for the largest of them. Every accessor
// checks the tag before it touches storage, and replacement validates all of
// its inputs before it mutates anything, so a failed call leaves the variant
// exactly as it was.
//
//	v, err := variant.New(variant.Of(variant.TypeOf[int](), variant.TypeOf[string]()), 123)
//	n, err := variant.Get[int](v)        // 123
//	_, err = variant.Get[string](v)      // ErrWrongTypeSupplied
//	old, err := variant.Change(v, "abc") // old == 123
//
// Duplicate candidate types are allowed. Construction and replacement select
// the first position holding the value's type.
//
// A Variant has a single owner and is not safe for concurrent use.
package variant

//go:generate go run ./cmd/variantgen -min 2 -max 5 -pkg variant -out union_gen.go

import (
	"reflect"
	"slices"

	"github.com/rawbytedev/variant/internal/region"
)

// Variant holds one value whose type is one of its candidates.
type Variant struct {
	types  Candidates
	plan   *plan
	region *region.Region
	tag    uint8
}

// New returns a variant over c holding value. V must appear in c; its first
// position becomes the tag. Nothing is allocated when New fails.
func New[V any](c Candidates, value V) (*Variant, error) {
	if err := checkCount(c); err != nil {
		return nil, err
	}
	t := reflect.TypeFor[V]()
	idx := c.Index(t)
	if idx < 0 {
		return nil, fail(errMetaOpNew, t, ErrArgumentTypeNotFound)
	}

	pl := plans.get(c)
	v := &Variant{
		types:  slices.Clone(c),
		plan:   pl,
		region: region.New(pl.layout, pl.raw),
		tag:    uint8(idx),
	}
	*(*V)(v.region.Reserve(t)) = value
	return v, nil
}

// Tag returns the live position.
func (v *Variant) Tag() int {
	v.mustLive()
	return int(v.tag)
}

// Type returns the type of the live value.
func (v *Variant) Type() reflect.Type {
	v.mustLive()
	return v.types[v.tag]
}

// Candidates returns a copy of the candidate list.
func (v *Variant) Candidates() Candidates {
	v.mustLive()
	return slices.Clone(v.types)
}

// Layout returns the size and alignment of the shared storage.
func (v *Variant) Layout() Layout {
	v.mustLive()
	return v.plan.layout
}

// Close destroys the live value, calling its Drop method if it has one, and
// releases the storage. The variant must not be used afterwards.
func (v *Variant) Close() {
	v.mustLive()
	v.region.Drop(v.types[v.tag])
	v.region.Release()
	v.region = nil
}

func (v *Variant) mustLive() {
	if v.region == nil {
		panic("variant: use of closed Variant")
	}
}

// check reports why t cannot address the live value, if it cannot.
func (v *Variant) check(op string, t reflect.Type) error {
	v.mustLive()
	if v.types[v.tag] == t {
		return nil
	}
	if !v.types.Contains(t) {
		return fail(op, t, ErrArgumentTypeNotFound)
	}
	return fail(op, t, ErrWrongTypeSupplied)
}

// live returns the live value as a *T. The caller has checked the tag.
func live[T any](v *Variant) *T {
	return (*T)(v.region.Pointer(v.types[v.tag]))
}
