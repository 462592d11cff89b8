package region

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/variant/internal/common"
)

type pair struct {
	A int64
	B int32
}

func TestRegionPlainShared(t *testing.T) {
	ti := reflect.TypeFor[int16]()
	tp := reflect.TypeFor[pair]()
	r := New(common.MaxLayout(ti, tp), true)
	require.Len(t, r.Bytes(), int(tp.Size()))
	require.Zero(t, uintptr(r.Reserve(tp))%uintptr(tp.Align()))

	r.Store(reflect.ValueOf(int16(-3)))
	require.Equal(t, int16(-3), r.Load(ti).Interface())
	addr := r.Pointer(ti)

	old := r.Take(ti)
	require.Equal(t, int16(-3), old.Interface())
	require.True(t, common.IsZero(r.Bytes()))

	r.Store(reflect.ValueOf(pair{A: 1 << 40, B: 9}))
	require.Equal(t, addr, r.Pointer(tp))
	r.Load(tp).Field(1).SetInt(10)
	require.Equal(t, pair{A: 1 << 40, B: 10}, *(*pair)(r.Pointer(tp)))
}

func TestRegionCell(t *testing.T) {
	ts := reflect.TypeFor[string]()
	tf := reflect.TypeFor[[]float32]()
	r := New(common.MaxLayout(ts, tf), false)
	require.Nil(t, r.Bytes())

	r.Store(reflect.ValueOf("hello"))
	p := r.Pointer(ts)
	require.Equal(t, "hello", *(*string)(p))

	require.Equal(t, "hello", r.Take(ts).Interface())
	require.Equal(t, "", *(*string)(p))

	// same type reuses the cell
	r.Store(reflect.ValueOf("again"))
	require.Equal(t, p, r.Pointer(ts))

	r.Clear(ts)
	r.Store(reflect.ValueOf([]float32{253.89}))
	require.Equal(t, []float32{253.89}, r.Load(tf).Interface())
	require.Panics(t, func() { r.Pointer(ts) })
}

func TestRegionZeroSize(t *testing.T) {
	te := reflect.TypeFor[struct{}]()
	r := New(common.LayoutOf(te), true)
	r.Store(reflect.ValueOf(struct{}{}))
	require.NotNil(t, r.Pointer(te))
	require.Equal(t, struct{}{}, r.Take(te).Interface())
}

func TestRegionReservePanics(t *testing.T) {
	r := New(common.LayoutOf(reflect.TypeFor[int8]()), true)
	require.Panics(t, func() { r.Reserve(reflect.TypeFor[int64]()) })

	r = New(common.LayoutOf(reflect.TypeFor[string]()), false)
	require.Panics(t, func() { r.Reserve(reflect.TypeFor[int]()) })
}

type closer struct {
	closed *bool
}

func (c *closer) Drop() { *c.closed = true }

func TestRegionDrop(t *testing.T) {
	tc := reflect.TypeFor[closer]()
	r := New(common.LayoutOf(tc), false)
	closed := false
	r.Store(reflect.ValueOf(closer{closed: &closed}))
	r.Drop(tc)
	require.True(t, closed)
	require.Nil(t, (*closer)(r.Pointer(tc)).closed)

	r.Release()
	require.Nil(t, r.Bytes())
}

func TestRegionUnsafeWrite(t *testing.T) {
	tu := reflect.TypeFor[uint32]()
	r := New(common.LayoutOf(tu), true)
	*(*uint32)(r.Reserve(tu)) = 0xdeadbeef
	require.Equal(t, uint32(0xdeadbeef), *(*uint32)(unsafe.Pointer(&r.Bytes()[0])))
}
