// Command variantgen writes the typed UnionN wrappers of package variant.
//
// Go generics have no variadic type parameters, so a union with compile-time
// checked visitors needs one declaration per arity. Running
//
//	variantgen -min 2 -max 5 -pkg variant -out union_gen.go
//
// emits, for every N in [min, max],
//
//	type UnionN[A, B, ... any] struct{ ... }
//
//	func NewN[A, B, ..., V any](value V) (*UnionN[A, B, ...], error)
//
//	func (u *UnionN[...]) Variant() *Variant
//	func (u *UnionN[...]) Tag() int
//	func (u *UnionN[...]) Close()
//	func (u *UnionN[...]) Visit(a func(A), b func(B), ...)
//	func (u *UnionN[...]) VisitMut(a func(*A), b func(*B), ...)
//	func (u *UnionN[...]) VisitErr(a func(*A) error, ...) error
//	func (u *UnionN[...]) VisitContext(ctx context.Context, a func(context.Context, *A) error, ...) error
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	minArity = flag.Int("min", 2, "smallest union arity to generate")
	maxArity = flag.Int("max", 5, "largest union arity to generate")
	pkgName  = flag.String("pkg", "variant", "package name for the generated file")
	outFile  = flag.String("out", "union_gen.go", "path of the generated file")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of variantgen:\n")
	fmt.Fprintf(os.Stderr, "\tvariantgen -min 2 -max 5 -pkg variant -out union_gen.go\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("variantgen: ")

	flag.Usage = Usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := generate(*outFile, *pkgName, *minArity, *maxArity)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type param struct {
	Index int
	Type  string
	Arg   string
}

type arity struct {
	N      int
	Params []param
}

// Types returns the comma separated type parameter names.
func (a arity) Types() string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = p.Type
	}
	return strings.Join(names, ", ")
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := 0; i < n; i++ {
		t := letters[i : i+1]
		a.Params = append(a.Params, param{Index: i, Type: t, Arg: strings.ToLower(t)})
	}
	return a
}

// generate renders the wrappers for arities lo through hi and formats the
// result.
func generate(filename, pkg string, lo, hi int) ([]byte, error) {
	if lo < 2 || hi < lo {
		return nil, fmt.Errorf("invalid arity range [%d, %d]", lo, hi)
	}
	// V is reserved for the constructor's value type.
	if hi > strings.IndexByte(letters, 'V') {
		return nil, fmt.Errorf("arity %d exceeds the %d available type parameter names", hi, strings.IndexByte(letters, 'V'))
	}

	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, pkg); err != nil {
		return nil, err
	}
	for n := lo; n <= hi; n++ {
		if err := unionTmpl.Execute(&buf, newArity(n)); err != nil {
			return nil, fmt.Errorf("arity %d: %w", n, err)
		}
	}

	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	src, err := imports.Process(filename, buf.Bytes(), opts)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

var headerTmpl = template.Must(template.New("header").Parse(`// Code generated by variantgen; DO NOT EDIT.

package {{.}}

import "context"
`))

var unionTmpl = template.Must(template.New("union").Parse(`
// Union{{.N}} wraps a Variant over the candidates {{.Types}} and checks visitor
// handlers at compile time.
type Union{{.N}}[{{.Types}} any] struct {
	v *Variant
}

// New{{.N}} returns a Union{{.N}} holding value. V must be one of {{.Types}}.
func New{{.N}}[{{.Types}}, V any](value V) (*Union{{.N}}[{{.Types}}], error) {
	v, err := New(Of({{range $i, $p := .Params}}{{if $i}}, {{end}}TypeOf[{{$p.Type}}](){{end}}), value)
	if err != nil {
		return nil, err
	}
	return &Union{{.N}}[{{.Types}}]{v: v}, nil
}

// Variant returns the underlying Variant.
func (u *Union{{.N}}[{{.Types}}]) Variant() *Variant {
	return u.v
}

// Tag returns the live position.
func (u *Union{{.N}}[{{.Types}}]) Tag() int {
	return u.v.Tag()
}

// Close destroys the live value.
func (u *Union{{.N}}[{{.Types}}]) Close() {
	u.v.Close()
}

// Visit calls the handler for the live position with a copy of the value.
func (u *Union{{.N}}[{{.Types}}]) Visit({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Arg}} func({{$p.Type}}){{end}}) {
	switch u.v.Tag() {
{{- range .Params}}
	case {{.Index}}:
		{{.Arg}}(*live[{{.Type}}](u.v))
{{- end}}
	}
}

// VisitMut calls the handler for the live position with a pointer to the
// value.
func (u *Union{{.N}}[{{.Types}}]) VisitMut({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Arg}} func(*{{$p.Type}}){{end}}) {
	switch u.v.Tag() {
{{- range .Params}}
	case {{.Index}}:
		{{.Arg}}(live[{{.Type}}](u.v))
{{- end}}
	}
}

// VisitErr is VisitMut for handlers that can fail. The handler's error is
// returned.
func (u *Union{{.N}}[{{.Types}}]) VisitErr({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Arg}} func(*{{$p.Type}}) error{{end}}) error {
	switch u.v.Tag() {
{{- range .Params}}
	case {{.Index}}:
		return {{.Arg}}(live[{{.Type}}](u.v))
{{- end}}
	}
	return nil
}

// VisitContext is VisitErr for handlers that block. It returns ctx.Err()
// without calling a handler when ctx is already done.
func (u *Union{{.N}}[{{.Types}}]) VisitContext(ctx context.Context, {{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Arg}} func(context.Context, *{{$p.Type}}) error{{end}}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch u.v.Tag() {
{{- range .Params}}
	case {{.Index}}:
		return {{.Arg}}(ctx, live[{{.Type}}](u.v))
{{- end}}
	}
	return nil
}
`))
