package variant

import (
	"reflect"
	"strconv"

	"github.com/brickingsoft/errors"
)

var (
	ErrInvalidCandidateCount = errors.Define("variant needs between 2 and 256 candidate types")
	ErrArgumentTypeNotFound  = errors.Define("argument type is not among the variant candidate types")
	ErrReturnTypeNotFound    = errors.Define("return type supplied is not the type live in the variant")
	ErrWrongTypeSupplied     = errors.Define("argument type is not the type live in this variant instance")
	ErrHandlerMismatch       = errors.Define("handlers do not match the variant candidate types")
)

func IsInvalidCandidateCount(err error) bool {
	return errors.Is(err, ErrInvalidCandidateCount)
}

func IsArgumentTypeNotFound(err error) bool {
	return errors.Is(err, ErrArgumentTypeNotFound)
}

func IsReturnTypeNotFound(err error) bool {
	return errors.Is(err, ErrReturnTypeNotFound)
}

func IsWrongTypeSupplied(err error) bool {
	return errors.Is(err, ErrWrongTypeSupplied)
}

func IsHandlerMismatch(err error) bool {
	return errors.Is(err, ErrHandlerMismatch)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "variant"
)

const (
	errMetaOpKey                = "op"
	errMetaOpNew                = "new"
	errMetaOpGet                = "get"
	errMetaOpAt                 = "at"
	errMetaOpSet                = "set"
	errMetaOpChange             = "change"
	errMetaOpChangeAndReturning = "change_and_returning"
	errMetaOpInteract           = "interact"
	errMetaOpVisit              = "visit"
)

const (
	errMetaTypeKey       = "type"
	errMetaCandidatesKey = "candidates"
)

func fail(op string, t reflect.Type, kind error) error {
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return errors.New(
		op+" failed",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaTypeKey, name),
		errors.WithWrap(kind),
	)
}

func failCount(n int) error {
	return errors.New(
		errMetaOpNew+" failed",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpNew),
		errors.WithMeta(errMetaCandidatesKey, strconv.Itoa(n)),
		errors.WithWrap(ErrInvalidCandidateCount),
	)
}
