package errors

import (
	"fmt"
	"reflect"
)

// Maximum depth RootError will descend before giving up.
const maxUnwrapDepth = 20

// unwrapError returns the error wrapped by ierr, or nil.
func unwrapError(ierr error) (nerr error) {
	switch e := ierr.(type) {
	case StackError:
		return e.GetInner()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}

	// Some system errors follow the convention of an exported Err field
	// without implementing Unwrap.  Anything unexpected here yields nil.
	defer func() {
		if x := recover(); x != nil {
			nerr = nil
		}
	}()
	errV := reflect.ValueOf(ierr).Elem()
	errV = errV.FieldByName("Err")
	return errV.Interface().(error)
}

// RootError peels away wrapping layers until a primitive error is revealed.
func RootError(ierr error) (nerr error) {
	nerr = ierr
	for i := 0; i < maxUnwrapDepth; i++ {
		terr := unwrapError(nerr)
		if terr == nil {
			return nerr
		}
		nerr = terr
	}
	return fmt.Errorf("too many iterations: %T", nerr)
}

// IsError reports whether err, or its root error, matches errConst.  Root
// errors are compared by message since values and pointers to values do not
// compare equal.
func IsError(err, errConst error) bool {
	if err == errConst {
		return true
	}
	rootErrStr := ""
	if rootErr := RootError(err); rootErr != nil {
		rootErrStr = rootErr.Error()
	}
	errConstStr := ""
	if errConst != nil {
		errConstStr = errConst.Error()
	}
	return rootErrStr == errConstStr
}
