// Extensions to the go-check unittest framework.
package gocheck2

import (
	"time"

	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// Positive checker.

type positiveChecker struct {
	*CheckerInfo
}

func (checker *positiveChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	switch v := params[0].(type) {
	case time.Duration:
		return v > 0, ""
	case float64:
		return v > 0, ""
	case int:
		return v > 0, ""
	case int32:
		return v > 0, ""
	case int64:
		return v > 0, ""
	}
	return false, "Argument to " + checker.Name +
		" must be a time.Duration, float64 or signed integer"
}

// The Positive checker verifies that the obtained duration or number is
// strictly greater than zero.
//
// For example:
//
//     c.Assert(result.Mean, Positive)
//
var Positive Checker = &positiveChecker{
	&CheckerInfo{Name: "Positive", Params: []string{"obtained"}},
}
