package uassert

import (
	"fmt"
	"math"
	"reflect"
	"runtime"

	"github.com/utest-go/utest/logging"

	"github.com/stretchr/testify/assert"
)

// FailHandler decides what happens when a check does not hold.
type FailHandler interface {
	Handle(f *Failure)
}

// FailHandlerFunc adapts a function to FailHandler.
type FailHandlerFunc func(f *Failure)

func (fn FailHandlerFunc) Handle(f *Failure) { fn(f) }

// PanicHandler is the default FailHandler. It panics with the *Failure, so a failed check
// never returns to its caller.
type PanicHandler struct{}

func (PanicHandler) Handle(f *Failure) {
	panic(f)
}

// LogHandler reports failures to a logger and lets execution continue.
type LogHandler struct {
	Logger logging.Logger
}

func (h LogHandler) Handle(f *Failure) {
	logger := h.Logger
	if logger == nil {
		logger = logging.NullLogger()
	}
	logger.Printf("assertion failed at %s:%d: %s", f.File, f.Line, f.Message)
}

// Asserter evaluates checks and hands any failure to its FailHandler.
type Asserter struct {
	handler FailHandler
}

// New creates an Asserter. A nil handler means PanicHandler.
func New(handler FailHandler) *Asserter {
	if handler == nil {
		handler = PanicHandler{}
	}
	return &Asserter{handler: handler}
}

var std = New(PanicHandler{})

// Default returns the Asserter used by the package-level functions.
func Default() *Asserter { return std }

// SetDefaultHandler replaces the handler used by the package-level functions and returns
// the previous one. It must not be called while tests are running.
func SetDefaultHandler(handler FailHandler) FailHandler {
	if handler == nil {
		handler = PanicHandler{}
	}
	prev := std.handler
	std.handler = handler
	return prev
}

// That fails if cond is false.
func (a *Asserter) That(cond bool) { a.that(cond, 1) }

// Equal fails if expected and actual are not equal. Numbers of different types are compared
// by value, so Equal(5, int64(5)) passes and Equal(5, 5.5) fails.
func (a *Asserter) Equal(expected, actual interface{}) { a.equal(expected, actual, 1) }

// NotEqual fails if notExpected and actual are equal.
func (a *Asserter) NotEqual(notExpected, actual interface{}) { a.notEqual(notExpected, actual, 1) }

func (a *Asserter) True(v bool) { a.isTrue(v, 1) }

func (a *Asserter) False(v bool) { a.isFalse(v, 1) }

// Nil fails unless v is nil or a typed nil (pointer, map, slice, channel, func or interface).
func (a *Asserter) Nil(v interface{}) { a.isNil(v, 1) }

func (a *Asserter) NotNil(v interface{}) { a.notNil(v, 1) }

// Fail fails unconditionally with the given message.
func (a *Asserter) Fail(message string) { a.fail(message, 1) }

func (a *Asserter) Failf(format string, args ...interface{}) {
	a.fail(fmt.Sprintf(format, args...), 1)
}

func That(cond bool) { std.that(cond, 1) }

func Equal(expected, actual interface{}) { std.equal(expected, actual, 1) }

func NotEqual(notExpected, actual interface{}) { std.notEqual(notExpected, actual, 1) }

func True(v bool) { std.isTrue(v, 1) }

func False(v bool) { std.isFalse(v, 1) }

func Nil(v interface{}) { std.isNil(v, 1) }

func NotNil(v interface{}) { std.notNil(v, 1) }

func Fail(message string) { std.fail(message, 1) }

func Failf(format string, args ...interface{}) {
	std.fail(fmt.Sprintf(format, args...), 1)
}

// In the helpers below, skip counts the frames between the helper and the user's call site.

func (a *Asserter) that(cond bool, skip int) {
	if cond {
		return
	}
	a.fail("Assert expression failed", skip+1)
}

func (a *Asserter) equal(expected, actual interface{}, skip int) {
	if valuesEqual(expected, actual) {
		return
	}
	a.fail(fmt.Sprintf("Expected [%s] saw [%s]", render(expected), render(actual)), skip+1)
}

func (a *Asserter) notEqual(notExpected, actual interface{}, skip int) {
	if !valuesEqual(notExpected, actual) {
		return
	}
	a.fail(fmt.Sprintf("Expected not [%s] saw [%s]", render(notExpected), render(actual)), skip+1)
}

func (a *Asserter) isTrue(v bool, skip int) {
	if v {
		return
	}
	a.fail("Expected [true] saw [false]", skip+1)
}

func (a *Asserter) isFalse(v bool, skip int) {
	if !v {
		return
	}
	a.fail("Expected [false] saw [true]", skip+1)
}

func (a *Asserter) isNil(v interface{}, skip int) {
	if isNil(v) {
		return
	}
	a.fail("Expected [null]", skip+1)
}

func (a *Asserter) notNil(v interface{}, skip int) {
	if !isNil(v) {
		return
	}
	a.fail("Expected not [null]", skip+1)
}

func (a *Asserter) fail(message string, skip int) {
	f := &Failure{Message: message}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		f.File = file
		f.Line = line
	}
	a.handler.Handle(f)
}

// valuesEqual compares numbers by value across types, and anything else as testify's
// ObjectsAreEqualValues does.
func valuesEqual(expected, actual interface{}) bool {
	if equal, ok := numbersEqual(expected, actual); ok {
		return equal
	}
	return assert.ObjectsAreEqualValues(expected, actual)
}

// numbersEqual reports whether x and y hold the same numeric value, without the truncation or
// wraparound of a type conversion. ok is false unless both are integers or floats.
func numbersEqual(x, y interface{}) (equal, ok bool) {
	a, b := reflect.ValueOf(x), reflect.ValueOf(y)
	if !isNumber(a) || !isNumber(b) {
		return false, false
	}
	switch {
	case isFloat(a) && isFloat(b):
		return a.Float() == b.Float(), true
	case isFloat(a):
		return floatEqualsInteger(a.Float(), b), true
	case isFloat(b):
		return floatEqualsInteger(b.Float(), a), true
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int(), true
	case isSigned(a):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint(), true
	case isSigned(b):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint(), true
	default:
		return a.Uint() == b.Uint(), true
	}
}

func floatEqualsInteger(f float64, v reflect.Value) bool {
	if f != math.Trunc(f) {
		return false
	}
	if isSigned(v) {
		return f >= -(1<<63) && f < 1<<63 && int64(f) == v.Int()
	}
	return f >= 0 && f < 1<<64 && uint64(f) == v.Uint()
}

func isNumber(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v) || isFloat(v)
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// render gives the natural string form of a value, or a type tag for values whose %v form
// is only an address.
func render(v interface{}) string {
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return fmt.Sprintf("<%T>", v)
		}
	}
	return fmt.Sprintf("%v", v)
}
