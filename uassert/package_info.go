// Package uassert contains the assertion functions used inside test bodies.
//
// A failing check does not return: the default handler panics with a *Failure carrying the
// message and the caller's source location, and the framework's test execution wrapper
// recovers it and turns it into a failed result. An Asserter built with a different
// FailHandler, such as LogHandler, can report failures without stopping the caller.
package uassert
