// Package framework contains the test registry, the per-test lifecycle and the runner.
//
// The general model is:
//
// 1. Each test is declared once, usually from an init function, with Declare, DeclareFunc or
// DeclareFixture. Declaring builds an Info (name, category, source location and a factory for
// fresh TestCase instances) and appends it to the process-wide Registry.
//
// 2. Execute runs one TestCase through SetUp, Run and TearDown, recovering any assertion
// failure (see package uassert), returned error or panic and recording the outcome and the
// elapsed time in a Result. Nothing raised by a test escapes Execute.
//
// 3. A Runner walks a sequence of Info values in order, skips the ones rejected by its
// Filter, runs the rest one at a time and passes each Result to an Observer as soon as it
// is complete. Its own status is pass only if every executed test passed.
//
// Reporting is left to the observer. Results is a ready-made observer that collects
// outcomes for a final summary.
package framework
