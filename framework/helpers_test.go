package framework

import (
	"runtime"
)

// scriptedCase is a TestCase whose hooks are supplied by the test and which records the
// order in which they were called.
type scriptedCase struct {
	Fixture
	events   *[]string
	setUp    func() error
	run      func() error
	tearDown func() error
}

func (c *scriptedCase) SetUp() error {
	*c.events = append(*c.events, "setup")
	if c.setUp != nil {
		return c.setUp()
	}
	return nil
}

func (c *scriptedCase) Run() error {
	*c.events = append(*c.events, "run")
	if c.run != nil {
		return c.run()
	}
	return nil
}

func (c *scriptedCase) TearDown() error {
	*c.events = append(*c.events, "teardown")
	if c.tearDown != nil {
		return c.tearDown()
	}
	return nil
}

func passingInfo(name, category string) *Info {
	return NewInfo(name, category, func() TestCase {
		return &funcCase{body: func() error { return nil }}
	})
}

func failingInfo(name, category string) *Info {
	return NewInfo(name, category, func() TestCase {
		return &funcCase{body: func() error { panic("deliberate failure") }}
	})
}

func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func thisFile() string {
	_, file, _, _ := runtime.Caller(1)
	return file
}
