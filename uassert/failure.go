package uassert

import "fmt"

// Failure describes a check that did not hold. It is the value that PanicHandler panics
// with, and it implements error so that test code can also return it.
type Failure struct {
	Message string
	File    string
	Line    int
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	return f.Message
}

// Location returns "file:line", or an empty string if the location is unknown.
func (f *Failure) Location() string {
	if f == nil || f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}
