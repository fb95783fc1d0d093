package framework

// Status is the outcome of a test execution. The zero value is StatusNotRun.
type Status int

const (
	StatusNotRun Status = iota
	StatusPass
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusNotRun:
		return "not run"
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}
