package contract

import "fmt"

const (
	assertMsg  = "An assertion has failed"
	failMsg    = "A failure has occurred"
	requireMsg = "A precondition has failed for %v"
)

// Assert checks a condition and fails fast if it is false.
func Assert(cond bool) {
	if !cond {
		failfast(assertMsg)
	}
}

// Assertf checks a condition and fails fast with a formatted message if it is false.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", assertMsg, fmt.Sprintf(msg, args...)))
	}
}

// Require checks a precondition on a function parameter.
func Require(cond bool, param string) {
	if !cond {
		failfast(fmt.Sprintf(requireMsg, param))
	}
}

// Failf unconditionally abandons the process.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("%v: %v", failMsg, fmt.Sprintf(msg, args...)))
}
