package graham

import "github.com/pkg/errors"

// The scan pipeline is composed of free functions with no error returns; the
// only failure mode is rejecting the input outright. Threading an error
// result through every stage for that one case would add noise, so invalid
// input is raised as a panic, and the public API recovers to convert it to
// an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
