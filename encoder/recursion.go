package encoder

import (
	"fmt"

	"github.com/serealgo/sereal/errs"
)

// enterRecursion increments the recursion depth, failing if either the
// user-configured ceiling (0 = disabled) or the hard safety ceiling
// would be exceeded. Every call must be paired with leaveRecursion on
// all exit paths, including error.
func (e *Encoder) enterRecursion() error {
	if e.depth >= hardRecursionCeiling {
		return fmt.Errorf("%w: exceeded hard safety ceiling of %d", errs.ErrRecursionLimit, hardRecursionCeiling)
	}
	if e.flags.maxRecursionDepth > 0 && e.depth >= e.flags.maxRecursionDepth {
		return fmt.Errorf("%w: exceeded configured depth %d", errs.ErrRecursionLimit, e.flags.maxRecursionDepth)
	}
	e.depth++
	return nil
}

// leaveRecursion decrements the recursion depth. It must run on every
// exit path of a call paired with a successful enterRecursion.
func (e *Encoder) leaveRecursion() {
	e.depth--
}
