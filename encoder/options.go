package encoder

import (
	"fmt"

	"github.com/serealgo/sereal/internal/options"
)

// WithSharedHashkeys sets the SHARED_HASHKEYS flag. It is on by default
// and reserved for future dictionary support: it has no observable
// effect on this core's output.
func WithSharedHashkeys(enabled bool) options.Option[*Encoder] {
	return options.NoError(func(e *Encoder) {
		e.flags.sharedHashkeys = enabled
	})
}

// WithMaxRecursionDepth sets the encoder-imposed recursion ceiling.
// depth must be non-negative; 0 disables the encoder-imposed limit
// (the hard, non-configurable safety ceiling still applies).
func WithMaxRecursionDepth(depth int) options.Option[*Encoder] {
	return options.New(func(e *Encoder) error {
		if depth < 0 {
			return fmt.Errorf("encoder: max recursion depth must be non-negative, got %d", depth)
		}
		e.flags.maxRecursionDepth = depth
		return nil
	})
}

// WithSnappyCompression requests snappy-compressed output. Dump
// currently always fails when this is set; see errs.ErrNotImplemented.
func WithSnappyCompression() options.Option[*Encoder] {
	return options.NoError(func(e *Encoder) {
		e.flags.snappy = true
	})
}

// WithSnappyIncrementalCompression requests the incremental snappy
// variant. Dump currently always fails when this is set.
func WithSnappyIncrementalCompression() options.Option[*Encoder] {
	return options.NoError(func(e *Encoder) {
		e.flags.snappyIncremental = true
	})
}
