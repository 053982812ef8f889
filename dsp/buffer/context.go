package buffer

import "github.com/cwbudde/algo-waveshaper/dsp/core"

// Context is the per-block view a host hands to a processor.
// Output may alias Input for in-place processing.
type Context[T core.Sample] struct {
	Input    *Block[T]
	Output   *Block[T]
	Bypassed bool
}

// NewReplacing returns a context that processes block in place.
func NewReplacing[T core.Sample](block *Block[T]) *Context[T] {
	return &Context[T]{Input: block, Output: block}
}

// NewNonReplacing returns a context that reads in and writes out.
func NewNonReplacing[T core.Sample](in, out *Block[T]) *Context[T] {
	return &Context[T]{Input: in, Output: out}
}

// InPlace reports whether output and input share the same block.
func (c *Context[T]) InPlace() bool {
	return c.Input == c.Output
}
