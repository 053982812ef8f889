// Package buffer provides a planar multi-channel sample block and the
// processing context handed to processors once per audio block.
//
// A Block stores every channel in one contiguous backing slice, so resizing
// within the existing capacity never allocates. Processors only read and
// write through Channel views and never retain them.
package buffer
