package buffer

import "github.com/cwbudde/algo-waveshaper/dsp/core"

// Block is a planar channels x frames sample buffer.
type Block[T core.Sample] struct {
	data     []T
	channels [][]T
	frames   int
}

// New returns a zero-filled Block with the given dimensions.
// Negative dimensions are treated as zero.
func New[T core.Sample](numChannels, numFrames int) *Block[T] {
	b := &Block[T]{}
	b.Resize(numChannels, numFrames)
	return b
}

// FromChannels wraps existing per-channel slices without copying.
// All channels are truncated to the shortest one.
func FromChannels[T core.Sample](channels ...[]T) *Block[T] {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
		for _, ch := range channels[1:] {
			frames = min(frames, len(ch))
		}
	}

	views := make([][]T, len(channels))
	for c, ch := range channels {
		views[c] = ch[:frames:frames]
	}

	return &Block[T]{channels: views, frames: frames}
}

// NumChannels returns the channel count.
func (b *Block[T]) NumChannels() int {
	return len(b.channels)
}

// NumFrames returns the frame count per channel.
func (b *Block[T]) NumFrames() int {
	return b.frames
}

// Channel returns the sample slice of channel c.
// Mutations are visible through the Block.
func (b *Block[T]) Channel(c int) []T {
	return b.channels[c]
}

// Resize sets the dimensions, reusing existing capacity when possible.
// Every sample is zero after Resize.
func (b *Block[T]) Resize(numChannels, numFrames int) {
	numChannels = max(numChannels, 0)
	numFrames = max(numFrames, 0)

	b.data = core.EnsureLen(b.data, numChannels*numFrames)
	core.Fill(b.data, 0)

	if cap(b.channels) >= numChannels {
		b.channels = b.channels[:numChannels]
	} else {
		b.channels = make([][]T, numChannels)
	}

	for c := range b.channels {
		off := c * numFrames
		b.channels[c] = b.data[off : off+numFrames : off+numFrames]
	}

	b.frames = numFrames
}

// Zero sets all samples to 0.
func (b *Block[T]) Zero() {
	for _, ch := range b.channels {
		core.Fill(ch, 0)
	}
}

// CopyFrom copies src sample-for-sample into b over the overlapping
// channels and frames and returns the number of frames copied per channel.
// Copying a block onto itself is a no-op.
func (b *Block[T]) CopyFrom(src *Block[T]) int {
	if src == b {
		return b.frames
	}

	n := min(b.frames, src.frames)
	chs := min(len(b.channels), len(src.channels))

	for c := range chs {
		copy(b.channels[c][:n], src.channels[c][:n])
	}

	return n
}

// Clone returns a deep copy of the block.
func (b *Block[T]) Clone() *Block[T] {
	out := New[T](len(b.channels), b.frames)
	out.CopyFrom(b)
	return out
}

// Interleave writes the block into dst as frame-major interleaved samples
// and returns dst resliced to channels*frames, growing it when too short.
func (b *Block[T]) Interleave(dst []T) []T {
	chs := len(b.channels)
	dst = core.EnsureLen(dst, chs*b.frames)

	for c, ch := range b.channels {
		for i, v := range ch {
			dst[i*chs+c] = v
		}
	}

	return dst
}

// Deinterleave resizes b to numChannels and fills it from frame-major
// interleaved samples. A trailing partial frame is dropped.
func (b *Block[T]) Deinterleave(src []T, numChannels int) {
	if numChannels <= 0 {
		b.Resize(0, 0)
		return
	}

	frames := len(src) / numChannels
	b.Resize(numChannels, frames)

	for c, ch := range b.channels {
		for i := range ch {
			ch[i] = src[i*numChannels+c]
		}
	}
}
