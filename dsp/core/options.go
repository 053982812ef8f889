package core

// ProcessSpec describes the audio configuration a processor is prepared for.
type ProcessSpec struct {
	SampleRate float64
	// NumChannels sizes per-channel state.
	NumChannels int
	// MaxBlockSize is the largest frame count a single block may carry.
	MaxBlockSize int
}

// ProcessOption mutates a ProcessSpec.
type ProcessOption func(*ProcessSpec)

// DefaultProcessSpec returns sensible defaults for offline and streaming use.
func DefaultProcessSpec() ProcessSpec {
	return ProcessSpec{
		SampleRate:   48000,
		NumChannels:  2,
		MaxBlockSize: 1024,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessOption {
	return func(spec *ProcessSpec) {
		if sampleRate > 0 {
			spec.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the channel count.
func WithChannels(numChannels int) ProcessOption {
	return func(spec *ProcessSpec) {
		if numChannels > 0 {
			spec.NumChannels = numChannels
		}
	}
}

// WithMaxBlockSize sets the largest block size.
func WithMaxBlockSize(blockSize int) ProcessOption {
	return func(spec *ProcessSpec) {
		if blockSize > 0 {
			spec.MaxBlockSize = blockSize
		}
	}
}

// NewProcessSpec applies zero or more options to the default spec.
func NewProcessSpec(opts ...ProcessOption) ProcessSpec {
	spec := DefaultProcessSpec()
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}

// Valid reports whether spec satisfies the preconditions of Prepare.
func (s ProcessSpec) Valid() bool {
	return s.SampleRate > 0 && s.NumChannels > 0
}
