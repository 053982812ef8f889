package waveshaper

import (
	"github.com/cwbudde/algo-waveshaper/dsp/buffer"
	"github.com/cwbudde/algo-waveshaper/dsp/core"
	"github.com/cwbudde/algo-waveshaper/internal/contract"
)

// WaveShaper is a drive -> curve -> dry/wet processor generic over sample
// precision. Create it with New, then call Prepare before processing.
type WaveShaper[T core.Sample] struct {
	sampleRate float64

	driveDB T
	drive   T
	mix     T

	shaper     ShaperType
	approx     ApproxMode
	snapToZero bool

	// One value per channel. The curves are memoryless; the slot exists for
	// the denormal guard and for stateful curve variants.
	state []T
}

// New creates a WaveShaper from DefaultConfig with opts applied.
// It has no channels until Prepare is called.
func New[T core.Sample](opts ...Option) *WaveShaper[T] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	w := &WaveShaper[T]{
		sampleRate: defaultSampleRate,
		shaper:     cfg.Shaper,
		approx:     cfg.Approx,
		snapToZero: cfg.SnapToZero,
	}

	w.SetDrive(T(cfg.DriveDB))
	w.SetMix(T(cfg.Mix))

	return w
}

// SetDrive sets the pre-curve gain in decibels. Any value is accepted;
// large drives saturate or fold according to the active curve.
func (w *WaveShaper[T]) SetDrive(driveDB T) {
	w.driveDB = driveDB
	w.drive = core.DBToGain(driveDB)
}

// SetMix sets the wet fraction verbatim. Values outside [0, 1] extrapolate
// the crossfade.
func (w *WaveShaper[T]) SetMix(mix T) {
	w.mix = mix
}

// SetShaperType switches the transfer curve and resets channel state.
func (w *WaveShaper[T]) SetShaperType(t ShaperType) {
	contract.Require(t.Valid(), "waveshaper: unknown shaper type")

	w.shaper = t
	w.Reset()
}

// SetApproxMode switches between exact and fast curve evaluation.
func (w *WaveShaper[T]) SetApproxMode(mode ApproxMode) {
	contract.Require(mode.Valid(), "waveshaper: unknown approximation mode")

	w.approx = mode
}

// SetSnapToZero toggles the denormal guard run after each processed block.
func (w *WaveShaper[T]) SetSnapToZero(enabled bool) {
	w.snapToZero = enabled
}

// Prepare configures the processor for spec. It may be called again when
// the sample rate or channel count changes; channel state is resized and
// cleared every time. MaxBlockSize is accepted but not needed.
func (w *WaveShaper[T]) Prepare(spec core.ProcessSpec) {
	contract.Requiref(spec.SampleRate > 0, "waveshaper: sample rate must be > 0: %g", spec.SampleRate)
	contract.Requiref(spec.NumChannels > 0, "waveshaper: channel count must be > 0: %d", spec.NumChannels)

	w.sampleRate = spec.SampleRate

	w.SetDrive(w.driveDB)
	w.SetMix(w.mix)

	w.state = core.EnsureLen(w.state, spec.NumChannels)
	w.Reset()
}

// Reset sets every channel state value to zero.
func (w *WaveShaper[T]) Reset() {
	w.ResetTo(0)
}

// ResetTo sets every channel state value to v.
func (w *WaveShaper[T]) ResetTo(v T) {
	core.Fill(w.state, v)
}

// ProcessSample shapes one sample of the given channel.
// NaN and Inf inputs propagate through ordinary arithmetic. A drive that
// overflows T can turn the curve output into NaN (sin of Inf, or 0 * Inf),
// and mix 0 does not mask it.
func (w *WaveShaper[T]) ProcessSample(channel int, x T) T {
	contract.Require(uint(channel) < uint(len(w.state)), "waveshaper: channel index out of range")

	distorted := shape(w.shaper, w.approx, x*w.drive)

	return (1-w.mix)*x + w.mix*distorted
}

// ProcessInPlace shapes buf as samples of the given channel.
func (w *WaveShaper[T]) ProcessInPlace(channel int, buf []T) {
	for i, x := range buf {
		buf[i] = w.ProcessSample(channel, x)
	}
}

// Process shapes one block. A bypassed context copies input to output
// unchanged and leaves state untouched. Channels and frames are independent,
// so the iteration order does not affect the result.
func (w *WaveShaper[T]) Process(ctx *buffer.Context[T]) {
	in, out := ctx.Input, ctx.Output
	numChannels := out.NumChannels()
	numFrames := out.NumFrames()

	contract.Require(in.NumChannels() <= len(w.state), "waveshaper: block has more channels than prepared")
	contract.Require(in.NumChannels() == numChannels, "waveshaper: input and output channel counts differ")
	contract.Require(in.NumFrames() == numFrames, "waveshaper: input and output frame counts differ")

	if ctx.Bypassed {
		out.CopyFrom(in)
		return
	}

	for c := range numChannels {
		src := in.Channel(c)
		dst := out.Channel(c)

		for i, x := range src {
			dst[i] = w.ProcessSample(c, x)
		}
	}

	if w.snapToZero {
		w.SnapToZero()
	}
}

// SnapToZero flushes subnormal channel state values to exact zero.
func (w *WaveShaper[T]) SnapToZero() {
	for i := range w.state {
		core.SnapToZero(&w.state[i])
	}
}

// Drive returns the linear drive gain.
func (w *WaveShaper[T]) Drive() T { return w.drive }

// DriveDB returns the drive in decibels as last set.
func (w *WaveShaper[T]) DriveDB() T { return w.driveDB }

// Mix returns the wet fraction.
func (w *WaveShaper[T]) Mix() T { return w.mix }

// ShaperType returns the active curve.
func (w *WaveShaper[T]) ShaperType() ShaperType { return w.shaper }

// ApproxMode returns the curve evaluation mode.
func (w *WaveShaper[T]) ApproxMode() ApproxMode { return w.approx }

// SnapsToZero reports whether the denormal guard runs after each block.
func (w *WaveShaper[T]) SnapsToZero() bool { return w.snapToZero }

// SampleRate returns the sample rate from the last Prepare.
func (w *WaveShaper[T]) SampleRate() float64 { return w.sampleRate }

// NumChannels returns the prepared channel count.
func (w *WaveShaper[T]) NumChannels() int { return len(w.state) }

// State returns the state value of one channel.
func (w *WaveShaper[T]) State(channel int) T {
	contract.Require(uint(channel) < uint(len(w.state)), "waveshaper: channel index out of range")

	return w.state[channel]
}
