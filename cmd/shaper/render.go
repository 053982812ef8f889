package main

import (
	"github.com/cwbudde/algo-waveshaper/dsp/buffer"
	"github.com/cwbudde/algo-waveshaper/dsp/core"
	"github.com/cwbudde/algo-waveshaper/dsp/effects/waveshaper"
	"github.com/cwbudde/algo-waveshaper/internal/wavio"
	"github.com/pkg/errors"
)

func renderFile(cfg config) (int, error) {
	in, sampleRate, err := wavio.Read(cfg.input)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read input")
	}

	ws, err := newShaper[float32](cfg, cfg.driveDB)
	if err != nil {
		return 0, err
	}

	ws.Prepare(core.NewProcessSpec(
		core.WithSampleRate(float64(sampleRate)),
		core.WithChannels(in.NumChannels()),
		core.WithMaxBlockSize(cfg.blockSize),
	))

	out := renderBlocks(ws, in, cfg.blockSize, cfg.bypass)

	if err := wavio.Write(cfg.output, out, sampleRate, cfg.bitDepth); err != nil {
		return 0, errors.Wrap(err, "failed to write output")
	}

	return out.NumFrames(), nil
}

func newShaper[T core.Sample](cfg config, driveDB float64) (*waveshaper.WaveShaper[T], error) {
	t, err := cfg.shaperType()
	if err != nil {
		return nil, err
	}

	return waveshaper.New[T](
		waveshaper.WithShaperType(t),
		waveshaper.WithDriveDB(driveDB),
		waveshaper.WithMix(cfg.mix),
		waveshaper.WithApproxMode(cfg.approxMode()),
	), nil
}

// renderBlocks runs in through ws in chunks of at most blockSize frames, the
// way a host would call it. ws must already be prepared for in's channels.
func renderBlocks[T core.Sample](ws *waveshaper.WaveShaper[T], in *buffer.Block[T], blockSize int, bypass bool) *buffer.Block[T] {
	chs := in.NumChannels()
	total := in.NumFrames()
	out := buffer.New[T](chs, total)

	src := buffer.New[T](chs, blockSize)
	dst := buffer.New[T](chs, blockSize)

	for start := 0; start < total; start += blockSize {
		n := min(blockSize, total-start)
		src.Resize(chs, n)
		dst.Resize(chs, n)

		for c := range chs {
			copy(src.Channel(c), in.Channel(c)[start:start+n])
		}

		ctx := buffer.NewNonReplacing(src, dst)
		ctx.Bypassed = bypass
		ws.Process(ctx)

		for c := range chs {
			copy(out.Channel(c)[start:start+n], dst.Channel(c))
		}
	}

	return out
}
