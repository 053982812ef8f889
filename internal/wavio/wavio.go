// Package wavio moves WAV files in and out of planar sample blocks.
package wavio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-waveshaper/dsp/buffer"
	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

const formatPCM = 1

// Read decodes a WAV file into a block and returns its sample rate.
func Read(path string) (*buffer.Block[float32], int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	if buf.Format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("invalid wav sample-rate: %d", buf.Format.SampleRate)
	}

	block := &buffer.Block[float32]{}
	block.Deinterleave(buf.Data, buf.Format.NumChannels)

	return block, buf.Format.SampleRate, nil
}

// Write encodes block as integer PCM with the given bit depth (16 or 24).
func Write(path string, block *buffer.Block[float32], sampleRate, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}

	if block.NumChannels() < 1 {
		return fmt.Errorf("nothing to write: block has no channels")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, block.NumChannels(), formatPCM)

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: block.NumChannels(),
		},
		Data:           block.Interleave(nil),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
