package main

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-waveshaper/dsp/effects/waveshaper"
	"github.com/pkg/errors"
)

type config struct {
	input     string
	output    string
	shaper    string
	driveDB   float64
	drives    string
	mix       float64
	blockSize int
	bitDepth  int
	bypass    bool
	fast      bool

	points     int
	freq       float64
	sampleRate float64
	harmonics  int
}

func newZeroConfig() config {
	return config{
		shaper:     waveshaper.SinoidFold.String(),
		drives:     "0",
		mix:        1,
		blockSize:  512,
		bitDepth:   16,
		points:     17,
		freq:       1000,
		sampleRate: 48000,
		harmonics:  9,
	}
}

func (cfg *config) shaperType() (waveshaper.ShaperType, error) {
	return waveshaper.ParseShaperType(cfg.shaper)
}

func (cfg *config) approxMode() waveshaper.ApproxMode {
	if cfg.fast {
		return waveshaper.ApproxFast
	}

	return waveshaper.ApproxExact
}

func (cfg *config) validateShape() error {
	if _, err := cfg.shaperType(); err != nil {
		return err
	}

	if cfg.points < 2 {
		return errors.New("need at least 2 curve points")
	}

	if cfg.sampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	if cfg.freq <= 0 || cfg.freq >= cfg.sampleRate/4 {
		return errors.New("tone frequency must lie below a quarter of the sample rate")
	}

	if cfg.harmonics < 1 {
		return errors.New("need at least 1 harmonic")
	}

	if _, err := cfg.driveList(); err != nil {
		return err
	}

	return nil
}

func (cfg *config) validateRender() error {
	if cfg.input == "" {
		return errors.New("missing input path")
	}

	if cfg.output == "" {
		return errors.New("missing output path")
	}

	if _, err := cfg.shaperType(); err != nil {
		return err
	}

	if cfg.blockSize < 1 {
		return errors.New("block size must be positive")
	}

	if cfg.bitDepth != 16 && cfg.bitDepth != 24 {
		return errors.Errorf("unsupported bit depth %d", cfg.bitDepth)
	}

	return nil
}

// driveList parses the comma separated harmonics drive list.
func (cfg *config) driveList() ([]float64, error) {
	var out []float64

	for _, field := range strings.Split(cfg.drives, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad drive %q", field)
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, errors.New("no drive values")
	}

	return out, nil
}
