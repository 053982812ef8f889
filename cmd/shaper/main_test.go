package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-waveshaper/dsp/buffer"
	"github.com/cwbudde/algo-waveshaper/dsp/core"
	"github.com/cwbudde/algo-waveshaper/dsp/effects/waveshaper"
	"github.com/cwbudde/algo-waveshaper/internal/testutil"
	"github.com/cwbudde/algo-waveshaper/internal/wavio"
)

func TestRenderBlocksMatchesSingleBlock(t *testing.T) {
	in := buffer.FromChannels(
		testutil.DeterministicSine[float64](220, 48000, 0.8, 1000),
		testutil.DeterministicNoise[float64](7, 0.9, 1000),
	)

	cfg := newZeroConfig()
	cfg.shaper = "softclip"

	for _, blockSize := range []int{1, 64, 333, 1000, 4096} {
		ws, err := newShaper[float64](cfg, 12)
		if err != nil {
			t.Fatalf("newShaper() error = %v", err)
		}
		ws.Prepare(core.NewProcessSpec(core.WithChannels(2), core.WithMaxBlockSize(blockSize)))

		out := renderBlocks(ws, in, blockSize, false)
		if out.NumFrames() != 1000 || out.NumChannels() != 2 {
			t.Fatalf("block %d: dims = %dx%d", blockSize, out.NumChannels(), out.NumFrames())
		}

		for c := range 2 {
			for i, x := range in.Channel(c) {
				want := math.Tanh(x * math.Pow(10, 12.0/20))
				if got := out.Channel(c)[i]; math.Abs(got-want) > 1e-12 {
					t.Fatalf("block %d ch %d frame %d: got=%g want=%g", blockSize, c, i, got, want)
				}
			}
		}
	}
}

func TestRenderBlocksBypassCopies(t *testing.T) {
	in := buffer.FromChannels(testutil.Ramp[float32](-2, 2, 100))

	cfg := newZeroConfig()
	cfg.shaper = "hardclip"

	ws, err := newShaper[float32](cfg, 24)
	if err != nil {
		t.Fatal(err)
	}
	ws.Prepare(core.NewProcessSpec(core.WithChannels(1)))

	out := renderBlocks(ws, in, 32, true)
	testutil.RequireSliceNearlyEqual(t, out.Channel(0), in.Channel(0), 0)
}

func TestRenderFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wav")
	outPath := filepath.Join(dir, "out.wav")

	src := buffer.FromChannels(testutil.DeterministicSine[float32](1000, 44100, 0.9, 2048))
	if err := wavio.Write(inPath, src, 44100, 16); err != nil {
		t.Fatal(err)
	}

	cfg := newZeroConfig()
	cfg.input = inPath
	cfg.output = outPath
	cfg.shaper = "hardclip"
	cfg.driveDB = 20
	cfg.blockSize = 100

	if err := cfg.validateRender(); err != nil {
		t.Fatalf("validateRender() error = %v", err)
	}

	frames, err := renderFile(cfg)
	if err != nil {
		t.Fatalf("renderFile() error = %v", err)
	}
	if frames != 2048 {
		t.Fatalf("frames = %d, want 2048", frames)
	}

	out, rate, err := wavio.Read(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if rate != 44100 {
		t.Fatalf("rate = %d", rate)
	}

	// Hard clip at 20 dB turns the sine into a near square wave.
	var clipped int
	for _, v := range out.Channel(0) {
		if math.Abs(float64(v)) > 0.99 {
			clipped++
		}
	}
	if clipped < 2048*3/4 {
		t.Fatalf("only %d of 2048 samples clipped", clipped)
	}
}

func TestRenderFileMissingInput(t *testing.T) {
	cfg := newZeroConfig()
	cfg.input = filepath.Join(t.TempDir(), "nope.wav")
	cfg.output = filepath.Join(t.TempDir(), "out.wav")

	if _, err := renderFile(cfg); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config)
		render bool
		ok     bool
	}{
		{"defaults shape", func(*config) {}, false, true},
		{"bad shaper", func(c *config) { c.shaper = "fuzz" }, false, false},
		{"one point", func(c *config) { c.points = 1 }, false, false},
		{"tone too high", func(c *config) { c.freq = 30000 }, false, false},
		{"bad drive list", func(c *config) { c.drives = "0,x" }, false, false},
		{"empty drive list", func(c *config) { c.drives = " , " }, false, false},
		{"no input", func(c *config) { c.output = "o.wav" }, true, false},
		{"no output", func(c *config) { c.input = "i.wav" }, true, false},
		{"bad bits", func(c *config) { c.input, c.output, c.bitDepth = "i", "o", 8 }, true, false},
		{"zero block", func(c *config) { c.input, c.output, c.blockSize = "i", "o", 0 }, true, false},
		{"render ok", func(c *config) { c.input, c.output = "i", "o" }, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newZeroConfig()
			tt.mutate(&cfg)

			var err error
			if tt.render {
				err = cfg.validateRender()
			} else {
				err = cfg.validateShape()
			}

			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestDriveList(t *testing.T) {
	cfg := newZeroConfig()
	cfg.drives = " 0, 6 ,12,-3.5"

	got, err := cfg.driveList()
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 6, 12, -3.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestPrintShaperTypes(t *testing.T) {
	var buf bytes.Buffer
	printShaperTypes(&buf)

	for _, st := range waveshaper.ShaperTypes() {
		if !strings.Contains(buf.String(), "- "+st.String()+"\n") {
			t.Fatalf("missing %s in %q", st, buf.String())
		}
	}
}

func TestPrintCurveReportsFolds(t *testing.T) {
	cfg := newZeroConfig()
	cfg.shaper = "sinoidfold"
	cfg.driveDB = 12
	cfg.points = 101

	var buf bytes.Buffer
	if err := printCurve(&buf, cfg); err != nil {
		t.Fatalf("printCurve() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "sinoidfold") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "monotonic false") {
		t.Fatalf("12 dB sine fold should not be monotonic: %q", out)
	}
}

func TestPrintHarmonicsRows(t *testing.T) {
	cfg := newZeroConfig()
	cfg.shaper = "softclip"
	cfg.drives = "0,12"
	cfg.harmonics = 3

	var buf bytes.Buffer
	if err := printHarmonics(&buf, cfg); err != nil {
		t.Fatalf("printHarmonics() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "H4 %") {
		t.Fatalf("header missing H4: %q", lines[0])
	}
}
