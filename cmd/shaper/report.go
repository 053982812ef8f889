package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-waveshaper/dsp/core"
	"github.com/cwbudde/algo-waveshaper/dsp/effects/waveshaper"
	"github.com/cwbudde/algo-waveshaper/measure/curve"
	"github.com/cwbudde/algo-waveshaper/measure/harmonics"
)

func printShaperTypes(w io.Writer) {
	for _, t := range waveshaper.ShaperTypes() {
		fmt.Fprintf(w, "- %s\n", t)
	}
}

func printCurve(w io.Writer, cfg config) error {
	ws, err := newShaper[float64](cfg, cfg.driveDB)
	if err != nil {
		return err
	}
	ws.Prepare(core.NewProcessSpec(core.WithChannels(1)))

	c, err := curve.SampleProcessor(ws, -1, 1, cfg.points)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, drive %.2f dB (x%.4f), mix %.2f\n\n", ws.ShaperType(), ws.DriveDB(), ws.Drive(), ws.Mix())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "in\tout\t")
	for i := range c.In {
		fmt.Fprintf(tw, "%.4f\t%.6f\t\n", c.In[i], c.Out[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lo, hi := c.Range()
	fmt.Fprintf(w, "\nrange [%.6f, %.6f]  peak %.6f  monotonic %v  folds %d\n",
		lo, hi, c.Peak(), c.IsMonotonic(), c.FoldCount())

	return nil
}

func printHarmonics(w io.Writer, cfg config) error {
	drives, err := cfg.driveList()
	if err != nil {
		return err
	}

	mc := harmonics.Config{
		SampleRate:      cfg.sampleRate,
		FundamentalFreq: cfg.freq,
		MaxHarmonics:    cfg.harmonics,
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "drive dB\tTHD %\tTHD dB\todd %\teven %\t")
	for k := 2; k <= cfg.harmonics+1; k++ {
		fmt.Fprintf(tw, "H%d %%\t", k)
	}
	fmt.Fprintln(tw)

	for _, d := range drives {
		ws, err := newShaper[float64](cfg, d)
		if err != nil {
			return err
		}
		ws.Prepare(core.NewProcessSpec(
			core.WithSampleRate(cfg.sampleRate),
			core.WithChannels(1),
		))

		res, err := harmonics.Measure(ws, mc)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%.2f\t%.4f\t%.2f\t%.4f\t%.4f\t", d, 100*res.THD, res.THDdB, 100*res.OddHD, 100*res.EvenHD)
		for k := 2; k <= cfg.harmonics+1; k++ {
			fmt.Fprintf(tw, "%.4f\t", 100*res.Harmonic(k))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
