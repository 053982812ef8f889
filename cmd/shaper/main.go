// Command shaper renders WAV files through a waveshaper and prints
// analysis of its transfer curves.
//
// Usage:
//
//	shaper list
//	shaper render -i in.wav -o out.wav -t softclip -d 12 -m 1
//	shaper curve -t sinoidfold -d 12 -n 17
//	shaper harmonics -t hardclip -d 0,6,12 -f 1000 -r 48000
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "shaper"

// AppDesc is the app description
const AppDesc = "Per-sample waveshaping: hard clip, soft clip and sine fold"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	listCmd := flaggy.Subcommand{
		Name:        "list",
		ShortName:   "ls",
		Description: "list the available shaper types",
	}

	renderCmd := flaggy.Subcommand{
		Name:        "render",
		ShortName:   "r",
		Description: "process a WAV file block by block",
	}
	renderCmd.String(&cfg.input, "i", "input", "input WAV path")
	renderCmd.String(&cfg.output, "o", "output", "output WAV path")
	renderCmd.String(&cfg.shaper, "t", "type", "shaper type (hardclip, softclip, sinoidfold)")
	renderCmd.Float64(&cfg.driveDB, "d", "drive", "drive in dB")
	renderCmd.Float64(&cfg.mix, "m", "mix", "wet fraction (1 = fully shaped)")
	renderCmd.Int(&cfg.blockSize, "b", "block", "block size in frames")
	renderCmd.Int(&cfg.bitDepth, "bits", "bit-depth", "output bit depth (16 or 24)")
	renderCmd.Bool(&cfg.bypass, "x", "bypass", "copy input to output unchanged")
	renderCmd.Bool(&cfg.fast, "f", "fast", "use the fast soft-clip approximation")

	curveCmd := flaggy.Subcommand{
		Name:        "curve",
		ShortName:   "c",
		Description: "print the sampled transfer curve over [-1, 1]",
	}
	curveCmd.String(&cfg.shaper, "t", "type", "shaper type")
	curveCmd.Float64(&cfg.driveDB, "d", "drive", "drive in dB")
	curveCmd.Float64(&cfg.mix, "m", "mix", "wet fraction")
	curveCmd.Int(&cfg.points, "n", "points", "number of curve points")

	harmonicsCmd := flaggy.Subcommand{
		Name:        "harmonics",
		ShortName:   "hd",
		Description: "measure THD and harmonic ratios for one or more drives",
	}
	harmonicsCmd.String(&cfg.shaper, "t", "type", "shaper type")
	harmonicsCmd.String(&cfg.drives, "d", "drive", "comma separated drives in dB")
	harmonicsCmd.Float64(&cfg.mix, "m", "mix", "wet fraction")
	harmonicsCmd.Float64(&cfg.freq, "f", "freq", "test tone frequency in Hz")
	harmonicsCmd.Float64(&cfg.sampleRate, "r", "rate", "sample rate")
	harmonicsCmd.Int(&cfg.harmonics, "k", "harmonics", "number of harmonics to report")

	parser.AttachSubcommand(&listCmd, 1)
	parser.AttachSubcommand(&renderCmd, 1)
	parser.AttachSubcommand(&curveCmd, 1)
	parser.AttachSubcommand(&harmonicsCmd, 1)

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case listCmd.Used:
		printShaperTypes(os.Stdout)

	case renderCmd.Used:
		chk(cfg.validateRender(), "invalid config")
		frames, err := renderFile(cfg)
		chk(err, "render failed")
		fmt.Printf("wrote %d frames to %s\n", frames, cfg.output)

	case curveCmd.Used:
		chk(cfg.validateShape(), "invalid config")
		chk(printCurve(os.Stdout, cfg), "curve failed")

	case harmonicsCmd.Used:
		chk(cfg.validateShape(), "invalid config")
		chk(printHarmonics(os.Stdout, cfg), "harmonics failed")

	default:
		parser.ShowHelp()
	}
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
