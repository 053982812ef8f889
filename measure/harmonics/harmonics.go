package harmonics

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveshaper/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

const (
	defaultSampleRate   = 48000.0
	defaultFFTSize      = 8192
	defaultFundamental  = 1000.0
	defaultAmplitude    = 1.0
	defaultMaxHarmonics = 9
)

// Processor is anything that shapes one sample of one channel.
type Processor interface {
	ProcessSample(channel int, x float64) float64
}

// Config holds measurement parameters. Zero fields take defaults.
type Config struct {
	SampleRate float64
	// FFTSize must be a power of two.
	FFTSize int
	// FundamentalFreq is rounded to the nearest FFT bin.
	FundamentalFreq float64
	// Amplitude of the test tone.
	Amplitude float64
	// MaxHarmonics limits how many harmonics (2nd upward) are reported.
	MaxHarmonics int
	// WindowType defaults to 4-term Blackman-Harris when unset.
	WindowType window.Type
}

// Result holds measured levels. Ratios are relative to the fundamental.
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64
	// FundamentalAmplitude is the peak amplitude of the fundamental,
	// corrected for the window's coherent gain.
	FundamentalAmplitude float64
	// THD is the root-sum-square of all reported harmonics.
	THD    float64
	THDdB  float64
	OddHD  float64
	EvenHD float64
	// Harmonics[i] is the level of harmonic i+2.
	Harmonics []float64
}

// Harmonic returns the ratio of harmonic k (k >= 2), or 0 when k was not
// measured.
func (r Result) Harmonic(k int) float64 {
	i := k - 2
	if i < 0 || i >= len(r.Harmonics) {
		return 0
	}

	return r.Harmonics[i]
}

// Measure drives a sine through channel 0 of p and analyses the output.
func Measure(p Processor, cfg Config) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	bin := fundamentalBin(cfg)
	freq := float64(bin) * cfg.SampleRate / float64(cfg.FFTSize)
	step := 2 * math.Pi * freq / cfg.SampleRate

	signal := make([]float64, cfg.FFTSize)
	for i := range signal {
		signal[i] = p.ProcessSample(0, cfg.Amplitude*math.Sin(step*float64(i)))
	}

	cfg.FundamentalFreq = freq

	return analyze(signal, cfg)
}

// AnalyzeSignal analyses FFTSize samples of an already shaped signal.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	if len(signal) < cfg.FFTSize {
		return Result{}, fmt.Errorf("harmonics: signal length %d shorter than FFT size %d", len(signal), cfg.FFTSize)
	}

	return analyze(signal[:cfg.FFTSize], cfg)
}

func analyze(signal []float64, cfg Config) (Result, error) {
	n := cfg.FFTSize
	coeffs := window.Generate(cfg.WindowType, n, window.WithPeriodic())

	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics: window: %w", err)
	}

	windowed := append([]float64(nil), signal...)
	if err := window.ApplyCoefficientsInPlace(windowed, coeffs); err != nil {
		return Result{}, fmt.Errorf("harmonics: window: %w", err)
	}

	in := make([]complex128, n)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics: fft plan: %w", err)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics: fft: %w", err)
	}

	mag := make([]float64, n/2+1)
	for i := range mag {
		mag[i] = math.Hypot(real(out[i]), imag(out[i]))
	}

	bin := fundamentalBin(cfg)
	capture := min(window.FirstMinimumBins(cfg.WindowType), bin/2)

	res := Result{
		FundamentalFreq:      float64(bin) * cfg.SampleRate / float64(n),
		FundamentalLevel:     binLevel(mag, bin, capture),
		FundamentalAmplitude: 2 * mag[bin] / (float64(n) * gain),
	}

	if res.FundamentalLevel <= 0 {
		return res, nil
	}

	var sumSq, oddSq, evenSq float64

	res.Harmonics = make([]float64, 0, cfg.MaxHarmonics)
	for k := 2; k-1 <= cfg.MaxHarmonics && k*bin < len(mag); k++ {
		ratio := binLevel(mag, k*bin, capture) / res.FundamentalLevel
		res.Harmonics = append(res.Harmonics, ratio)

		sumSq += ratio * ratio
		if k%2 == 0 {
			evenSq += ratio * ratio
		} else {
			oddSq += ratio * ratio
		}
	}

	res.THD = math.Sqrt(sumSq)
	res.THDdB = ratioToDB(res.THD)
	res.OddHD = math.Sqrt(oddSq)
	res.EvenHD = math.Sqrt(evenSq)

	return res, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.FundamentalFreq == 0 {
		cfg.FundamentalFreq = defaultFundamental
	}

	if cfg.Amplitude == 0 {
		cfg.Amplitude = defaultAmplitude
	}

	if cfg.MaxHarmonics == 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeBlackmanHarris
	}

	switch {
	case cfg.SampleRate < 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0):
		return cfg, fmt.Errorf("harmonics: sample rate must be > 0 and finite: %g", cfg.SampleRate)
	case cfg.FFTSize < 16 || cfg.FFTSize&(cfg.FFTSize-1) != 0:
		return cfg, fmt.Errorf("harmonics: FFT size must be a power of two >= 16: %d", cfg.FFTSize)
	case cfg.FundamentalFreq < 0 || cfg.FundamentalFreq >= cfg.SampleRate/4:
		return cfg, fmt.Errorf("harmonics: fundamental must be in (0, sampleRate/4): %g", cfg.FundamentalFreq)
	case cfg.MaxHarmonics < 0:
		return cfg, fmt.Errorf("harmonics: max harmonics must be >= 0: %d", cfg.MaxHarmonics)
	}

	return cfg, nil
}

// fundamentalBin keeps the tone far enough from DC for the capture region.
func fundamentalBin(cfg Config) int {
	bin := int(math.Round(cfg.FundamentalFreq * float64(cfg.FFTSize) / cfg.SampleRate))
	return max(bin, 2*window.FirstMinimumBins(cfg.WindowType))
}

// binLevel sums magnitudes across the main lobe around bin.
func binLevel(mag []float64, bin, capture int) float64 {
	lo := max(bin-capture, 0)
	hi := min(bin+capture, len(mag)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += mag[i]
	}

	return sum
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
