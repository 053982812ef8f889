package waveshaper

const (
	defaultDriveDB    = 0.0
	defaultMix        = 1.0
	defaultShaper     = SinoidFold
	defaultSampleRate = 44100.0
)

// Config holds construction-time parameters.
type Config struct {
	// DriveDB is the pre-curve gain in decibels.
	DriveDB float64
	// Mix is the wet fraction: 0 is dry, 1 is fully wet. Not clamped.
	Mix        float64
	Shaper     ShaperType
	Approx     ApproxMode
	SnapToZero bool
}

// DefaultConfig returns 0 dB drive, fully wet, SinoidFold, exact curves and
// denormal snapping after each processed block.
func DefaultConfig() Config {
	return Config{
		DriveDB:    defaultDriveDB,
		Mix:        defaultMix,
		Shaper:     defaultShaper,
		Approx:     ApproxExact,
		SnapToZero: true,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithDriveDB sets the drive in decibels.
func WithDriveDB(db float64) Option {
	return func(cfg *Config) {
		cfg.DriveDB = db
	}
}

// WithMix sets the dry/wet mix.
func WithMix(mix float64) Option {
	return func(cfg *Config) {
		cfg.Mix = mix
	}
}

// WithShaperType selects the transfer curve. Unknown values are ignored.
func WithShaperType(t ShaperType) Option {
	return func(cfg *Config) {
		if t.Valid() {
			cfg.Shaper = t
		}
	}
}

// WithApproxMode selects exact or fast curve evaluation. Unknown values are ignored.
func WithApproxMode(mode ApproxMode) Option {
	return func(cfg *Config) {
		if mode.Valid() {
			cfg.Approx = mode
		}
	}
}

// WithSnapToZero toggles the denormal guard that runs after each processed
// block.
func WithSnapToZero(enabled bool) Option {
	return func(cfg *Config) {
		cfg.SnapToZero = enabled
	}
}
