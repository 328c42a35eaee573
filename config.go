package money

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/exactvalues/money/decimal"
)

// NumberInputMode governs whether constructors accept native numeric
// (non-string) input at all. Native binary floats cannot represent most
// decimal fractions, so accepting them is an explicit, opt-in decision.
type NumberInputMode int

const (
	// NumberInputAlways accepts native numeric input without complaint.
	NumberInputAlways NumberInputMode = iota
	// NumberInputWarn accepts native numeric input, but treats it as a
	// precision hazard: when strict precision checking is enabled the
	// input is rejected with a precision loss error.
	NumberInputWarn
	// NumberInputNever rejects native numeric input outright.
	NumberInputNever
)

var numberInputNames = map[NumberInputMode]string{
	NumberInputAlways: "always",
	NumberInputWarn:   "warn",
	NumberInputNever:  "never",
}

// ParseNumberInputMode converts a string to a number input mode.
func ParseNumberInputMode(s string) (NumberInputMode, error) {
	for m, name := range numberInputNames {
		if name == s {
			return m, nil
		}
	}
	return NumberInputAlways, fmt.Errorf("parsing number input mode %q: %w", s, ErrInvalidInput)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m NumberInputMode) String() string {
	if name, ok := numberInputNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Config is the process-wide configuration consulted by operations that
// would otherwise have to guess: the rounding mode implicit operations fall
// back to, whether native numeric input is accepted, and whether any
// detected precision loss is escalated to a hard failure.
//
// The lifecycle is set once at startup, read thereafter: [Configure] may be
// called at most once, before concurrent use begins.
type Config struct {
	// NumberInputMode governs acceptance of native numeric input.
	NumberInputMode NumberInputMode
	// DefaultRoundingMode is the mode used when an operation that may
	// round is not given one. decimal.ModeNone means there is no default
	// and such operations fail instead.
	DefaultRoundingMode decimal.Mode
	// StrictPrecision escalates every implicit precision-reducing step
	// to an error, even when a default rounding mode is configured.
	StrictPrecision bool
}

var defaultConfig = Config{
	NumberInputMode:     NumberInputAlways,
	DefaultRoundingMode: decimal.ModeHalfUp,
	StrictPrecision:     false,
}

var (
	configMu   sync.RWMutex
	configured bool
	config     = defaultConfig
)

// Configure installs the process-wide configuration.
// It must be called before concurrent use of the package begins and may be
// called at most once; a second call returns an error and changes nothing.
func Configure(c Config) error {
	if !c.DefaultRoundingMode.Valid() {
		return fmt.Errorf("configuring: %w", decimal.ErrInvalidMode)
	}
	if _, ok := numberInputNames[c.NumberInputMode]; !ok {
		return fmt.Errorf("configuring: %w", ErrInvalidInput)
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configured {
		return fmt.Errorf("configuring: configuration is already set")
	}
	configured = true
	config = c
	return nil
}

// Settings returns the configuration currently in effect.
func Settings() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

// yamlConfig mirrors Config with plain string fields for document parsing.
type yamlConfig struct {
	NumberInputMode     string `yaml:"number_input_mode"`
	DefaultRoundingMode string `yaml:"default_rounding_mode"`
	StrictPrecision     bool   `yaml:"strict_precision"`
}

// ParseConfig reads a YAML configuration document:
//
//	number_input_mode: never
//	default_rounding_mode: half-even
//	strict_precision: true
//
// Omitted fields keep their defaults. The parsed value is returned
// rather than installed; pass it to [Configure].
func ParseConfig(data []byte) (Config, error) {
	doc := yamlConfig{
		NumberInputMode:     defaultConfig.NumberInputMode.String(),
		DefaultRoundingMode: defaultConfig.DefaultRoundingMode.String(),
		StrictPrecision:     defaultConfig.StrictPrecision,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	input, err := ParseNumberInputMode(doc.NumberInputMode)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	mode, err := decimal.ParseMode(doc.DefaultRoundingMode)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return Config{
		NumberInputMode:     input,
		DefaultRoundingMode: mode,
		StrictPrecision:     doc.StrictPrecision,
	}, nil
}

// defaultMode resolves the rounding mode for an implicit operation.
// Strict precision forces ModeNone so the loss surfaces as an error.
func defaultMode() decimal.Mode {
	cfg := Settings()
	if cfg.StrictPrecision {
		return decimal.ModeNone
	}
	return cfg.DefaultRoundingMode
}
