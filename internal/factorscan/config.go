package factorscan

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lenstra/internal/ecm"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// DemoModulus is factored when no input is given.
const DemoModulus = 1271

// EnvPrefix namespaces environment overrides, e.g. LENSTRA_LIMIT=5000.
const EnvPrefix = "LENSTRA"

type Config struct {
	Moduli          []uint64
	Limit           int
	Retries         int
	Attempts        int
	MaxCurveSamples int
	Seed            uint64 // 0 => time-based
	Workers         int    // 0 => GOMAXPROCS
	OutPath         string // "-" for stdout
	Format          Format
	LogLevel        string
	LogPretty       bool
}

// BindFlags registers the factorization flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int("limit", ecm.DefaultLimit, "smoothness bound: prime powers below this are applied")
	fs.Int("retries", ecm.DefaultRetries, "attempts per single-factor search")
	fs.Int("attempts", ecm.DefaultAttempts, "attempts accumulated into each factor set")
	fs.Int("max-curve-samples", ecm.DefaultMaxCurveSamples, "cap on singular curve draws per attempt")
	fs.Uint64("seed", 0, "random seed (0 = time-based)")
	fs.Int("workers", 0, "inputs factored in parallel (default GOMAXPROCS)")
	fs.String("out", "-", "output file path, or - for stdout")
	fs.String("format", string(FormatText), "output format: text|json")
	fs.String("log-level", "warn", "log level: debug|info|warn|error|off")
	fs.Bool("log-pretty", true, "human-readable logs instead of JSON lines")
}

// NewViper returns a viper instance that reads LENSTRA_* environment
// variables; flag names map to keys with '-' replaced by '_'.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}
	return v, nil
}

// LoadConfig resolves flags, environment and positional inputs.
func LoadConfig(v *viper.Viper, args []string) (*Config, error) {
	format, err := parseFormat(v.GetString("format"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Limit:           v.GetInt("limit"),
		Retries:         v.GetInt("retries"),
		Attempts:        v.GetInt("attempts"),
		MaxCurveSamples: v.GetInt("max-curve-samples"),
		Seed:            v.GetUint64("seed"),
		Workers:         v.GetInt("workers"),
		OutPath:         v.GetString("out"),
		Format:          format,
		LogLevel:        v.GetString("log-level"),
		LogPretty:       v.GetBool("log-pretty"),
	}
	if cfg.Limit < 2 {
		return nil, errors.Errorf("invalid --limit %d: must be at least 2", cfg.Limit)
	}
	if cfg.Retries < 1 || cfg.Attempts < 1 {
		return nil, errors.Errorf("--retries and --attempts must be positive (got %d, %d)", cfg.Retries, cfg.Attempts)
	}
	if cfg.MaxCurveSamples < 1 {
		return nil, errors.Errorf("invalid --max-curve-samples %d", cfg.MaxCurveSamples)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if strings.TrimSpace(cfg.OutPath) == "" {
		cfg.OutPath = "-"
	}

	if len(args) == 0 {
		cfg.Moduli = []uint64{DemoModulus}
	}
	for _, a := range args {
		// Validate early (friendlier errors than a failure mid-batch)
		n, err := ParseModulus(a)
		if err != nil {
			return nil, err
		}
		cfg.Moduli = append(cfg.Moduli, n)
	}
	return cfg, nil
}

// ParseModulus parses a decimal or 0x-hex integer in [2, 2^63).
func ParseModulus(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		n, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse integer %q", s)
	}
	if n < 2 {
		return 0, errors.Wrapf(ecm.ErrModulusTooSmall, "input %q", s)
	}
	if n >= ecm.MaxModulus {
		return 0, errors.Wrapf(ecm.ErrModulusTooLarge, "input %q", s)
	}
	return n, nil
}

func parseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, errors.Errorf("unknown format %q", s)
	}
}
