// Package config parses bncalc's command line. Every flag can also be set
// from a BNCALC_ prefixed environment variable; a flag given explicitly on
// the command line always wins.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "BNCALC_"

// Bits lists the capacities the calculator can be run at.
var Bits = []int{32, 64, 128, 256, 512, 1024, 2048, 4096}

// Config holds the settings shared by every bncalc subcommand.
type Config struct {
	Bits     int
	Iter     int
	Workers  int
	Seed     int64
	LogLevel string
	LogJSON  bool

	// Args holds the positional arguments left after the flags.
	Args []string
}

// ConfigError reports a bad flag or environment value.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

func newConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// IsConfigError reports whether err, or anything it wraps, is a ConfigError.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

func defaults() Config {
	return Config{
		Bits:     256,
		Iter:     10000,
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// Parse parses args (not including the subcommand name) into a Config.
// Usage and parse errors are written to errOut. flag.ErrHelp is returned
// unwrapped when -h is given.
func Parse(name string, args []string, errOut io.Writer) (Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVar(&cfg.Bits, "bits", cfg.Bits, "Capacity in bits ("+bitsList()+")")
	fs.IntVar(&cfg.Iter, "iter", cfg.Iter, "Random cases per op (verify)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent workers (verify)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed, 0 picks one from the clock (verify)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "Log JSON lines instead of console output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, newConfigError("%s", err)
	}
	cfg.Args = fs.Args()

	if err := applyEnv(fs, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !SupportedBits(c.Bits) {
		return newConfigError("bits must be one of %s, found %d", bitsList(), c.Bits)
	}
	if c.Iter <= 0 {
		return newConfigError("iter must be > 0, found %d", c.Iter)
	}
	if c.Workers <= 0 {
		return newConfigError("workers must be > 0, found %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return newConfigError("invalid log level %q", c.LogLevel)
	}
	return nil
}

// SupportedBits reports whether bits is one of the available capacities.
func SupportedBits(bits int) bool {
	for _, b := range Bits {
		if b == bits {
			return true
		}
	}
	return false
}

func bitsList() string {
	s := make([]string, len(Bits))
	for i, b := range Bits {
		s[i] = strconv.Itoa(b)
	}
	return strings.Join(s, ", ")
}

type envOverride struct {
	key   string
	flag  string
	apply func(c *Config, v string) error
}

var envOverrides = []envOverride{
	{"BITS", "bits", func(c *Config, v string) (err error) {
		c.Bits, err = strconv.Atoi(v)
		return err
	}},
	{"ITER", "iter", func(c *Config, v string) (err error) {
		c.Iter, err = strconv.Atoi(v)
		return err
	}},
	{"WORKERS", "workers", func(c *Config, v string) (err error) {
		c.Workers, err = strconv.Atoi(v)
		return err
	}},
	{"SEED", "seed", func(c *Config, v string) (err error) {
		c.Seed, err = strconv.ParseInt(v, 10, 64)
		return err
	}},
	{"LOG_LEVEL", "log-level", func(c *Config, v string) error {
		c.LogLevel = v
		return nil
	}},
	{"LOG_JSON", "log-json", func(c *Config, v string) (err error) {
		c.LogJSON, err = strconv.ParseBool(v)
		return err
	}},
}

func applyEnv(fs *flag.FlagSet, cfg *Config) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, o := range envOverrides {
		if set[o.flag] {
			continue
		}
		v, ok := os.LookupEnv(EnvPrefix + o.key)
		if !ok || v == "" {
			continue
		}
		if err := o.apply(cfg, v); err != nil {
			return newConfigError("invalid %s%s %q: %v", EnvPrefix, o.key, v, err)
		}
	}
	return nil
}
