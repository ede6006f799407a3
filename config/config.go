// Package config loads the branchnet configuration file.
//
// The file is TOML. Every key is optional: values are laid over Default(), and the
// result is checked with struct validation before use.
//
//	[server]
//	addr = ":8080"
//	read_timeout = "5s"
//
//	[placement]
//	width = 800
//	height = 600
//	min_separation = 100
//	strategy = "noise"
//
//	[journal]
//	path = "/var/lib/branchnet"
//
//	[network]
//	roots = ["Colombo"]
//	origin = { x = 100, y = 100 }
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/placement"
)

var (
	// ErrUnknownKey indicates a key the configuration does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the complete configuration.
type Config struct {
	Server    Server    `toml:"server"`
	Placement Placement `toml:"placement"`
	Journal   Journal   `toml:"journal"`
	Gazetteer Gazetteer `toml:"gazetteer"`
	Network   Network   `toml:"network"`
	Log       Log       `toml:"log"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string   `toml:"addr" validate:"required"`
	ReadTimeout     Duration `toml:"read_timeout" validate:"gt=0"`
	WriteTimeout    Duration `toml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" validate:"gt=0"`
}

// Duration is a time.Duration written as a string ("5s", "1m30s").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Placement configures the screen layout of branches.
type Placement struct {
	Width         float64 `toml:"width" validate:"gt=0"`
	Height        float64 `toml:"height" validate:"gt=0"`
	Margin        float64 `toml:"margin" validate:"gte=0"`
	MinSeparation float64 `toml:"min_separation" validate:"gte=0"`
	MaxAttempts   int     `toml:"max_attempts" validate:"min=1"`
	RelaxFactor   float64 `toml:"relax_factor" validate:"gt=0,lte=1"`
	RelaxSteps    int     `toml:"relax_steps" validate:"gte=0"`
	Strategy      string  `toml:"strategy" validate:"oneof=uniform noise"`
	Seed          int64   `toml:"seed"`
}

// Journal configures the insertion log. An empty path without in_memory disables it.
type Journal struct {
	Path       string `toml:"path"`
	InMemory   bool   `toml:"in_memory"`
	SyncWrites bool   `toml:"sync_writes"`
}

// Gazetteer selects the place table. An empty path selects the built-in districts.
type Gazetteer struct {
	Path string `toml:"path" validate:"omitempty,endswith=.toml|endswith=.yaml|endswith=.yml"`
}

// Network configures the initial state of a session.
type Network struct {
	// Roots are inserted, in order, into an empty network before anything else.
	Roots []string `toml:"roots" validate:"dive,required"`

	// Origin is the screen position of the first branch.
	Origin Point `toml:"origin"`

	// AppendOnly disables rewiring of earlier edges.
	AppendOnly bool `toml:"append_only"`
}

// Point is a screen position.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration(5 * time.Second),
			WriteTimeout:    Duration(10 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Placement: Placement{
			Width:         800,
			Height:        600,
			Margin:        50,
			MinSeparation: 100,
			MaxAttempts:   placement.DefaultMaxAttempts,
			RelaxFactor:   placement.DefaultRelaxFactor,
			RelaxSteps:    placement.DefaultRelaxSteps,
			Strategy:      placement.StrategyUniform,
			Seed:          placement.DefaultSeed,
		},
		Journal: Journal{SyncWrites: true},
		Network: Network{
			Roots:  []string{"Colombo"},
			Origin: Point{X: 100, Y: 100},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default() and validates the result.
//
// Errors: ErrUnknownKey, ErrInvalid, I/O and decode errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML data over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate reports field names by their TOML keys.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}()

// Validate checks field rules and the cross-field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}
	if c.Placement.Margin >= c.Placement.Width || c.Placement.Margin >= c.Placement.Height {
		return fmt.Errorf("%w: placement.margin %v does not fit a %vx%v area",
			ErrInvalid, c.Placement.Margin, c.Placement.Width, c.Placement.Height)
	}
	if len(c.Network.Roots) > 0 && !c.Placement.Bounds().Contains(c.Network.Origin.point()) {
		return fmt.Errorf("%w: network.origin (%v, %v) lies outside the placement area",
			ErrInvalid, c.Network.Origin.X, c.Network.Origin.Y)
	}

	return nil
}

// describe renders the first validation failure as "section.key: rule".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	e := verrs[0]
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	if e.Param() != "" {
		return fmt.Sprintf("%s: must satisfy %s=%s", field, e.Tag(), e.Param())
	}

	return fmt.Sprintf("%s: %s", field, e.Tag())
}

// Bounds returns the area node boxes may be placed in.
func (p Placement) Bounds() placement.Bounds {
	return placement.ScreenBounds(p.Width, p.Height, p.Margin)
}

// Options returns the sampler search options.
func (p Placement) Options() placement.Options {
	return placement.Options{
		MaxAttempts: p.MaxAttempts,
		RelaxFactor: p.RelaxFactor,
		RelaxSteps:  p.RelaxSteps,
		Seed:        p.Seed,
	}
}

// Sampler builds the configured placement strategy.
func (p Placement) Sampler() (placement.Sampler, error) {
	return placement.New(p.Strategy, p.Options())
}

// Enabled reports whether insertions should be journaled.
func (j Journal) Enabled() bool { return j.InMemory || j.Path != "" }

// Config converts the section into journal options.
func (j Journal) Config(logger *log.Logger) journal.Config {
	return journal.Config{Path: j.Path, InMemory: j.InMemory, SyncWrites: j.SyncWrites, Logger: logger}
}

// point converts to a placement point.
func (p Point) point() placement.Point { return placement.Point{X: p.X, Y: p.Y} }

// OriginPoint returns the origin as a placement point.
func (n Network) OriginPoint() placement.Point { return n.Origin.point() }

// ParseLevel returns the configured level, or info if it does not parse.
func (l Log) ParseLevel() log.Level {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
