// Package config holds the noisegen configuration.
package config

import (
	"github.com/zeebo/errs"

	"github.com/gordonklaus/colornoise/dsp"
	"github.com/gordonklaus/colornoise/internal/logging"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Colors lists the accepted values of Generator.Color.
var Colors = []string{"white", "pink", "brown", "voss", "table"}

type Config struct {
	Logger    logging.Config  `mapstructure:"logger"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type GeneratorConfig struct {
	Color string  `mapstructure:"color"`
	Seed  uint32  `mapstructure:"seed"`
	Range uint32  `mapstructure:"range"`
	Scale float32 `mapstructure:"scale"`
	Count int     `mapstructure:"count"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Logger: logging.Config{Level: "info", Format: "console"},
		Generator: GeneratorConfig{
			Color: "pink",
			Range: dsp.DefaultRange,
			Scale: dsp.WhiteScale,
			Count: 100,
		},
	}
}

func (c *Config) Validate() error {
	return c.Generator.Validate()
}

func (g *GeneratorConfig) Validate() error {
	known := false
	for _, c := range Colors {
		known = known || c == g.Color
	}
	if !known {
		return Error.New("unknown color %q", g.Color)
	}
	if g.Color == "voss" && g.Range/5 == 0 {
		return Error.New("range must be at least 5: %d", g.Range)
	}
	if g.Count < 0 {
		return Error.New("negative count: %d", g.Count)
	}
	if g.Scale <= 0 {
		return Error.New("scale must be positive: %v", g.Scale)
	}
	return nil
}
