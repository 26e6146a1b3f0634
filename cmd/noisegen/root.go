package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gordonklaus/colornoise/internal/config"
	"github.com/gordonklaus/colornoise/internal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "noisegen",
		Short:         "Print white, pink and brown noise samples.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./noisegen.yaml)")
	pf.String("log-level", def.Logger.Level, "log level")
	pf.String("log-format", def.Logger.Format, "log format, console or json")
	pf.String("color", def.Generator.Color, "noise color: "+strings.Join(config.Colors, ", "))
	pf.Uint32("seed", def.Generator.Seed, "generator seed, 0 seeds from the clock")
	pf.Uint32("range", def.Generator.Range, "output range of voss noise")
	pf.Float32("scale", def.Generator.Scale, "scale of white noise")
	pf.IntP("count", "n", def.Generator.Count, "number of samples")
	for key, flag := range map[string]string{
		"logger.level":    "log-level",
		"logger.format":   "log-format",
		"generator.color": "color",
		"generator.seed":  "seed",
		"generator.range": "range",
		"generator.scale": "scale",
		"generator.count": "count",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(a.printCmd(), a.fingerprintCmd(), a.nodesCmd())
	return root
}

// load reads the config file and environment on top of the defaults.
func (a *app) load(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("noisegen")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("NOISEGEN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return config.Error.New("reading config: %v", err)
		}
	}

	a.cfg = config.Default()
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return config.Error.Wrap(err)
	}
	a.log = logging.New(a.cfg.Logger, nil)
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log.Debug("configured", zap.Any("generator", a.cfg.Generator))
	return nil
}
