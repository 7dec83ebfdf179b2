package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edgecomet/webkit/internal/common/config"
	"github.com/edgecomet/webkit/internal/common/configtypes"
	"github.com/edgecomet/webkit/internal/common/logger"
	"github.com/edgecomet/webkit/pkg/seo"
)

// app carries state shared by all subcommands once the config is loaded
type app struct {
	configPath string
	verbose    bool

	config *configtypes.Config
	logger *logger.DynamicLogger
	store  *seo.Store
}

// setup loads the config file (if any) and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	initial, err := logger.NewDefaultLogger(logger.WithConsoleWriter(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg := config.Default()
	if a.configPath != "" {
		cfg, err = config.LoadConfig(a.configPath, initial.Logger)
		if err != nil {
			return err
		}
	}

	dl, err := logger.NewLogger(cfg.Log, logger.WithConsoleWriter(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("failed to create configured logger: %w", err)
	}
	if a.verbose {
		dl.SetLevel(configtypes.LogLevelDebug)
	}
	zap.ReplaceGlobals(dl.Logger)

	a.config = cfg
	a.logger = dl
	a.store = seo.NewStore(cfg.SEO)

	dl.Debug("Configuration ready",
		zap.String("config_path", a.configPath),
		zap.String("command", cmd.CommandPath()))
	return nil
}

func (a *app) teardown() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// bindEnv lets every flag in fs be set from WEBKIT_<FLAG> unless it was given
// on the command line
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newRootCmd() *cobra.Command {
	a := &app{}

	v := viper.New()
	v.SetEnvPrefix("WEBKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "webkit",
		Short:         "Byte size conversion, SEO head generation and small text/time helpers.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	pfs := cmd.PersistentFlags()
	pfs.StringVarP(&a.configPath, "config", "c", "", "path to YAML configuration file (env: WEBKIT_CONFIG)")
	pfs.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level (env: WEBKIT_VERBOSE)")

	cmd.AddCommand(
		newBytesCmd(a, v),
		newSeoCmd(a, v),
		newTimeCmd(v),
		newInitialsCmd(v),
	)

	bindEnv(v, pfs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("webkit v{{.Version}}\n")

	return cmd
}
