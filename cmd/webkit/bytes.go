package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edgecomet/webkit/pkg/bytesize"
)

func newBytesCmd(a *app, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Convert between human-readable sizes and byte counts",
	}
	cmd.AddCommand(newBytesParseCmd(a, v), newBytesFormatCmd(a, v))
	return cmd
}

func newBytesParseCmd(a *app, v *viper.Viper) *cobra.Command {
	var (
		base    int
		noRound bool
	)

	cmd := &cobra.Command{
		Use:     "parse <size>...",
		Short:   "Print the byte count of sizes such as 1.5mb or 10 GiB",
		Example: "  webkit bytes parse 1.5mb\n  webkit bytes parse --base 1000 10gb",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := []bytesize.Option{
				bytesize.WithBase(bytesize.Base(a.config.Bytes.Base)),
				bytesize.WithLogger(a.logger.Logger),
			}
			toBytes := bytesize.NewConverter(defaults...)

			var overrides []bytesize.Option
			if cmd.Flags().Changed("base") {
				overrides = append(overrides, bytesize.WithBase(bytesize.Base(base)))
			}
			if noRound {
				overrides = append(overrides, bytesize.WithRound(false))
			}

			for _, arg := range args {
				n, err := toBytes(arg, overrides...)
				if err != nil {
					return err
				}
				a.logger.Debug("Parsed size", zap.String("input", arg), zap.Float64("bytes", n))
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(n, 'f', -1, 64))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&base, "base", "b", int(bytesize.Binary), "unit base, 1000 or 1024 (env: WEBKIT_BASE)")
	fs.BoolVar(&noRound, "no-round", false, "keep fractional byte counts (env: WEBKIT_NO_ROUND)")
	bindEnv(v, fs)

	return cmd
}

func newBytesFormatCmd(a *app, v *viper.Viper) *cobra.Command {
	var (
		base      int
		precision int
		long      bool
	)

	cmd := &cobra.Command{
		Use:     "format <bytes>...",
		Short:   "Print byte counts as human-readable sizes",
		Example: "  webkit bytes format 1572864\n  webkit bytes format --base 1000 --precision 1 1500",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.config.Bytes.FormatOptions()

			fs := cmd.Flags()
			if fs.Changed("base") {
				opts.Base = bytesize.Base(base)
			}
			if fs.Changed("precision") {
				opts.Precision = precision
			}
			if fs.Changed("long") {
				opts.LongForm = long
			}

			for _, arg := range args {
				n, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("%w: %q", bytesize.ErrInvalidNumber, arg)
				}
				s, err := bytesize.FromBytes(n, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&base, "base", "b", int(bytesize.Binary), "unit base, 1000 or 1024 (env: WEBKIT_BASE)")
	fs.IntVarP(&precision, "precision", "p", bytesize.DefaultPrecision, "digits after the decimal point (env: WEBKIT_PRECISION)")
	fs.BoolVarP(&long, "long", "l", false, "write \"bytes\" instead of \"B\" (env: WEBKIT_LONG)")
	bindEnv(v, fs)

	return cmd
}
