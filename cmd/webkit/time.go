package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgecomet/webkit/pkg/timefmt"
)

func newTimeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Convert between second counts and clock durations",
	}
	cmd.AddCommand(newTimeFormatCmd(v), newTimeParseCmd(v), newTimeISOCmd())
	return cmd
}

func newTimeFormatCmd(v *viper.Viper) *cobra.Command {
	var (
		style       string
		rounding    string
		separator   string
		alwaysHours bool
		noPad       bool
	)

	cmd := &cobra.Command{
		Use:     "format <seconds>",
		Short:   "Format a number of seconds as 1:05:30, 1h 5m 30s or words",
		Example: "  webkit time format 3930\n  webkit time format --style long 3930",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", timefmt.ErrInvalidSeconds, args[0])
			}

			opts := timefmt.DefaultOptions()
			if opts.Style, err = timefmt.ParseStyle(style); err != nil {
				return err
			}
			if opts.Rounding, err = timefmt.ParseRounding(rounding); err != nil {
				return err
			}
			opts.Separator = separator
			opts.AlwaysShowHours = alwaysHours
			opts.PadMinutes = !noPad

			s, err := timefmt.Format(seconds, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&style, "style", "s", "digital", "digital, long, short or compact (env: WEBKIT_STYLE)")
	fs.StringVarP(&rounding, "rounding", "r", "floor", "floor, ceil or round (env: WEBKIT_ROUNDING)")
	fs.StringVar(&separator, "separator", ":", "separator for digital styles (env: WEBKIT_SEPARATOR)")
	fs.BoolVar(&alwaysHours, "always-hours", false, "show hours even when zero (env: WEBKIT_ALWAYS_HOURS)")
	fs.BoolVar(&noPad, "no-pad", false, "do not zero-pad minutes (env: WEBKIT_NO_PAD)")
	bindEnv(v, fs)

	return cmd
}

func newTimeParseCmd(v *viper.Viper) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:     "parse <[[hh:]mm:]ss>",
		Short:   "Convert a clock duration to seconds",
		Example: "  webkit time parse 1:05:30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := timefmt.Parse(args[0], separator)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seconds)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&separator, "separator", ":", "component separator (env: WEBKIT_SEPARATOR)")
	bindEnv(v, fs)

	return cmd
}

func newTimeISOCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "iso <date>",
		Short:   "Normalize a date string to UTC ISO 8601",
		Example: "  webkit time iso 2024-03-10\n  webkit time iso \"2024-03-10T08:00:00+02:00\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso, ok := timefmt.ToISO(args[0])
			if !ok {
				return fmt.Errorf("unrecognized date %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), iso)
			return nil
		},
	}
}
