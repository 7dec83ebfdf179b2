package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgecomet/webkit/pkg/textutil"
)

func newInitialsCmd(v *viper.Viper) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:     "initials <name>...",
		Short:   "Print up to two initials for a person's name",
		Example: "  webkit initials Émile Zola",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textutil.Initials(strings.Join(args, " "), fallback))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&fallback, "fallback", textutil.DefaultInitialsFallback, "printed when the name is empty (env: WEBKIT_FALLBACK)")
	bindEnv(v, fs)

	return cmd
}
