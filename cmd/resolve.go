package cmd

import (
	"context"
	"os"

	"github.com/darcula-go/darcula/inline"
	"github.com/darcula-go/darcula/key"
	"github.com/darcula-go/darcula/laf"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newEngine wires an engine from the configuration and returns it together
// with the basic base table of the platform it resolves for.
func newEngine() (*laf.Engine, *table.Table) {
	engine := laf.New(laf.OptionsFromConfig())
	base := laf.BasicDefaults{OS: engine.Info().OS}.BaseTable()
	return engine, base
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	resolveCmd.Flags().StringP("filter", "f", "", "Only print keys matching the query (fuzzy, or @substring@)")
	resolveCmd.Flags().BoolP("strict", "s", false, "Fail instead of falling back to the base table")

	resolveCmd.SetOut(os.Stdout)
}

// resolveCmd prints the resolved style table.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the theme over the basic defaults and print the style table",
	Run: func(cmd *cobra.Command, args []string) {
		engine, base := newEngine()

		var resolved *table.Table
		if lo.Must(cmd.Flags().GetBool("strict")) {
			var err error
			resolved, err = engine.TryResolve(context.Background(), base)
			handleErr(err)
		} else {
			resolved = engine.Resolve(base)
		}

		handleErr(inline.Run(resolved, &inline.Options{
			Out:      cmd.OutOrStdout(),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Theme:    engine.Options.Theme,
			Platform: engine.Info().OS.String(),
			Filter:   inline.ParseKeyFilter(lo.Must(cmd.Flags().GetString("filter"))),
			Swatches: viper.GetBool(key.CliColored) && util.IsTerminal(),
		}))
	},
}
