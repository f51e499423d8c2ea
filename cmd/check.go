package cmd

import (
	"context"
	"os"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/icon"
	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd runs a resolution pass and reports why it would fall back.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the theme resolves without falling back to the base table",
	Run: func(cmd *cobra.Command, args []string) {
		engine, base := newEngine()
		info := engine.Info()

		for _, src := range engine.Sources(info) {
			mark, note := icon.Get(icon.Found), "found"
			if !engine.Loader.Exists(src.Name) {
				mark, note = icon.Get(icon.Missing), "missing"
				if src.Required {
					mark = style.Fg(color.Error)(icon.Get(icon.Fail))
				}
			}
			cmd.Printf("%s %s %s\n", mark, src.Name, style.Faint(note))
		}

		resolved, err := engine.TryResolve(context.Background(), base)
		handleErr(err)

		added := lo.Filter(resolved.Keys(), func(k string, _ int) bool {
			return !base.Has(k)
		})

		cmd.Printf(
			"%s %s resolved for %s: %s, %s added\n",
			style.Fg(color.String)(icon.Get(icon.Success)),
			style.Fg(color.Keyword)(engine.Options.Theme),
			info.OS,
			util.Quantify(resolved.Len(), "key", "keys"),
			util.Quantify(len(added), "key", "keys"),
		)
	},
}
