package cmd

import (
	"os"
	"path/filepath"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/icon"
	"github.com/darcula-go/darcula/property"
	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.SetOut(os.Stdout)
}

// sourcesCmd lists the property sources of the current theme.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the property sources read for the current platform",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := newEngine()
		builtin := property.NewLoader(filesystem.Layered(property.Builtin(), ""))

		for _, src := range engine.Sources(engine.Info()) {
			var origin string
			userPath := filepath.Join(where.Themes(), src.Name)

			switch {
			case lo.Must(filesystem.API().Exists(userPath)):
				origin = userPath
			case builtin.Exists(src.Name):
				origin = style.Faint("builtin")
			default:
				origin = style.Fg(color.Comment)("missing")
			}

			mark := icon.Get(icon.Found)
			if !engine.Loader.Exists(src.Name) {
				mark = icon.Get(icon.Missing)
			}

			kind := "optional"
			if src.Required {
				kind = "required"
			}

			cmd.Printf("%s %s %s %s\n", mark, style.Fg(color.Keyword)(src.Name), style.Faint(kind), origin)
		}
	},
}
