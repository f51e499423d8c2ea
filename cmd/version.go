package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version")
}

var versionTemplate = lo.Must(template.New("version").Funcs(map[string]any{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Keyword),
	"or": func(fallback, s string) string {
		if s == "" {
			return fallback
		}
		return s
	},
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Revision" }}    {{ bold (or "unknown" .Revision) }}
  {{ faint "Built at" }}    {{ bold (or "unknown" .BuiltAt) }}
  {{ faint "Built by" }}    {{ bold (or "unknown" .BuiltBy) }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, OS, Arch, BuiltAt, BuiltBy, Revision string
		}{
			App:      constant.Darcula,
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
		}))
	},
}
