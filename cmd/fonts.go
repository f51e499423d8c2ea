package cmd

import (
	"os"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/fontprobe"
	"github.com/darcula-go/darcula/icon"
	"github.com/darcula-go/darcula/laf"
	"github.com/darcula-go/darcula/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fontsCmd)

	fontsCmd.Flags().BoolP("refresh", "r", false, "Probe the installed fonts again instead of using the cache")
	fontsCmd.Flags().BoolP("candidate", "c", false, "Print only the family that would be substituted")

	fontsCmd.SetOut(os.Stdout)
}

// fontsCmd shows what the font substitution sees on this host.
var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List installed font families and the substitution candidate",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := newEngine()

		if lo.Must(cmd.Flags().GetBool("refresh")) {
			if cached, ok := engine.Fonts.(*fontprobe.Cached); ok {
				_, err := cached.Refresh()
				handleErr(err)
			}
		}

		info := engine.Info()
		candidate, err := laf.Candidate(info, engine.Fonts)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("candidate")) {
			cmd.Println(candidate.OrEmpty())
			return
		}

		families, err := engine.Fonts.InstalledFamilies()
		handleErr(err)

		headerStyle := style.New().Bold(true).Foreground(color.Link).Render
		cmd.Println(headerStyle("Installed:"))
		for _, f := range families {
			cmd.Println(f)
		}
		cmd.Println()

		cmd.Println(headerStyle("Dialog font:"))
		cmd.Println(fontprobe.DialogFamily(engine.Fonts).OrElse(style.Faint("unknown")))
		cmd.Println()

		cmd.Println(headerStyle("Candidate:"))
		if family, ok := candidate.Get(); ok {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Font), family, style.Faint(info.OS.String()))
		} else {
			cmd.Println(style.Faint("none, fonts are not substituted on " + info.OS.String()))
		}
	},
}
