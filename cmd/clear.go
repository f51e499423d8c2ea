package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/darcula-go/darcula/icon"
	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/util"
	"github.com/darcula-go/darcula/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"font cache", "fonts", mo.Some("f"), where.FontCache},
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("Clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.SetOut(os.Stdout)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached font probes and logs",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			if err := util.Delete(target.location()); err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}

			cmd.Printf("%s %s cleared\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), util.Capitalize(target.name))
		}
	},
}
