package cmd

import (
	"os"
	"strings"

	"github.com/darcula-go/darcula/config"
	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envName maps a config key to the variable viper binds it to.
func envName(k string) string {
	if k == where.EnvConfigPath {
		return k
	}
	return strings.ToUpper(constant.Darcula + "_" + config.EnvKeyReplacer.Replace(k))
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables read by darcula",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(append(slices.Clone(config.EnvExposed), where.EnvConfigPath), func(k string, _ int) string {
			return envName(k)
		})
		slices.Sort(names)

		for _, env := range names {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(style.KeyColor).Render(env), "=")

			if present {
				cmd.Println(style.Fg(style.SuccessColor)(value))
			} else {
				cmd.Println(style.Fg(style.FaintColor)("unset"))
			}
		}
	},
}
