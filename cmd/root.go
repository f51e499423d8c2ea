// Package cmd implements the command-line interface for darcula.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/icon"
	"github.com/darcula-go/darcula/key"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Theme to resolve")
	lo.Must0(viper.BindPFlag(key.ThemeName, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().StringP("platform", "p", "", "Platform overlay to apply instead of the probed one (mac, windows, linux)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constant.SuffixMac, constant.SuffixWindows, constant.SuffixLinux}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ThemePlatform, rootCmd.PersistentFlags().Lookup("platform")))
}

// rootCmd defines the entry point for the darcula application.
var rootCmd = &cobra.Command{
	Use:   constant.Darcula,
	Short: "Resolve layered look-and-feel style tables",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Keyword).Render("    - Resolve layered look-and-feel style tables"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
