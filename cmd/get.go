package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/darcula-go/darcula/color"
	"github.com/darcula-go/darcula/key"
	"github.com/darcula-go/darcula/style"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/util"
	"github.com/darcula-go/darcula/value"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var kindNames = []string{
	value.KindNull.String(),
	value.KindColor.String(),
	value.KindInteger.String(),
	value.KindBoolean.String(),
	value.KindInsets.String(),
	value.KindBorder.String(),
	value.KindFont.String(),
	value.KindIcon.String(),
	value.KindDimension.String(),
	value.KindString.String(),
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringP("as", "a", "", "Require the value to be of this kind")
	lo.Must0(getCmd.RegisterFlagCompletionFunc("as", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return kindNames, cobra.ShellCompDirectiveNoFileComp
	}))

	getCmd.SetOut(os.Stdout)
}

// getCmd prints a single resolved value.
var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one value of the resolved style table",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		engine, base := newEngine()
		return engine.Resolve(base).Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		engine, base := newEngine()
		resolved := engine.Resolve(base)

		v, err := typed(resolved, args[0], lo.Must(cmd.Flags().GetString("as")))
		handleErr(err)

		rendered := value.Format(v)
		if c, ok := v.Color(); ok && viper.GetBool(key.CliColored) && util.IsTerminal() {
			rendered = style.Swatch(c.Hex())
		}

		cmd.Printf("%s %s\n", rendered, style.Fg(color.Comment)("("+v.Kind().String()+")"))
	},
}

// typed looks key up through the accessor of the requested kind, so that
// mismatches surface the same errors rendering code would see.
func typed(t *table.Table, k, kind string) (value.Value, error) {
	var err error

	switch kind {
	case "":
		if v, ok := t.Get(k); ok {
			return v, nil
		}
		_, err = t.IsNull(k)
	case value.KindNull.String():
		var null bool
		if null, err = t.IsNull(k); err == nil && !null {
			v, _ := t.Get(k)
			err = fmt.Errorf("%w: %s holds %s, not null", table.ErrTypeMismatch, k, v.Kind())
		}
	case value.KindColor.String():
		_, err = t.Color(k)
	case value.KindInteger.String():
		_, err = t.Int(k)
	case value.KindBoolean.String():
		_, err = t.Bool(k)
	case value.KindInsets.String():
		_, err = t.Insets(k)
	case value.KindBorder.String():
		_, err = t.Border(k)
	case value.KindFont.String():
		_, err = t.Font(k)
	case value.KindIcon.String():
		_, err = t.Icon(k)
	case value.KindDimension.String():
		_, err = t.Dimension(k)
	case value.KindString.String():
		_, err = t.Str(k)
	default:
		return value.Value{}, errors.New("unknown kind " + kind)
	}

	if err != nil {
		return value.Value{}, err
	}

	v, _ := t.Get(k)
	return v, nil
}
