package cmd

import (
	"encoding/json"
	"os"

	"github.com/darcula-go/darcula/inline"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of `resolve --json` output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the resolve --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
