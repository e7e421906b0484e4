package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pelmeni-line/linecalc/line"
)

// newTemplateCmd builds the template command.
func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a YAML input file filled with the reference example",
		Long:  "Print a YAML input file for `linecalc run --input`, pre-filled with the reference example values. Output is written to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(newInputFile(line.ReferenceInputs()))
			if err != nil {
				return fmt.Errorf("YAML marshal failed: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
