package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pelmeni-line/linecalc/line"
)

// Valid --output values.
var validOutputFormats = map[string]bool{
	"text": true, "yaml": true,
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "linecalc",
	Short: "Equipment sizing for a dumpling production line",
	Long: "Compute how many dumpling machines, dough mixers and bowl cutters a two-shift " +
		"dumpling line needs, from daily output, shift duration, recipe shares and machine rates.",
}

// runOptions holds the flag values of one run command.
type runOptions struct {
	inputs    line.Inputs
	inputPath string
	output    string
	logLevel  string
	noPrompt  bool
}

// newRunCmd builds the run command. Each call gets its own flag set, so a
// quantity counts as given only if it was set on that invocation.
func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute machine counts for the three production lines",
		Long: "Compute machine counts for the dumpling, dough and filling lines. Quantities not " +
			"given as flags are taken from --input, then prompted for on standard input.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&opts.inputPath, "input", "", "Path to a YAML input file, as printed by the template command")
	cmd.Flags().StringVar(&opts.output, "output", "text", "Output format (text, yaml)")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Fail instead of prompting for missing quantities")

	for _, field := range inputFields {
		cmd.Flags().Float64Var(field.target(&opts.inputs), field.flag, 0, fmt.Sprintf("%s, %s", field.usage, field.unit))
	}
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logrus.SetLevel(level)

	if !validOutputFormats[o.output] {
		return fmt.Errorf("unknown output format %q; valid: text, yaml", o.output)
	}

	var file *InputFile
	if o.inputPath != "" {
		if file, err = loadInputFile(o.inputPath); err != nil {
			return err
		}
		logrus.Infof("Loaded input file %s", o.inputPath)
	}

	var p *prompter
	if !o.noPrompt {
		p = newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	if err := resolveInputs(cmd.Flags(), &o.inputs, file, p); err != nil {
		return err
	}
	logrus.Infof("Computing line plan with inputs %+v", o.inputs)

	plan, err := line.Compute(o.inputs)
	if err != nil {
		return err
	}

	if o.output == "yaml" {
		return plan.WriteYAML(cmd.OutOrStdout())
	}
	plan.Print(cmd.OutOrStdout())
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newTemplateCmd())
}
