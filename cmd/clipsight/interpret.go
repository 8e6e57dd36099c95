package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipsight/internal/interpret"
)

func newInterpretCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "interpret [text]",
		Short: "Run all interpreters over text (or stdin) and print the readings",
		Long: `Runs the interpreter registry over the given text, or over stdin when no
argument is supplied, and prints one section per interpreter. Interpreters
that do not apply are listed as "not applicable".`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runInterpret(v, args)
		},
	}

	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runInterpret(v *viper.Viper, args []string) error {
	resolveLogging(v.GetString("log-format"), v.GetString("log-level"))

	var content string
	if len(args) == 1 {
		content = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	printOutcomes(os.Stdout, interpret.NewRegistry().RunAll(content))
	return nil
}

func printOutcomes(w io.Writer, outcomes []interpret.Outcome) {
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if o.Result == nil {
			fmt.Fprintf(w, "%s: not applicable\n", o.Name)
			continue
		}
		fmt.Fprintf(w, "%s\n", o.Name)

		tw := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
		for _, it := range o.Result.Items {
			// Multi-line values keep their own lines, indented under the label.
			lines := strings.Split(it.Value, "\n")
			fmt.Fprintf(tw, "  %s:\t%s\n", it.Label, lines[0])
			for _, l := range lines[1:] {
				fmt.Fprintf(tw, "  \t%s\n", l)
			}
		}
		_ = tw.Flush()
	}
}
