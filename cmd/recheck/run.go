package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/recheck/prop"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <demo-name>",
		Short: "Run one demo property and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := findDemo(args[0])
			if !ok {
				return fmt.Errorf("unknown demo %q; see 'recheck list'", args[0])
			}

			report := runCaught(d)

			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			if report.UsageErr != nil || !report.Success {
				return fmt.Errorf("demo %q did not pass", d.Name)
			}
			return nil
		},
	}
}

// runCaught calls prop.Run and folds a *prop.UsageError panic (raised
// from inside Generate during Shrinking-mode replay) into the Report.
func runCaught(d demo) (report prop.Report) {
	defer func() {
		if r := recover(); r != nil {
			if usageErr, ok := r.(*prop.UsageError); ok {
				report = prop.Report{UsageErr: usageErr}
				return
			}
			panic(r)
		}
	}()
	return prop.Run(configFromFlags(), d.Predicate)
}
