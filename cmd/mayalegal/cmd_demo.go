package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const demoText = `This contract establishes the terms and conditions for the provision
of legal services. The parties agree to the following terms: justice shall
be served fairly and equitably. Any violation of this agreement may result
in penalties as prescribed by law. Evidence of breach must be presented to
the appropriate court authority.`

// demoCmd runs the classifier on a built-in sample contract.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the classifier on a sample legal text",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTitle("mayalegal demo"))
		fmt.Fprintln(cmd.OutOrStdout(), "Analyzing sample legal text...")
		fmt.Fprintln(cmd.OutOrStdout())

		result, err := a.Analyze(demoText)
		if err != nil {
			return err
		}
		return emitResult(cmd, result)
	},
}
