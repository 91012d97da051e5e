package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mayalegal/internal/encoding"
	"mayalegal/internal/lexicon"
)

// lexiconCmd prints the keyword table and symbol alphabets for tooling
// that wants to inspect category coverage.
var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the keyword table and symbol alphabets",
	RunE: func(cmd *cobra.Command, args []string) error {
		lex := lexicon.Default()

		if jsonOut {
			payload := struct {
				Version  string                                 `json:"version"`
				Entries  []lexicon.Entry                        `json:"entries"`
				Coverage map[lexicon.Category]int               `json:"coverage"`
				Alphabet map[string]map[lexicon.Category]string `json:"alphabets"`
			}{
				Version:  lex.Version(),
				Entries:  lex.Entries(),
				Coverage: lex.Coverage(),
				Alphabet: map[string]map[lexicon.Category]string{
					"universal": encoding.Universal().Tokens(),
					"domain":    encoding.Domain().Tokens(),
				},
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderLexicon(lex))
		return nil
	},
}
