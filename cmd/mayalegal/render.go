package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mayalegal/internal/analyzer"
	"mayalegal/internal/batch"
	"mayalegal/internal/encoding"
	"mayalegal/internal/lexicon"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a8699"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

func renderTitle(s string) string {
	return titleStyle.Render(s)
}

// renderTable lays out a two-column aspect/value table.
func renderTable(title string, rows [][2]string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}
	width += 2

	for _, row := range rows {
		sb.WriteString(headerStyle.Width(width).Render(row[0]))
		sb.WriteString(cellStyle.Render(row[1]))
		sb.WriteString("\n")
	}
	return sb.String()
}

// emitResult prints a single analysis result and optionally writes it to
// the --output path.
func emitResult(cmd *cobra.Command, res *analyzer.Result) error {
	out := cmd.OutOrStdout()

	if jsonOut {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		rows := [][2]string{
			{"Category", string(res.Fusion.Best)},
			{"Confidence", fmt.Sprintf("%.2f%%", res.Fusion.Confidence*100)},
			{"Universal Symbols", strings.Join(res.UniversalSymbols, " ")},
			{"Domain Symbols", strings.Join(res.DomainSymbols, " ")},
		}
		fmt.Fprintln(out, renderTable("Analysis Result", rows))
		fmt.Fprintln(out, renderDistribution(res))
	}

	if outPath != "" {
		if err := saveResult(res, outPath, outputFm); err != nil {
			return err
		}
		fmt.Fprintln(out, mutedStyle.Render("Results saved to "+outPath))
	}
	return nil
}

// renderDistribution shows the nonzero normalized scores, best first.
func renderDistribution(res *analyzer.Result) string {
	cats := res.Fusion.Ranked()
	if len(cats) == 0 {
		return mutedStyle.Render("No lexicon keywords matched; document is unclassified.")
	}

	var rows [][2]string
	for _, cat := range cats {
		rows = append(rows, [2]string{string(cat), fmt.Sprintf("%.4f", res.Fusion.Distribution[cat])})
	}
	return renderTable("Category Distribution", rows)
}

// emitBatchSummary prints a batch run summary.
func emitBatchSummary(cmd *cobra.Command, summary *batch.Summary) error {
	out := cmd.OutOrStdout()

	if jsonOut {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, doc := range summary.Results {
		if doc.Err != "" {
			fmt.Fprintf(out, "%s %s: %s\n", errorStyle.Render("FAIL"), doc.Path, doc.Err)
			continue
		}
		marker := "ok  "
		if doc.Cached {
			marker = "hit "
		}
		fmt.Fprintf(out, "%s %s: %s (%.2f%%) %s\n",
			mutedStyle.Render(marker), doc.Path,
			doc.Result.Fusion.Best, doc.Result.Fusion.Confidence*100,
			strings.Join(doc.Result.UniversalSymbols, " "))
	}

	rows := [][2]string{
		{"Run ID", summary.RunID},
		{"Total Documents", fmt.Sprintf("%d", summary.Total)},
		{"Succeeded", fmt.Sprintf("%d", summary.Succeeded)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable("Batch Summary", rows))
	return nil
}

// renderLexicon prints the keyword table grouped by category, plus both
// alphabets.
func renderLexicon(lex *lexicon.Lexicon) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Lexicon " + lex.Version()))
	sb.WriteString("\n\n")

	universal := encoding.Universal()
	domain := encoding.Domain()

	for _, cat := range lexicon.Categories {
		entries := lex.EntriesFor(cat)
		phrases := make([]string, len(entries))
		for i, e := range entries {
			phrases[i] = fmt.Sprintf("%s (%.1f)", e.Phrase, e.Weight)
		}
		sort.Strings(phrases)
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s %s %s",
			universal.Token(cat), domain.Token(cat), cat)))
		sb.WriteString("\n")
		sb.WriteString(cellStyle.Render(strings.Join(phrases, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// saveResult writes a result to disk as JSON or YAML.
func saveResult(res *analyzer.Result, path, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(res)
	case "json", "":
		data, err = json.MarshalIndent(res, "", "  ")
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
