package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"flashscribe/internal/asr"
)

func writeResult(cmd *cobra.Command, opts *rootOptions, result *asr.Result) error {
	rendered, err := renderResult(opts, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		fmt.Fprintf(out, "Result saved to %s\n", opts.output)
	} else {
		fmt.Fprint(out, rendered)
		if !strings.HasSuffix(rendered, "\n") {
			fmt.Fprintln(out)
		}
	}

	// The isatty gate keeps the table out of piped or redirected output.
	if stdoutIsTerminal() {
		if summary := utteranceSummary(result); summary != "" {
			fmt.Fprintln(out, summary)
		}
	}
	return nil
}

func renderResult(opts *rootOptions, result *asr.Result) (string, error) {
	switch {
	case opts.textOnly:
		return result.Text(), nil
	case opts.srt:
		return result.SRT(), nil
	default:
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
		return string(encoded), nil
	}
}

func utteranceSummary(result *asr.Result) string {
	utterances := result.Recognition.Utterances
	if len(utterances) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(utterances))
	for i, utt := range utterances {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			formatSpan(utt.StartTime, utt.EndTime),
			truncate(strings.TrimSpace(utt.Text), 60),
		})
	}
	return renderTable(
		[]string{"#", "Span", "Text"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	)
}

func formatSpan(startMS, endMS int64) string {
	return fmt.Sprintf("%.1fs - %.1fs", float64(startMS)/1000, float64(endMS)/1000)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// stdoutIsTerminal is a variable so tests can exercise both sides of the gate.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
