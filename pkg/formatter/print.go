package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
)

var (
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	ruleStyle       = color.New(color.FgYellow)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	summaryStyle    = color.New(color.FgHiYellow, color.Bold)
)

// sortDiagnostics orders diagnostics by file name, then by position
func sortDiagnostics(diags []Diagnostic) []Diagnostic {
	sorted := append([]Diagnostic(nil), diags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// PrintDiagnostics writes diagnostics to w, either as colored text or as a JSON object keyed by file.
func PrintDiagnostics(w io.Writer, diags []Diagnostic, jsonOutput bool) error {
	if jsonOutput {
		return printJSON(w, diags)
	}
	printText(w, diags)
	return nil
}

func printText(w io.Writer, diags []Diagnostic) {
	fixed := 0
	for _, d := range sortDiagnostics(diags) {
		fileStyle.Fprint(w, d.File)
		fmt.Fprint(w, ":")
		lineStyle.Fprintf(w, "%d:%d", d.Line, d.Column)
		fmt.Fprint(w, ": ")
		messageStyle.Fprint(w, d.Message)
		fmt.Fprint(w, " ")
		ruleStyle.Fprintf(w, "(%s/%s)", d.Rule, d.Kind)
		if d.Fixed {
			fixed++
			suggestionStyle.Fprint(w, " fixed")
		}
		fmt.Fprintln(w)
	}

	if len(diags) == 0 {
		return
	}
	summaryStyle.Fprintf(w, "\n%d problems", len(diags))
	if fixed > 0 {
		suggestionStyle.Fprintf(w, " (%d fixed)", fixed)
	} else {
		fmt.Fprint(w, " (run with --in-place to fix)")
	}
	fmt.Fprintln(w)
}

func printJSON(w io.Writer, diags []Diagnostic) error {
	byFile := make(map[string][]Diagnostic)
	for _, d := range sortDiagnostics(diags) {
		byFile[d.File] = append(byFile[d.File], d)
	}

	data, err := json.MarshalIndent(byFile, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderJSON, err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
