package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluginradar/paramswap/pkg/semantic"
	"github.com/pluginradar/paramswap/pkg/translate"
)

// printReport renders the per-parameter translation table and the
// carried-over summary.
func printReport(w io.Writer, sourceName, targetName string, report *translate.Report) {
	fmt.Fprintf(w, "\n%s %s %s\n\n",
		valueStyle.Render(sourceName), keyStyle.Render("→"), valueStyle.Render(targetName))

	headers := []string{"SEMANTIC", "PARAMETER", "SOURCE", "TARGET", "OUTCOME"}
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		sem := e.Semantic
		if sem == "" {
			sem = "(vendor-only)"
		}
		src, dst := "-", "-"
		if e.Source != nil {
			src = e.Source.String()
		}
		if e.Target != nil {
			dst = e.Target.String()
		}
		rows = append(rows, []string{sem, e.Param, src, dst, string(e.Outcome)})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(sb.String(), " ")))

	for _, row := range rows {
		sb.Reset()
		for i, cell := range row[:len(row)-1] {
			sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
		}
		outcome := row[len(row)-1]
		fmt.Fprintf(w, "%s%s\n", sb.String(), outcomeStyle(outcome).Render(outcome))
	}

	carried, total := report.CarriedOver()
	fmt.Fprintf(w, "\n%s %s\n",
		valueStyle.Render(fmt.Sprintf("%d of %d settings carried over", carried, total)),
		keyStyle.Render(fmt.Sprintf("(confidence %d%%)", report.ConfidencePercent())))
}

func outcomeStyle(outcome string) lipgloss.Style {
	switch translate.Outcome(outcome) {
	case translate.OutcomeTranslated:
		return translatedStyle
	case translate.OutcomeQuantized:
		return quantizedStyle
	case translate.OutcomeDefaulted:
		return defaultedStyle
	}
	return droppedStyle
}

// printSemantics renders the registry as an aligned table.
func printSemantics(w io.Writer, roles []semantic.Semantic) {
	headers := []string{"ID", "CATEGORY", "UNIT", "RANGE", "CURVE", "PRIO"}
	rows := make([][]string, 0, len(roles))
	for _, s := range roles {
		rng := "-"
		if s.TypicalMin != 0 || s.TypicalMax != 0 {
			rng = fmt.Sprintf("%g..%g", s.TypicalMin, s.TypicalMax)
		}
		rows = append(rows, []string{
			s.ID, string(s.Category), string(s.Unit), rng, string(s.TypicalCurve),
			fmt.Sprintf("%d", s.Priority),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(sb.String(), " ")))

	for _, row := range rows {
		sb.Reset()
		for i, cell := range row {
			sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}
