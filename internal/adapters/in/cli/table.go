package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/beacon/internal/app"
)

var (
	colorOK     = lipgloss.Color("#00ff88")
	colorWarn   = lipgloss.Color("#ffd700")
	colorFail   = lipgloss.Color("#ff5555")
	colorHeader = lipgloss.Color("#00d4ff")
	colorBorder = lipgloss.Color("#404040")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	resultOK   = "OK"
	resultSlow = "SLOW"
	resultFail = "FAIL"
)

func resultLabel(r app.CheckResult) string {
	switch {
	case !r.Outcome.Success:
		return resultFail
	case r.Slow():
		return resultSlow
	default:
		return resultOK
	}
}

func resultColor(label string) lipgloss.Color {
	switch label {
	case resultFail:
		return colorFail
	case resultSlow:
		return colorWarn
	default:
		return colorOK
	}
}

func checkRow(r app.CheckResult) []string {
	status := "-"
	if r.Outcome.StatusCode != 0 {
		status = fmt.Sprintf("%d", r.Outcome.StatusCode)
	}

	latency := "-"
	if r.Outcome.Success {
		latency = fmt.Sprintf("%.1f ms", r.Outcome.LatencyMs)
	}

	return []string{
		r.Service.URL,
		resultLabel(r),
		status,
		latency,
		fmt.Sprintf("%.0f ms", r.Service.TimeoutThresholdMs),
		r.Outcome.Reason(),
	}
}

// renderCheckTable renders one row per result with the result column colored.
func renderCheckTable(results []app.CheckResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, checkRow(r))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("URL", "RESULT", "HTTP", "TTFB", "THRESHOLD", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(rows) {
				return cellStyle.Foreground(resultColor(rows[row][1]))
			}
			return cellStyle
		}).
		String()
}
