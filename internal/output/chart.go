package output

import (
	"fmt"
	"strings"
)

// Bar is one labeled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders a horizontal bar chart. Bars are scaled against the
// largest value; width is the maximum bar width in characters. The unit
// suffix (e.g. "%") is appended to each printed value.
func BarChart(bars []Bar, width int, unit string) string {
	if len(bars) == 0 {
		return StyleMuted.Render(" (no data)") + "\n"
	}
	if width <= 0 {
		width = 30
	}

	maxLabel := 0
	maxValue := 0.0
	for _, b := range bars {
		if n := len([]rune(b.Label)); n > maxLabel {
			maxLabel = n
		}
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}

	var sb strings.Builder
	for _, b := range bars {
		filled := 0
		if maxValue > 0 {
			filled = int(b.Value / maxValue * float64(width))
		}
		if filled > width {
			filled = width
		}
		if filled < 0 {
			filled = 0
		}

		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		sb.WriteString(fmt.Sprintf(" %s  %s %s\n",
			padRunes(b.Label, maxLabel),
			StyleHeader.Render(bar),
			StyleMuted.Render(trimValue(b.Value)+unit),
		))
	}
	return sb.String()
}

// RateBar renders a visual bar for a 0-100 percentage, colored by value.
// Example: "████████░░ 80.0%"
func RateBar(rate float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((rate / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case rate >= 30:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case rate >= 10:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.1f%%", rate)))
}

// trimValue prints whole numbers without decimals and everything else with
// one decimal place.
func trimValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// padRunes right-pads a string to the given rune width.
func padRunes(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
