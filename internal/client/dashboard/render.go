package dashboard

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultBarWidth is the length of the longest bar in a chart.
const DefaultBarWidth = 40

const (
	barRune   = "█"
	noDataMsg = "(no data)"
)

// FormatValue renders v for the given unit: counts with thousands
// separators, times in milliseconds with up to two decimals.
func FormatValue(v float64, u Unit) string {
	switch u {
	case UnitMillis:
		return humanize.FtoaWithDigits(v, 2) + " ms"
	default:
		return humanize.Comma(int64(math.Round(v)))
	}
}

// Render writes each chart as a horizontal bar chart. Bars are scaled so
// the largest value in a chart spans width cells.
func Render(w io.Writer, charts []Chart, width int) error {
	if width <= 0 {
		width = DefaultBarWidth
	}
	for i, c := range charts {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderChart(w, c, width); err != nil {
			return err
		}
	}
	return nil
}

func renderChart(w io.Writer, c Chart, width int) error {
	var b strings.Builder

	b.WriteString(c.Title + "\n")
	b.WriteString(strings.Repeat("-", len(c.Title)) + "\n")

	if c.Empty() {
		b.WriteString("  " + noDataMsg + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	maxVal := 0.0
	nameWidth := 0
	for _, d := range c.Datasets {
		nameWidth = max(nameWidth, len(d.Label))
		for _, v := range d.Values {
			maxVal = max(maxVal, v)
		}
	}

	for i, label := range c.Labels {
		b.WriteString("  " + label + "\n")
		for _, d := range c.Datasets {
			v := 0.0
			if i < len(d.Values) {
				v = d.Values[i]
			}
			n := barLen(v, maxVal, width)
			fmt.Fprintf(&b, "    %-*s | %s%s %s\n",
				nameWidth, d.Label,
				strings.Repeat(barRune, n), strings.Repeat(" ", width-n),
				FormatValue(v, c.Unit))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// barLen scales v to [0, width]. Positive values get at least one cell.
func barLen(v, maxVal float64, width int) int {
	if v <= 0 || maxVal <= 0 {
		return 0
	}
	n := int(math.Round(v / maxVal * float64(width)))
	if n < 1 {
		n = 1
	}
	return min(n, width)
}
