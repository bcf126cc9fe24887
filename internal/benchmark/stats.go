package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const statsHeading = "Duration Statistics:"

// Summarize computes the truncated integer average, minimum and maximum of
// ds. It reports false when ds is empty.
func Summarize(ds []Duration) (Stats, bool) {
	if len(ds) == 0 {
		return Stats{}, false
	}

	var sum int64
	s := Stats{Min: ds[0], Max: ds[0]}
	for _, d := range ds {
		sum += d.Microseconds()
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	s.Average = Duration(sum / int64(len(ds)))
	return s, true
}

// Printer writes statistics blocks to a writer. The heading is styled only
// when the writer is a colour-capable terminal.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	styled  bool
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
		styled:  r.ColorProfile() != termenv.Ascii,
	}
}

// PrintStats writes the statistics block for ds. Empty input writes nothing.
func (p *Printer) PrintStats(ds []Duration) error {
	s, ok := Summarize(ds)
	if !ok {
		return nil
	}

	heading := statsHeading
	if p.styled {
		heading = p.heading.Render(statsHeading)
	}

	var b strings.Builder
	fmt.Fprintln(&b, heading)
	fmt.Fprintf(&b, "  Average: %s\n", FormatDuration(s.Average))
	fmt.Fprintf(&b, "  Min: %s\n", FormatDuration(s.Min))
	fmt.Fprintf(&b, "  Max: %s\n", FormatDuration(s.Max))

	_, err := io.WriteString(p.w, b.String())
	return err
}

// PrintStats writes the statistics block for ds to w.
func PrintStats(w io.Writer, ds []Duration) error {
	return NewPrinter(w).PrintStats(ds)
}
