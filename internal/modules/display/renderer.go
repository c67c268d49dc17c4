// Package display renders analysis results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"
	"github.com/dustin/go-humanize"

	"github.com/aristath/sacra/internal/modules/calendar"
	"github.com/aristath/sacra/internal/modules/sacra"
	"github.com/aristath/sacra/internal/modules/scoring"
)

const (
	lineWidth  = 80
	nameWidth  = 20
	bannerFont = "small"
)

// Renderer writes reports to Out and warnings to Err.
type Renderer struct {
	out   io.Writer
	err   io.Writer
	theme Theme
	lg    *lipgloss.Renderer
}

// NewRenderer creates a renderer. Color support is detected on out.
func NewRenderer(out, err io.Writer, theme Theme) *Renderer {
	return &Renderer{
		out:   out,
		err:   err,
		theme: theme,
		lg:    lipgloss.NewRenderer(out),
	}
}

func (r *Renderer) style(color lipgloss.Color) lipgloss.Style {
	return r.lg.NewStyle().Foreground(color)
}

func (r *Renderer) heavyRule() string {
	return r.style(r.theme.Border).Render(strings.Repeat("═", lineWidth))
}

func (r *Renderer) lightRule() string {
	return r.style(r.theme.Border).Render(strings.Repeat("─", lineWidth))
}

// Banner returns the ASCII-art title.
func Banner() string {
	return figure.NewFigure("SACRA", bannerFont, true).String()
}

// Single renders the report for one moment. Compact mode omits the π,
// Fibonacci, calendar, energy and reference-book sections.
func (r *Renderer) Single(res sacra.Result, compact bool) {
	var b strings.Builder
	h := res.Hexagram

	if !compact {
		b.WriteString(r.style(r.theme.Primary).Render(Banner()))
	}
	fmt.Fprintf(&b, "\n%s\n", r.heavyRule())
	fmt.Fprintf(&b, "%s\n", r.lg.NewStyle().Bold(true).Render("SACRA - "+res.Moment.Format("02.01.2006 15:04:05")))
	fmt.Fprintf(&b, "%s\n", r.heavyRule())
	fmt.Fprintf(&b, "🔐 %s\n", res.Signature)

	fmt.Fprintf(&b, "\n✨ SACRA: %s\n",
		r.style(r.theme.TierColor(res.Tier)).Render(fmt.Sprintf("%s (%.1f/100)", res.Tier, res.Score)))
	fmt.Fprintf(&b, "🔯 I-GING: %s\n",
		r.style(r.theme.JudgmentColor(res.HexagramQuality.Tier)).Render(
			fmt.Sprintf("%s (%.1f/100)", res.HexagramQuality.Tier, res.HexagramQuality.Score)))

	fmt.Fprintf(&b, "\n🔄 HEXAGRAMM %d: %s\n", h.Number(), h.Name)
	fmt.Fprintf(&b, "   %s / %s\n", h.Upper, h.Lower)
	fmt.Fprintf(&b, "   Balance: %s\n", BalanceBar(h.Balance()))
	fmt.Fprintf(&b, "   %s\n", h.Judgment)

	if !compact {
		fmt.Fprintf(&b, "\n🌀 PI: %d | Fib: %s | Pos: %d/260\n", res.PiDigit, humanize.BigComma(res.Fibonacci), res.Position)
		fmt.Fprintf(&b, "📅 MAYA: %s\n", MayaLine(res.Calendar))
		fmt.Fprintf(&b, "⚡ ENERGIE: %.1f/100\n", res.Energy)

		if e := res.Enrichment; e != nil {
			r.writeEnrichment(&b, e)
		}
	}

	fmt.Fprintf(&b, "%s\n\n", r.heavyRule())
	io.WriteString(r.out, b.String())
}

func (r *Renderer) writeEnrichment(b *strings.Builder, e *sacra.Enrichment) {
	muted := r.style(r.theme.Muted)

	if e.HasEntry {
		if e.Entry.Judgment != "" {
			fmt.Fprintf(b, "\n📜 URTEIL: %s\n", e.Entry.Judgment)
		}
		if e.Entry.Image != "" {
			fmt.Fprintf(b, "🖼  BILD: %s\n", e.Entry.Image)
		}
		for i, line := range e.Entry.Lines {
			fmt.Fprintf(b, "   %s %s\n", muted.Render(fmt.Sprintf("Linie %d:", i+1)), line)
		}
	}
	fmt.Fprintf(b, "🔁 GEGENTEIL: %d %s | UMKEHRUNG: %d %s\n",
		e.Opposite.Number(), e.Opposite.Name, e.Reversed.Number(), e.Reversed.Name)
}

// Week renders a seven-day table followed by score statistics.
func (r *Renderer) Week(results []sacra.Result, summary scoring.Summary) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nWOCHEN-ÜBERSICHT\n%s\n\n", r.heavyRule(), r.heavyRule())
	fmt.Fprintf(&b, "%-12s|%-12s|%-10s|%-10s|%s\n", "Tag", "Datum", "SACRA", "I-Ging", "Hex")
	fmt.Fprintf(&b, "%s\n", r.lightRule())

	for i, res := range results {
		marker := " "
		if i == 0 {
			marker = "→"
		}
		fmt.Fprintf(&b, "%s %-9s|%-12s|%3.0f/100   |%3.0f/100   |%s\n",
			marker,
			res.Moment.Format("Mon"),
			res.Moment.Format("02.01."),
			res.Score,
			res.HexagramQuality.Score,
			Truncate(res.Hexagram.Name, nameWidth),
		)
	}

	fmt.Fprintf(&b, "%s\n", r.lightRule())
	if summary.Count > 0 {
		fmt.Fprintf(&b, "%s\n", r.style(r.theme.Muted).Render(fmt.Sprintf(
			"Ø %.1f | σ %.1f | min %.1f | max %.1f",
			summary.Mean, summary.StdDev, summary.Min, summary.Max)))
	}
	b.WriteString("\n")
	io.WriteString(r.out, b.String())
}

// Optimal renders the ranked optimal moments of a scan over days.
func (r *Renderer) Optimal(results []sacra.Result, days int) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nOPTIMALE MOMENTE (%d Tage)\n%s\n\n", r.heavyRule(), days, r.heavyRule())

	for i, res := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, res.Moment.Format("02.01.2006 Monday"))
		fmt.Fprintf(&b, "   SACRA: %.0f | I-Ging: %.0f | %s\n\n", res.Score, res.HexagramQuality.Score, res.Hexagram.Name)
	}
	if len(results) == 0 {
		b.WriteString("Keine optimalen Momente gefunden.\n\n")
	}

	fmt.Fprintf(&b, "%s\n\n", r.lightRule())
	io.WriteString(r.out, b.String())
}

// Warning writes a highlighted warning line to the error stream.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintf(r.err, "%s\n", r.style(r.theme.Warning).Render("⚠️  "+msg))
}

// BalanceBar draws filled dots for balance and hollow dots for imbalance.
func BalanceBar(balance int) string {
	if balance < 0 {
		balance = 0
	}
	if balance > 6 {
		balance = 6
	}
	return strings.Repeat("●", 6-balance) + strings.Repeat("○", balance)
}

// MayaLine formats the calendar position, e.g. "2 Lamat | 16 Kankin | Morgenstern".
func MayaLine(p calendar.Position) string {
	return fmt.Sprintf("%s | %s | %s", p.TzolkinString(), p.HaabString(), p.Venus)
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
