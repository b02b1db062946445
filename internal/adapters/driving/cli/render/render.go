// Package render formats run reports for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

// Theme is the colour palette for styled output.
type Theme struct {
	// Primary colours account names.
	Primary lipgloss.Color

	// Muted is for run statistics.
	Muted lipgloss.Color

	// Success colours balances at or above zero.
	Success lipgloss.Color

	// Warning colours negative balances.
	Warning lipgloss.Color

	// Error colours frozen accounts.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles holds the lipgloss styles for one output stream.
type Styles struct {
	Name     lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Invalid  lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles builds styles bound to r.
func NewStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Styles{
		Name:     r.NewStyle().Bold(true).Foreground(theme.Primary),
		Positive: r.NewStyle().Foreground(theme.Success),
		Negative: r.NewStyle().Foreground(theme.Warning),
		Invalid:  r.NewStyle().Bold(true).Foreground(theme.Error),
		Muted:    r.NewStyle().Foreground(theme.Muted),
	}
}

// Printer writes reports, styled or plain.
type Printer struct {
	w      io.Writer
	color  bool
	styles *Styles
}

// NewPrinter creates a printer for w. With color set, ANSI colours are
// emitted even when w is not a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, color: color, styles: NewStyles(r, nil)}
}

// Summary writes the account summary. Plain output is byte-identical to
// report.Summary.
func (p *Printer) Summary(report *domain.Report) error {
	if !p.color {
		_, err := io.WriteString(p.w, report.Summary)
		return err
	}
	var b strings.Builder
	for _, line := range report.Lines {
		b.WriteString(p.styles.Name.Render(line.Name))
		b.WriteString(": ")
		b.WriteString(p.balanceStyle(line.Balance).Render(line.Balance.String()))
		b.WriteString("\n")
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Stats writes a one-line run summary.
func (p *Printer) Stats(report *domain.Report) error {
	text := fmt.Sprintf("%d events, %d applied, %d declined in %s",
		report.Events, report.Applied, report.Declined, report.Duration)
	if p.color {
		text = p.styles.Muted.Render(text)
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func (p *Printer) balanceStyle(b domain.Balance) lipgloss.Style {
	if b.IsInvalid() {
		return p.styles.Invalid
	}
	if amount, ok := b.Amount(); ok && amount.IsNegative() {
		return p.styles.Negative
	}
	return p.styles.Positive
}
