// Package ux renders estimates in the terminal.
package ux

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
)

var (
	ColorAccent = lipgloss.Color("#2CD7C7")
	ColorMuted  = lipgloss.Color("#2C4A54")
	ColorError  = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Spinner lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Value:   lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Spinner: lipgloss.NewStyle().Foreground(ColorAccent),
}

// FormatEstimate prints an estimate with a fixed number of decimals.
func FormatEstimate(v float64) string {
	return fmt.Sprintf("%.*f", montecarlopi.DisplayPrecision, v)
}

// Describe is a short human description of a request.
func Describe(req montecarlopi.SampleRequest) string {
	if req.Sequential {
		return fmt.Sprintf("%d points, sequential", req.Points)
	}
	if req.Threads <= 0 {
		return fmt.Sprintf("%d points, default workers", req.Points)
	}
	return fmt.Sprintf("%d points, %d workers", req.Points, req.Threads)
}

// RenderResult is the styled one line summary shown after an estimate.
func RenderResult(req montecarlopi.SampleRequest, value float64, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s %s",
		Styles.Title.Render("π ≈"),
		Styles.Value.Render(FormatEstimate(value)),
		Styles.Muted.Render(fmt.Sprintf("(%s in %s)", Describe(req), elapsed.Round(time.Millisecond))),
	)
}
