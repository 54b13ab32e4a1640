// Package ui provides terminal styling for scaffolder output.
// Colors adapt to light and dark terminals; lipgloss drops styling when the
// output is not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	// Tailwind sky-500 / sky-400.
	ColorAccent = lipgloss.AdaptiveColor{Light: "#0ea5e9", Dark: "#38bdf8"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// IconPass marks a successful step.
const IconPass = "✓"

// Separator is the rule drawn above and below banners.
const Separator = "==================================="

// RenderPass renders text with pass (green) styling
func RenderPass(s string) string { return PassStyle.Render(s) }

// RenderWarn renders text with warning (yellow) styling
func RenderWarn(s string) string { return WarnStyle.Render(s) }

// RenderFail renders text with fail (red) styling
func RenderFail(s string) string { return FailStyle.Render(s) }

// RenderAccent renders text with accent (blue) styling
func RenderAccent(s string) string { return AccentStyle.Render(s) }

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string { return MutedStyle.Render(s) }

// Banner writes a title framed by separator lines.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w, RenderMuted(Separator))
	fmt.Fprintln(w, TitleStyle.Render(title))
	fmt.Fprintln(w, RenderMuted(Separator))
	fmt.Fprintln(w)
}

// Error writes the single summary line for a failed run.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", RenderFail("Error:"), err)
}
