// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// header writes a styled section title on its own line.
func header(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render(title))
}

// note writes a de-emphasised line.
func note(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}
