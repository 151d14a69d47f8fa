// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles renders text output. Colors use ANSI 256-color codes. Plain
// styles return text unchanged, which keeps piped output free of
// escape sequences.
type Styles struct {
	plain bool

	label   lipgloss.Style
	value   lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	faint   lipgloss.Style
}

// StylesFor returns styles for output written to w: colored when w is a
// terminal, plain otherwise.
func StylesFor(w io.Writer) Styles {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return PlainStyles()
	}
	return colorStyles(lipgloss.NewRenderer(file))
}

// PlainStyles returns styles that never emit escape sequences.
func PlainStyles() Styles {
	return Styles{plain: true}
}

func colorStyles(renderer *lipgloss.Renderer) Styles {
	return Styles{
		label:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		value:   renderer.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		valid:   renderer.NewStyle().Foreground(lipgloss.Color("114")),
		invalid: renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		faint:   renderer.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

// Label pads text to width and renders it as a field label. Padding
// happens before styling so escape sequences do not break alignment.
func (s Styles) Label(text string, width int) string {
	return s.render(s.label, fmt.Sprintf("%-*s", width, text))
}

// Value renders a field value.
func (s Styles) Value(text string) string { return s.render(s.value, text) }

// Valid renders a success marker or message.
func (s Styles) Valid(text string) string { return s.render(s.valid, text) }

// Invalid renders a failure marker or message.
func (s Styles) Invalid(text string) string { return s.render(s.invalid, text) }

// Faint renders secondary text.
func (s Styles) Faint(text string) string { return s.render(s.faint, text) }
