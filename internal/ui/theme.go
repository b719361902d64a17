package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + border.
// An empty color means "no color".
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Color
	Bold                                          bool
	SymOK, SymFail                                string
	Border                                        lipgloss.Border
}

var themes = map[string]Theme{
	"classic": {
		Name:    "classic",
		Muted:   "8",
		Accent:  "12",
		Success: "42",
		Error:   "9",
		Pending: "214",
		Bold:    true,
		SymOK:   "✔",
		SymFail: "✖",
		Border:  lipgloss.RoundedBorder(),
	},
	"neon": {
		Name:    "neon",
		Title:   "13",
		Muted:   "8",
		Accent:  "14",
		Success: "10",
		Error:   "9",
		Pending: "11",
		Bold:    true,
		SymOK:   "✔",
		SymFail: "✖",
		Border:  lipgloss.ThickBorder(),
	},
	"mono": {
		Name:    "mono",
		SymOK:   "✔",
		SymFail: "✖",
		Border:  lipgloss.NormalBorder(),
	},
}

// ThemeByName looks up a theme; unknown names get classic.
func ThemeByName(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["classic"]
}

// Plain strips every color from t, keeping symbols.
func (t Theme) Plain() Theme {
	m := themes["mono"]
	m.Name = t.Name
	m.SymOK, m.SymFail = t.SymOK, t.SymFail
	return m
}

// Styles are a Theme bound to a renderer.
type Styles struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Frame                         lipgloss.Style
}

// NewStyles builds styles for r. Color output is decided by r's color profile.
func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		s := r.NewStyle()
		if c != "" {
			s = s.Foreground(c)
		}
		return s
	}
	s := Styles{
		Title:   fg(t.Title).Bold(t.Bold),
		Muted:   fg(t.Muted),
		Accent:  fg(t.Accent).Bold(t.Bold),
		Success: fg(t.Success),
		Error:   fg(t.Error).Bold(t.Bold),
		Pending: fg(t.Pending),
		Done:    fg(t.Muted),
		Frame:   r.NewStyle().Border(t.Border).Padding(0, 1),
	}
	s.Selected = r.NewStyle().Bold(t.Bold)
	if t.Muted != "" {
		s.Done = s.Done.Strikethrough(true)
		s.Frame = s.Frame.BorderForeground(t.Muted)
		s.Selected = s.Selected.Reverse(true)
	}
	return s
}
