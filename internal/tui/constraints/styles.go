// ============================================================================
// meinCHIPWERK (mCW) - Lokale EDA-Werkzeuge
// ============================================================================
//
// Package:     constraints
// Description: Styles for the Constraint Browser TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-03-02
// License:     MIT
// ============================================================================

package constraints

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - Same as other TUI components for consistency
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBg      = lipgloss.Color("#0F172A") // Slate 900
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Row styles
var (
	RowTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	RowSourceStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Kind-specific badge styles
	KindClockStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	KindIOStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	KindExceptionStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	KindGroupStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	KindUncertaintyStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Bold(true)

	KindRawStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Bold(true)

	KindDiagnosticStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Panel/Box styles
var (
	RowPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusLoadedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Title panel style
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Icons
const (
	IconFile   = "  "
	IconError  = "  "
	IconFilter = "  "
)

// Logo
const Logo = "mCW Constraint Browser"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders a record kind badge with appropriate styling
func RenderKindBadge(kind RowKind) string {
	badge := "[" + string(kind) + "]"
	for len(badge) < 8 {
		badge += " "
	}
	switch kind {
	case KindClock:
		return KindClockStyle.Render(badge)
	case KindIODelay:
		return KindIOStyle.Render(badge)
	case KindException:
		return KindExceptionStyle.Render(badge)
	case KindGroup:
		return KindGroupStyle.Render(badge)
	case KindUncertainty:
		return KindUncertaintyStyle.Render(badge)
	case KindRaw:
		return KindRawStyle.Render(badge)
	case KindDiagnostic:
		return KindDiagnosticStyle.Render(badge)
	default:
		return RowTextStyle.Render(badge)
	}
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
