// ============================================================================
// meinCHIPWERK (mCW) - Lokale EDA-Werkzeuge
// ============================================================================
//
// Package:     constraints
// Description: Main Bubbletea model for the mCW Constraint Browser
// Author:      Mike Stoffels with Claude
// Created:     2026-03-02
// License:     MIT
// ============================================================================

package constraints

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mcwlog "github.com/msto63/mCW/foundation/core/log"
	"github.com/msto63/mCW/foundation/sdc"
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// Version is set during build
var Version = "0.1.0"

// KindFilter tracks which record kinds are visible
type KindFilter struct {
	Clocks        bool
	IODelays      bool
	Exceptions    bool
	Groups        bool
	Uncertainties bool
}

func allKinds() KindFilter {
	return KindFilter{
		Clocks:        true,
		IODelays:      true,
		Exceptions:    true,
		Groups:        true,
		Uncertainties: true,
	}
}

// Model is the main Bubbletea model for the Constraint Browser
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
	loadedAt time.Time

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Constraint state
	set          *parser.ConstraintSet
	allRows      []Row
	filteredRows []Row
	kindFilter   KindFilter

	// Configuration
	path   string
	strict bool
}

// Config holds Constraint Browser configuration
type Config struct {
	Path   string
	Strict bool
}

// New creates a new Constraint Browser model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner:    sp,
		allRows:    []Row{},
		kindFilter: allKinds(),
		loading:    true,
		path:       cfg.Path,
		strict:     cfg.Strict,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadConstraints,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case constraintsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.set = msg.set
			m.allRows = msg.rows
			m.loadedAt = time.Now()
			m.applyFilters()
			m.updateViewportContent()
			m.viewport.GotoTop()
		}

	case reloadMsg:
		m.loading = true
		cmds = append(cmds, m.loadConstraints, m.spinner.Tick)
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Record kind filters - number keys
		case "1":
			m.kindFilter.Clocks = !m.kindFilter.Clocks
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "2":
			m.kindFilter.IODelays = !m.kindFilter.IODelays
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "3":
			m.kindFilter.Exceptions = !m.kindFilter.Exceptions
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "4":
			m.kindFilter.Groups = !m.kindFilter.Groups
			m.applyFilters()
			m.updateViewportContent()
			return m, nil
		case "5":
			m.kindFilter.Uncertainties = !m.kindFilter.Uncertainties
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Show all kinds
		case "0":
			m.kindFilter = allKinds()
			m.applyFilters()
			m.updateViewportContent()
			return m, nil

		// Reload the file
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadConstraints, m.spinner.Tick)

		// Go to top
		case "g":
			m.viewport.GotoTop()
			return m, nil

		// Go to bottom
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Constraint Browser..."
	}

	var b strings.Builder

	// Header with logo
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Filter bar
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	// Constraint viewport
	b.WriteString(m.renderRowArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and file status
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	var status string
	if m.err != nil {
		status = StatusErrorStyle.Render(IconError + "Fehler beim Laden")
	} else {
		status = StatusLoadedStyle.Render(IconFile + m.path)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		status,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the record kind filter bar
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus("CLOCKS", m.kindFilter.Clocks)),
		fmt.Sprintf("2:%s", RenderFilterStatus("IO", m.kindFilter.IODelays)),
		fmt.Sprintf("3:%s", RenderFilterStatus("EXCEPT", m.kindFilter.Exceptions)),
		fmt.Sprintf("4:%s", RenderFilterStatus("GROUPS", m.kindFilter.Groups)),
		fmt.Sprintf("5:%s", RenderFilterStatus("UNCERT", m.kindFilter.Uncertainties)),
	}

	visibleCount := len(m.filteredRows)
	totalCount := len(m.allRows)

	filterStr := IconFilter + strings.Join(filters, "  ")
	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d Einträge]", visibleCount, totalCount))

	content := filterStr + "  " + countStr

	return FilterBarStyle.Width(m.width - 2).Render(content)
}

// renderRowArea renders the main constraint viewport
func (m Model) renderRowArea() string {
	style := RowPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	// Left: record counts
	var leftPart string
	if m.set != nil {
		leftPart = HelpDescStyle.Render(fmt.Sprintf("Takte: %d  IO-Delays: %d  Ausnahmen: %d  Diagnosen: %d",
			len(m.set.Clocks), len(m.set.IODelays), len(m.set.Exceptions), len(m.set.Diagnostics)))
	} else {
		leftPart = HelpDescStyle.Render("Keine Daten")
	}

	// Center: Version
	centerPart := HelpDescStyle.Render("v" + Version)

	// Right: load state
	var rightPart string
	if m.loading {
		rightPart = m.spinner.View() + " Lade..."
	} else if m.err != nil {
		rightPart = StatusErrorStyle.Render(m.err.Error())
	} else {
		rightPart = StatusLoadedStyle.Render("Geladen " + m.loadedAt.Format("15:04:05"))
	}

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-5", "Filter"),
		RenderKeyHint("0", "Alle"),
		RenderKeyHint("r", "Neu laden"),
		RenderKeyHint("g/G", "Anfang/Ende"),
		RenderKeyHint("q", "Beenden"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with filtered rows
func (m *Model) updateViewportContent() {
	if len(m.filteredRows) == 0 {
		m.viewport.SetContent(HelpDescStyle.Render("Keine Einträge für die aktuellen Filter."))
		return
	}

	var content strings.Builder
	for _, row := range m.filteredRows {
		line := fmt.Sprintf("%s %s", RenderKindBadge(row.Kind), RowTextStyle.Render(row.Text))
		content.WriteString(line)
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// applyFilters filters rows based on the current kind filter. Rows
// without a filter mapping (RAW, DIAG) stay visible.
func (m *Model) applyFilters() {
	m.filteredRows = make([]Row, 0)

	for _, row := range m.allRows {
		switch row.Kind {
		case KindClock:
			if !m.kindFilter.Clocks {
				continue
			}
		case KindIODelay:
			if !m.kindFilter.IODelays {
				continue
			}
		case KindException:
			if !m.kindFilter.Exceptions {
				continue
			}
		case KindGroup:
			if !m.kindFilter.Groups {
				continue
			}
		case KindUncertainty:
			if !m.kindFilter.Uncertainties {
				continue
			}
		}

		m.filteredRows = append(m.filteredRows, row)
	}
}

// loadConstraints parses the SDC file off the main Update loop
func (m Model) loadConstraints() tea.Msg {
	logger := mcwlog.New().WithOutput(io.Discard)
	set, err := sdc.ParseFile(m.path, sdc.Options{Strict: m.strict, Logger: logger})
	if err != nil {
		return constraintsLoadedMsg{err: err}
	}
	return constraintsLoadedMsg{set: set, rows: buildRows(set)}
}

// buildRows flattens a constraint set into display rows, one per record.
func buildRows(set *parser.ConstraintSet) []Row {
	rows := make([]Row, 0,
		len(set.Clocks)+len(set.IODelays)+len(set.Exceptions)+
			len(set.ClockGroups)+len(set.Uncertainties)+len(set.Raw)+len(set.Diagnostics))

	for _, c := range set.Clocks {
		text := fmt.Sprintf("%s  Periode %g ns (%.1f MHz)  Flanken [%g %g]",
			c.Name, c.Period, c.FrequencyMHz(), c.Waveform[0], c.Waveform[1])
		if c.Source != "" {
			text += "  Quelle: " + c.Source
		}
		rows = append(rows, Row{Kind: KindClock, Text: text})
	}

	for _, d := range set.IODelays {
		text := fmt.Sprintf("set_%s_delay %g ns  Pin %s", d.DelayType, d.DelayValue, d.Pin)
		if d.Clock != "" {
			text += "  Takt " + d.Clock
		}
		if d.MinDelay {
			text += "  [min]"
		}
		if d.MaxDelay {
			text += "  [max]"
		}
		rows = append(rows, Row{Kind: KindIODelay, Text: text})
	}

	for _, e := range set.Exceptions {
		text := e.ExceptionType.String()
		if e.Value != nil {
			text += fmt.Sprintf("  Wert %g", *e.Value)
		}
		if len(e.From) > 0 {
			text += "  von " + strings.Join(e.From, ", ")
		}
		if len(e.To) > 0 {
			text += "  nach " + strings.Join(e.To, ", ")
		}
		rows = append(rows, Row{Kind: KindException, Text: text})
	}

	for _, g := range set.ClockGroups {
		var parts []string
		for _, group := range g.Groups {
			parts = append(parts, "{"+strings.Join(group, " ")+"}")
		}
		text := "set_clock_groups"
		if g.Name != "" {
			text += " " + g.Name
		}
		if g.Exclusive {
			text += " (exklusiv)"
		}
		text += "  " + strings.Join(parts, " ")
		rows = append(rows, Row{Kind: KindGroup, Text: text})
	}

	for _, u := range set.Uncertainties {
		text := fmt.Sprintf("Uncertainty %g ns", u.Value)
		switch {
		case u.Setup && !u.Hold:
			text += " (setup)"
		case u.Hold && !u.Setup:
			text += " (hold)"
		}
		if len(u.Objects) > 0 {
			text += "  Objekte: " + strings.Join(u.Objects, ", ")
		}
		rows = append(rows, Row{Kind: KindUncertainty, Text: text})
	}

	for _, raw := range set.Raw {
		rows = append(rows, Row{Kind: KindRaw, Text: raw})
	}

	for _, d := range set.Diagnostics {
		rows = append(rows, Row{Kind: KindDiagnostic,
			Text: fmt.Sprintf("Zeile %d: %s (%s)", d.Line, d.Message, d.Text)})
	}

	return rows
}

// Run starts the Constraint Browser TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
