// ============================================================================
// meinCHIPWERK (mCW) - Lokale EDA-Werkzeuge
// ============================================================================
//
// Package:     constraints
// Description: Row and message types for the Constraint Browser TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-03-02
// License:     MIT
// ============================================================================

package constraints

import (
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// RowKind classifies one browser row.
type RowKind string

// Row kinds shown in the browser. The first five are filterable with the
// number keys; RAW and DIAG rows are always visible.
const (
	KindClock       RowKind = "CLOCK"
	KindIODelay     RowKind = "IO"
	KindException   RowKind = "EXCEPT"
	KindGroup       RowKind = "GROUP"
	KindUncertainty RowKind = "UNCERT"
	KindRaw         RowKind = "RAW"
	KindDiagnostic  RowKind = "DIAG"
)

// Row is one rendered constraint record.
type Row struct {
	Kind RowKind
	Text string
}

// Message types for tea.Cmd async operations

// constraintsLoadedMsg is sent when the SDC file has been parsed
type constraintsLoadedMsg struct {
	set  *parser.ConstraintSet
	rows []Row
	err  error
}

// reloadMsg signals a reparse of the input file
type reloadMsg struct{}
