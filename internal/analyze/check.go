package analyze

import (
	"fmt"

	"github.com/msto63/mCW/foundation/core/validation"
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// FindingSeverity ranks consistency findings.
type FindingSeverity string

const (
	SeverityWarning FindingSeverity = "warning"
	SeverityError   FindingSeverity = "error"
)

// Finding is one consistency issue detected within a constraint set.
type Finding struct {
	Severity FindingSeverity `json:"severity"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
}

// Check runs the intra-set consistency rules: duplicate clock names,
// waveform edges outside the period, IO delays referencing clocks not
// created in the same file and multicycle multipliers below one. Findings
// are advisory and never consult a netlist; only duplicate clock names
// rank as errors.
func Check(set *parser.ConstraintSet) []Finding {
	chain := validation.NewChain("sdc-consistency").
		AddFunc(checkDuplicateClocks).
		AddFunc(checkWaveformEdges).
		AddFunc(checkClockReferences).
		AddFunc(checkMulticycleMultipliers)

	result := chain.Validate(set)
	findings := make([]Finding, 0, len(result.Errors))
	for _, verr := range result.Errors {
		findings = append(findings, Finding{
			Severity: severityFor(verr.Code),
			Code:     verr.Code,
			Message:  verr.Error(),
		})
	}
	return findings
}

// HasErrors reports whether any finding ranks as an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func severityFor(code string) FindingSeverity {
	if code == validation.CodeDuplicate {
		return SeverityError
	}
	return SeverityWarning
}

func constraintSet(value interface{}) (*parser.ConstraintSet, validation.ValidationResult) {
	set, ok := value.(*parser.ConstraintSet)
	if !ok {
		return nil, validation.Invalid(validation.CodeFormat, "", "value is not a constraint set")
	}
	return set, validation.Valid()
}

func checkDuplicateClocks(value interface{}) validation.ValidationResult {
	set, result := constraintSet(value)
	if set == nil {
		return result
	}
	seen := make(map[string]bool, len(set.Clocks))
	for _, c := range set.Clocks {
		if seen[c.Name] {
			result = result.Merge(validation.Invalid(validation.CodeDuplicate, c.Name,
				"clock defined more than once"))
		}
		seen[c.Name] = true
	}
	return result
}

func checkWaveformEdges(value interface{}) validation.ValidationResult {
	set, result := constraintSet(value)
	if set == nil {
		return result
	}
	for _, c := range set.Clocks {
		for _, edge := range c.Waveform {
			if edge < 0 || edge > c.Period {
				result = result.Merge(validation.Invalid(validation.CodeRange, c.Name,
					fmt.Sprintf("waveform edge %g outside period %g", edge, c.Period)))
			}
		}
	}
	return result
}

func checkClockReferences(value interface{}) validation.ValidationResult {
	set, result := constraintSet(value)
	if set == nil {
		return result
	}
	known := make(map[string]bool, len(set.Clocks))
	for _, c := range set.Clocks {
		known[c.Name] = true
	}
	for _, d := range set.IODelays {
		if d.Clock != "" && !known[d.Clock] {
			result = result.Merge(validation.Invalid(validation.CodeReference, d.Pin,
				fmt.Sprintf("references clock %q which is not created in this file", d.Clock)))
		}
	}
	return result
}

func checkMulticycleMultipliers(value interface{}) validation.ValidationResult {
	set, result := constraintSet(value)
	if set == nil {
		return result
	}
	for i, e := range set.Exceptions {
		if e.ExceptionType != parser.ExceptionMulticycle || e.Value == nil {
			continue
		}
		if *e.Value < 1 {
			result = result.Merge(validation.Invalid(validation.CodeRange,
				fmt.Sprintf("multicycle_path[%d]", i),
				fmt.Sprintf("path multiplier %g is below one", *e.Value)))
		}
	}
	return result
}
