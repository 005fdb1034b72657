package analyze

import (
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// Report is the aggregate view of one parsed constraint set.
type Report struct {
	TotalClocks      int                `json:"total_clocks"`
	TotalIODelays    int                `json:"total_io_delays"`
	TotalExceptions  int                `json:"total_exceptions"`
	ClockPeriods     map[string]float64 `json:"clock_periods"`
	FastestClock     string             `json:"fastest_clock"`
	FalsePathCount   int                `json:"false_path_count"`
	MulticycleCount  int                `json:"multicycle_count"`
	MaxDelayCount    int                `json:"max_delay_count"`
	MinDelayCount    int                `json:"min_delay_count"`
	ClockGroupCount  int                `json:"clock_group_count"`
	UncertaintyCount int                `json:"uncertainty_count"`
	RawCommandCount  int                `json:"raw_command_count"`
	DiagnosticCount  int                `json:"diagnostic_count"`
}

// Analyze derives the report from a constraint set. The fastest clock is
// the first declared clock with the smallest period; an empty set reports
// an empty name.
func Analyze(set *parser.ConstraintSet) *Report {
	report := &Report{
		TotalClocks:      len(set.Clocks),
		TotalIODelays:    len(set.IODelays),
		TotalExceptions:  len(set.Exceptions),
		ClockPeriods:     make(map[string]float64, len(set.Clocks)),
		ClockGroupCount:  len(set.ClockGroups),
		UncertaintyCount: len(set.Uncertainties),
		RawCommandCount:  len(set.Raw),
		DiagnosticCount:  len(set.Diagnostics),
	}

	fastest := 0.0
	for _, c := range set.Clocks {
		report.ClockPeriods[c.Name] = c.Period
		if report.FastestClock == "" || c.Period < fastest {
			report.FastestClock = c.Name
			fastest = c.Period
		}
	}

	for _, e := range set.Exceptions {
		switch e.ExceptionType {
		case parser.ExceptionFalsePath:
			report.FalsePathCount++
		case parser.ExceptionMulticycle:
			report.MulticycleCount++
		case parser.ExceptionMaxDelay:
			report.MaxDelayCount++
		case parser.ExceptionMinDelay:
			report.MinDelayCount++
		}
	}
	return report
}
