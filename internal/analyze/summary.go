package analyze

import (
	"fmt"
	"strings"

	"github.com/msto63/mCW/foundation/sdc/parser"
)

// Summary renders the human-readable view of a constraint set. Clocks
// appear in declaration order with their frequency; raw commands are
// listed verbatim.
func Summary(set *parser.ConstraintSet, source string) string {
	report := Analyze(set)

	var b strings.Builder
	fmt.Fprintf(&b, "SDC Summary for: %s\n", source)
	fmt.Fprintf(&b, "  Clocks: %d\n", report.TotalClocks)
	for _, c := range set.Clocks {
		fmt.Fprintf(&b, "    %s: %g ns (%.1f MHz)\n", c.Name, c.Period, c.FrequencyMHz())
	}
	if report.FastestClock != "" {
		fmt.Fprintf(&b, "  Fastest clock: %s\n", report.FastestClock)
	}
	fmt.Fprintf(&b, "  IO delays: %d\n", report.TotalIODelays)
	fmt.Fprintf(&b, "  False paths: %d\n", report.FalsePathCount)
	fmt.Fprintf(&b, "  Multicycle paths: %d\n", report.MulticycleCount)
	fmt.Fprintf(&b, "  Max delay exceptions: %d\n", report.MaxDelayCount)
	fmt.Fprintf(&b, "  Min delay exceptions: %d\n", report.MinDelayCount)
	if report.ClockGroupCount > 0 {
		fmt.Fprintf(&b, "  Clock groups: %d\n", report.ClockGroupCount)
	}
	if report.UncertaintyCount > 0 {
		fmt.Fprintf(&b, "  Clock uncertainties: %d\n", report.UncertaintyCount)
	}
	if len(set.Raw) > 0 {
		b.WriteString("  Unrecognized commands:\n")
		for _, raw := range set.Raw {
			fmt.Fprintf(&b, "    %s\n", raw)
		}
	}
	if len(set.Diagnostics) > 0 {
		b.WriteString("  Skipped commands:\n")
		for _, d := range set.Diagnostics {
			fmt.Fprintf(&b, "    line %d: %s\n", d.Line, d.Message)
		}
	}
	return b.String()
}
