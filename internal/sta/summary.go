package sta

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/mCW/foundation/utils/mapx"
)

const summaryBanner = "============================================================"

// DefaultMaxPaths is the number of critical paths the summary lists when
// the caller passes no limit of its own.
const DefaultMaxPaths = 5

// TextSummary renders the banner summary of a timing report. The critical
// path list shows at most maxPaths entries (non-positive values fall back
// to DefaultMaxPaths); the path list and the per-group violation breakdown
// only appear when the report has violations.
func TextSummary(report *Report, maxPaths int) string {
	if maxPaths < 1 {
		maxPaths = DefaultMaxPaths
	}

	var b strings.Builder
	b.WriteString(summaryBanner + "\n")
	b.WriteString("TIMING ANALYSIS SUMMARY\n")
	b.WriteString(summaryBanner + "\n")
	fmt.Fprintf(&b, "Total paths analyzed: %d\n", len(report.Paths))
	fmt.Fprintf(&b, "Total violations:     %d\n", report.TotalViolations)
	fmt.Fprintf(&b, "WNS (worst slack):    %.3f\n", report.WNS)
	fmt.Fprintf(&b, "TNS (total slack):    %.3f\n", report.TNS)
	b.WriteString("\n")

	if report.TotalViolations > 0 {
		fmt.Fprintf(&b, "--- Top %d Critical Paths ---\n", maxPaths)
		for i, p := range report.CriticalPaths(maxPaths) {
			fmt.Fprintf(&b, "  %d. %s -> %s\n", i+1, p.Startpoint, p.Endpoint)
			fmt.Fprintf(&b, "     Group: %s  Slack: %.3f  Type: %s\n", p.PathGroup, p.Slack, p.PathType)
		}
		b.WriteString("\n")

		groups := report.ViolationsByGroup()
		names := mapx.Keys(groups)
		sort.Slice(names, func(i, j int) bool {
			gi, gj := groups[names[i]], groups[names[j]]
			if gi.WorstSlack != gj.WorstSlack {
				return gi.WorstSlack < gj.WorstSlack
			}
			return names[i] < names[j]
		})
		b.WriteString("--- Violations by Clock Group ---\n")
		for _, name := range names {
			g := groups[name]
			fmt.Fprintf(&b, "  %s: %d violations, WNS=%.3f, TNS=%.3f\n",
				name, g.Count, g.WorstSlack, g.TNS)
		}
	}
	b.WriteString(summaryBanner + "\n")
	return b.String()
}
