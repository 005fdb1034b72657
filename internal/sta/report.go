package sta

import "sort"

// PathElement is one row of a timing path's delay table.
type PathElement struct {
	Instance    string  `json:"instance"`
	Cell        string  `json:"cell"`
	Delay       float64 `json:"delay"`
	Transition  float64 `json:"transition"`
	Fanout      int     `json:"fanout"`
	Capacitance float64 `json:"capacitance"`
}

// Path is one timing path extracted from an STA report.
type Path struct {
	Startpoint   string        `json:"startpoint"`
	Endpoint     string        `json:"endpoint"`
	PathGroup    string        `json:"path_group"`
	PathType     string        `json:"path_type"`
	Slack        float64       `json:"slack"`
	DataArrival  float64       `json:"data_arrival"`
	DataRequired float64       `json:"data_required"`
	Elements     []PathElement `json:"elements"`
}

// Violation reports whether the path misses its requirement.
func (p Path) Violation() bool {
	return p.Slack < 0
}

// Report is the parsed view of one STA text report. WNS is the worst
// slack across all paths (0 when the report has none); TNS sums the slack
// of violating paths only.
type Report struct {
	Paths           []Path  `json:"paths"`
	WorstSlack      float64 `json:"worst_slack"`
	TotalViolations int     `json:"total_violations"`
	WNS             float64 `json:"wns"`
	TNS             float64 `json:"tns"`
}

// NewReport returns an empty report with the path list allocated.
func NewReport() *Report {
	return &Report{Paths: []Path{}}
}

// CriticalPaths returns up to count paths ordered by ascending slack.
// Paths with equal slack keep their report order.
func (r *Report) CriticalPaths(count int) []Path {
	paths := append([]Path{}, r.Paths...)
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Slack < paths[j].Slack
	})
	if count < len(paths) {
		paths = paths[:count]
	}
	return paths
}

// GroupViolations aggregates the violating paths of one path group.
type GroupViolations struct {
	Count      int     `json:"count"`
	WorstSlack float64 `json:"worst_slack"`
	TNS        float64 `json:"tns"`
}

// ViolationsByGroup buckets violating paths by their path group.
func (r *Report) ViolationsByGroup() map[string]GroupViolations {
	groups := make(map[string]GroupViolations)
	for _, p := range r.Paths {
		if !p.Violation() {
			continue
		}
		g := groups[p.PathGroup]
		g.Count++
		g.TNS += p.Slack
		if p.Slack < g.WorstSlack {
			g.WorstSlack = p.Slack
		}
		groups[p.PathGroup] = g
	}
	return groups
}
