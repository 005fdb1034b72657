package sta

// Default thresholds for the design rule checks.
const (
	DefaultFanoutThreshold     = 32
	DefaultTransitionThreshold = 0.5
)

// FanoutFinding flags one path element whose fanout exceeds the
// threshold.
type FanoutFinding struct {
	Startpoint string  `json:"path_start"`
	Endpoint   string  `json:"path_end"`
	Instance   string  `json:"instance"`
	Cell       string  `json:"cell"`
	Fanout     int     `json:"fanout"`
	Slack      float64 `json:"slack"`
}

// HighFanout returns every path element driving more than threshold
// loads.
func HighFanout(report *Report, threshold int) []FanoutFinding {
	findings := []FanoutFinding{}
	for _, p := range report.Paths {
		for _, e := range p.Elements {
			if e.Fanout > threshold {
				findings = append(findings, FanoutFinding{
					Startpoint: p.Startpoint,
					Endpoint:   p.Endpoint,
					Instance:   e.Instance,
					Cell:       e.Cell,
					Fanout:     e.Fanout,
					Slack:      p.Slack,
				})
			}
		}
	}
	return findings
}

// TransitionFinding flags one path element with a slow transition.
type TransitionFinding struct {
	Startpoint string  `json:"path_start"`
	Endpoint   string  `json:"path_end"`
	Instance   string  `json:"instance"`
	Cell       string  `json:"cell"`
	Transition float64 `json:"transition"`
	Slack      float64 `json:"slack"`
}

// SlowTransitions returns every path element whose transition time
// exceeds threshold nanoseconds.
func SlowTransitions(report *Report, threshold float64) []TransitionFinding {
	findings := []TransitionFinding{}
	for _, p := range report.Paths {
		for _, e := range p.Elements {
			if e.Transition > threshold {
				findings = append(findings, TransitionFinding{
					Startpoint: p.Startpoint,
					Endpoint:   p.Endpoint,
					Instance:   e.Instance,
					Cell:       e.Cell,
					Transition: e.Transition,
					Slack:      p.Slack,
				})
			}
		}
	}
	return findings
}
