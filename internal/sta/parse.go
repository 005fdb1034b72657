package sta

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

var (
	blockSeparatorRe = regexp.MustCompile(`-{40,}`)
	startpointRe     = regexp.MustCompile(`Startpoint:\s*(\S+)`)
	endpointRe       = regexp.MustCompile(`Endpoint:\s*(\S+)`)
	pathGroupRe      = regexp.MustCompile(`Path Group:\s*(\S+)`)
	pathTypeRe       = regexp.MustCompile(`Path Type:\s*(\S+)`)
	slackRe          = regexp.MustCompile(`slack\s*\((?:MET|VIOLATED)\)\s*(-?\d+\.?\d*)`)
	arrivalRe        = regexp.MustCompile(`data arrival time\s+(-?\d+\.?\d*)`)
	requiredRe       = regexp.MustCompile(`data required time\s+(-?\d+\.?\d*)`)

	// tableRuleRe is the short dashed line underneath the column headers;
	// element rows are only read below it.
	tableRuleRe = regexp.MustCompile(`^\s*-+\s*$`)

	// elementRe captures instance, (cell), delay, transition and the
	// optional fanout and capacitance columns.
	elementRe = regexp.MustCompile(`^\s*(\S+)\s+\((\S+)\)\s+(-?\d+\.?\d*)\s+(-?\d+\.?\d*)(?:\s+(\d+))?(?:\s+(-?\d+\.?\d*))?`)
)

// Parse extracts timing paths from STA report text. The report is split
// into path blocks on long dashed separator lines; blocks without a
// startpoint and endpoint are skipped. Input that contains no startpoint
// at all does not look like a timing report and fails with REPORT_FORMAT.
func Parse(input string) (*Report, error) {
	if !strings.Contains(input, "Startpoint:") {
		return nil, mcwerror.New("input does not look like a timing report, no startpoint found").
			WithCode(mcwerror.CodeReportFormat).
			WithOperation("sta.parse")
	}

	report := NewReport()
	for _, block := range blockSeparatorRe.Split(input, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if path, ok := parseBlock(block); ok {
			report.Paths = append(report.Paths, path)
		}
	}

	for i, p := range report.Paths {
		if i == 0 || p.Slack < report.WorstSlack {
			report.WorstSlack = p.Slack
		}
		if p.Violation() {
			report.TotalViolations++
			report.TNS += p.Slack
		}
	}
	report.WNS = report.WorstSlack
	return report, nil
}

// ParseFile reads and parses one STA report file. A missing file maps to
// the NOT_FOUND error code.
func ParseFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcwerror.Wrapf(err, "timing report %s not found", path).
				WithCode(mcwerror.CodeNotFound).
				WithOperation("sta.read")
		}
		return nil, mcwerror.Wrapf(err, "reading timing report %s failed", path).
			WithOperation("sta.read")
	}
	return Parse(string(data))
}

func parseBlock(block string) (Path, bool) {
	start := startpointRe.FindStringSubmatch(block)
	end := endpointRe.FindStringSubmatch(block)
	if start == nil || end == nil {
		return Path{}, false
	}

	path := Path{
		Startpoint: start[1],
		Endpoint:   end[1],
		PathGroup:  "default",
		PathType:   "setup",
		Elements:   []PathElement{},
	}
	if m := pathGroupRe.FindStringSubmatch(block); m != nil {
		path.PathGroup = m[1]
	}
	if m := pathTypeRe.FindStringSubmatch(block); m != nil {
		path.PathType = strings.ToLower(m[1])
	}
	if m := slackRe.FindStringSubmatch(block); m != nil {
		path.Slack = parseFloat(m[1])
	}
	if m := arrivalRe.FindStringSubmatch(block); m != nil {
		path.DataArrival = parseFloat(m[1])
	}
	if m := requiredRe.FindStringSubmatch(block); m != nil {
		path.DataRequired = parseFloat(m[1])
	}

	inTable := false
	for _, line := range strings.Split(block, "\n") {
		if tableRuleRe.MatchString(line) {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}
		m := elementRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		elem := PathElement{
			Instance:   m[1],
			Cell:       m[2],
			Delay:      parseFloat(m[3]),
			Transition: parseFloat(m[4]),
		}
		if m[5] != "" {
			elem.Fanout, _ = strconv.Atoi(m[5])
		}
		if m[6] != "" {
			elem.Capacitance = parseFloat(m[6])
		}
		path.Elements = append(path.Elements, elem)
	}
	return path, true
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
