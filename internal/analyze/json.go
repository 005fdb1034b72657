package analyze

import (
	"encoding/json"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// RenderJSON serializes a constraint set for the CLI's json format:
// indented, snake_case keys, empty collections as arrays.
func RenderJSON(set *parser.ConstraintSet) ([]byte, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, mcwerror.Wrap(err, "serializing constraint set failed").
			WithCode(mcwerror.CodeInternal).
			WithOperation("analyze.render_json")
	}
	return data, nil
}

// ReportJSON serializes the aggregate report.
func ReportJSON(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, mcwerror.Wrap(err, "serializing report failed").
			WithCode(mcwerror.CodeInternal).
			WithOperation("analyze.report_json")
	}
	return data, nil
}
