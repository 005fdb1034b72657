package netlist

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
	moduleRe       = regexp.MustCompile(`^module\s+(\S+)\s*\(([^)]*)\)\s*;`)
	wireRe         = regexp.MustCompile(`^wire\s+(?:\[(\d+):(\d+)\]\s+)?([^;]+);`)
	instanceRe     = regexp.MustCompile(`^(\S+)\s+(\S+)\s*\(`)
	connectionRe   = regexp.MustCompile(`\.(\w+)\s*\(([^)]*)\)`)
)

// declarationPrefixes are line starts that can never open a cell
// instantiation.
var declarationPrefixes = []string{
	"module", "endmodule", "input", "output", "inout", "wire", "assign", "reg",
}

// Parse extracts the modules of a structural Verilog netlist. Only module
// headers, wire declarations, and cell instantiations with named port
// connections are read; behavioral constructs are ignored. Input without a
// single complete module fails with NETLIST_FORMAT.
func Parse(input string) ([]Module, error) {
	content := blockCommentRe.ReplaceAllString(input, "")
	content = lineCommentRe.ReplaceAllString(content, "")

	var (
		modules []Module
		current *Module
	)

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if m := moduleRe.FindStringSubmatch(line); m != nil {
			mod := newModule(m[1], splitPorts(m[2]))
			current = &mod
			continue
		}
		if line == "endmodule" && current != nil {
			modules = append(modules, *current)
			current = nil
			continue
		}
		if current == nil {
			continue
		}

		if m := wireRe.FindStringSubmatch(line); m != nil {
			width := 1
			if m[1] != "" {
				hi, _ := strconv.Atoi(m[1])
				lo, _ := strconv.Atoi(m[2])
				width = abs(hi-lo) + 1
			}
			for _, name := range strings.Split(m[3], ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				current.Wires = append(current.Wires, Wire{Name: name, Width: width})
			}
			continue
		}

		if m := instanceRe.FindStringSubmatch(line); m != nil && !isDeclaration(line) {
			// An instantiation may span lines until its closing ");".
			full := line
			for !strings.Contains(full, ");") && i < len(lines)-1 {
				i++
				full += " " + strings.TrimSpace(lines[i])
			}
			inst := CellInstance{
				Name:        m[2],
				Cell:        m[1],
				Connections: []PortConnection{},
			}
			for _, c := range connectionRe.FindAllStringSubmatch(full, -1) {
				inst.Connections = append(inst.Connections, PortConnection{
					Port: c[1],
					Net:  strings.TrimSpace(c[2]),
				})
			}
			current.Instances = append(current.Instances, inst)
		}
	}

	if len(modules) == 0 {
		return nil, mcwerror.New("input does not look like a structural netlist, no module found").
			WithCode(mcwerror.CodeNetlistFormat).
			WithOperation("netlist.parse")
	}
	return modules, nil
}

// ParseFile reads and parses one Verilog netlist file. A missing file maps
// to the NOT_FOUND error code.
func ParseFile(path string) ([]Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcwerror.Wrapf(err, "netlist %s not found", path).
				WithCode(mcwerror.CodeNotFound).
				WithOperation("netlist.read")
		}
		return nil, mcwerror.Wrapf(err, "reading netlist %s failed", path).
			WithOperation("netlist.read")
	}
	return Parse(string(data))
}

func splitPorts(list string) []string {
	ports := []string{}
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ports = append(ports, p)
		}
	}
	return ports
}

func isDeclaration(line string) bool {
	for _, prefix := range declarationPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
