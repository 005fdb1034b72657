// Package netlist analyzes gate-level structural Verilog: cell instance
// counting, net fanout, and area estimation over post-synthesis netlists.
package netlist

// PortConnection binds one instance port to a net.
type PortConnection struct {
	Port string `json:"port"`
	Net  string `json:"net"`
}

// CellInstance is one placed cell inside a module.
type CellInstance struct {
	Name        string           `json:"name"`
	Cell        string           `json:"cell"`
	Connections []PortConnection `json:"connections"`
}

// Wire is one net declaration. Width comes from the [hi:lo] range and
// defaults to 1 for scalar nets.
type Wire struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// Module is one structural Verilog module.
type Module struct {
	Name      string         `json:"name"`
	Ports     []string       `json:"ports"`
	Wires     []Wire         `json:"wires"`
	Instances []CellInstance `json:"instances"`
}

func newModule(name string, ports []string) Module {
	return Module{
		Name:      name,
		Ports:     ports,
		Wires:     []Wire{},
		Instances: []CellInstance{},
	}
}
