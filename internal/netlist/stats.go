package netlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/mCW/foundation/utils/mapx"
)

// DefaultFanoutThreshold flags nets driving more loads than a synthesis
// tool would normally leave unbuffered.
const DefaultFanoutThreshold = 16

// defaultAreaGE is the gate-equivalent estimate for cells missing from
// the area table.
const defaultAreaGE = 3.0

// defaultCellAreas holds rough gate-equivalent estimates for a generic
// standard-cell library.
var defaultCellAreas = map[string]float64{
	"INVX1": 1, "INVX2": 1.5, "INVX4": 2,
	"NAND2X1": 2, "NAND2X2": 2.5, "NAND3X1": 3,
	"NOR2X1": 2, "NOR2X2": 2.5, "NOR3X1": 3,
	"AND2X1": 2.5, "OR2X1": 2.5,
	"AOI21X1": 3, "OAI21X1": 3,
	"DFFX1": 6, "DFFX2": 8,
	"MUX2X1": 4, "BUFX1": 1, "BUFX2": 1.5,
}

// outputPins names the pins treated as net drivers when computing fanout.
var outputPins = map[string]bool{
	"Y": true, "Z": true, "Q": true, "ZN": true,
	"QN": true, "S": true, "CO": true, "SO": true,
}

// CellCount is one entry of the cell type histogram.
type CellCount struct {
	Cell  string `json:"cell"`
	Count int    `json:"count"`
}

// CountCells builds the cell type histogram across modules, most frequent
// first.
func CountCells(modules []Module) []CellCount {
	counts := map[string]int{}
	for _, mod := range modules {
		for _, inst := range mod.Instances {
			counts[inst.Cell]++
		}
	}

	histogram := make([]CellCount, 0, len(counts))
	for _, cell := range mapx.Keys(counts) {
		histogram = append(histogram, CellCount{Cell: cell, Count: counts[cell]})
	}
	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].Cell < histogram[j].Cell
	})
	return histogram
}

// Load is one input pin connected to a net.
type Load struct {
	Instance string `json:"instance"`
	Port     string `json:"port"`
}

// FanoutInfo describes one driven net: its driver and every load on it.
type FanoutInfo struct {
	Driver     string `json:"driver"`
	DriverCell string `json:"driver_cell"`
	Fanout     int    `json:"fanout"`
	Loads      []Load `json:"loads"`
}

// ComputeFanout maps every driven net to its driver and loads. Driving is
// decided by pin name: Y, Z, Q, ZN, QN, S, CO and SO count as outputs,
// everything else as a load.
func ComputeFanout(modules []Module) map[string]FanoutInfo {
	drivers := map[string][2]string{}
	loads := map[string][]Load{}
	for _, mod := range modules {
		for _, inst := range mod.Instances {
			for _, conn := range inst.Connections {
				if outputPins[conn.Port] {
					drivers[conn.Net] = [2]string{inst.Name, inst.Cell}
				} else {
					loads[conn.Net] = append(loads[conn.Net], Load{
						Instance: inst.Name,
						Port:     conn.Port,
					})
				}
			}
		}
	}

	fanout := make(map[string]FanoutInfo, len(drivers))
	for net, driver := range drivers {
		netLoads := loads[net]
		if netLoads == nil {
			netLoads = []Load{}
		}
		fanout[net] = FanoutInfo{
			Driver:     driver[0],
			DriverCell: driver[1],
			Fanout:     len(netLoads),
			Loads:      netLoads,
		}
	}
	return fanout
}

// HighFanoutNet flags one net whose fanout exceeds the threshold.
type HighFanoutNet struct {
	Net            string `json:"net"`
	DriverInstance string `json:"driver_instance"`
	DriverCell     string `json:"driver_cell"`
	Fanout         int    `json:"fanout"`
}

// HighFanoutNets returns the nets driving more than threshold loads,
// worst first.
func HighFanoutNets(modules []Module, threshold int) []HighFanoutNet {
	flagged := []HighFanoutNet{}
	for net, info := range ComputeFanout(modules) {
		if info.Fanout > threshold {
			flagged = append(flagged, HighFanoutNet{
				Net:            net,
				DriverInstance: info.Driver,
				DriverCell:     info.DriverCell,
				Fanout:         info.Fanout,
			})
		}
	}
	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].Fanout != flagged[j].Fanout {
			return flagged[i].Fanout > flagged[j].Fanout
		}
		return flagged[i].Net < flagged[j].Net
	})
	return flagged
}

// CellArea aggregates instance count and summed area for one cell type.
type CellArea struct {
	Count int     `json:"count"`
	Area  float64 `json:"area"`
}

// AreaEstimate is a rough design size in gate equivalents.
type AreaEstimate struct {
	TotalGE float64             `json:"total_area_ge"`
	ByCell  map[string]CellArea `json:"by_cell_type"`
}

// EstimateArea sums per-cell gate equivalents. A nil table falls back to
// the built-in estimates; cells missing from the table count 3.0 GE.
func EstimateArea(modules []Module, areas map[string]float64) AreaEstimate {
	if areas == nil {
		areas = defaultCellAreas
	}
	estimate := AreaEstimate{ByCell: map[string]CellArea{}}
	for _, mod := range modules {
		for _, inst := range mod.Instances {
			area, ok := areas[inst.Cell]
			if !ok {
				area = defaultAreaGE
			}
			estimate.TotalGE += area
			entry := estimate.ByCell[inst.Cell]
			entry.Count++
			entry.Area += area
			estimate.ByCell[inst.Cell] = entry
		}
	}
	return estimate
}

// ModuleStats bundles the derived metrics of one module.
type ModuleStats struct {
	Name       string          `json:"name"`
	Ports      int             `json:"ports"`
	Wires      int             `json:"wires"`
	Instances  int             `json:"instances"`
	Cells      []CellCount     `json:"cells"`
	HighFanout []HighFanoutNet `json:"high_fanout"`
	AreaGE     float64         `json:"area_ge"`
}

// Stats computes the per-module metrics used for machine-readable output.
func Stats(modules []Module, fanoutThreshold int) []ModuleStats {
	stats := make([]ModuleStats, 0, len(modules))
	for _, mod := range modules {
		single := []Module{mod}
		stats = append(stats, ModuleStats{
			Name:       mod.Name,
			Ports:      len(mod.Ports),
			Wires:      len(mod.Wires),
			Instances:  len(mod.Instances),
			Cells:      CountCells(single),
			HighFanout: HighFanoutNets(single, fanoutThreshold),
			AreaGE:     EstimateArea(single, nil).TotalGE,
		})
	}
	return stats
}

// Summary renders the per-module statistics report of a parsed netlist.
// At most five high-fanout nets are listed per module.
func Summary(modules []Module, fanoutThreshold int) string {
	var b strings.Builder
	for _, mod := range modules {
		fmt.Fprintf(&b, "Module: %s\n", mod.Name)
		fmt.Fprintf(&b, "  Ports: %d\n", len(mod.Ports))
		fmt.Fprintf(&b, "  Wires: %d\n", len(mod.Wires))
		fmt.Fprintf(&b, "  Instances: %d\n", len(mod.Instances))

		single := []Module{mod}
		b.WriteString("  Cell distribution:\n")
		for _, c := range CountCells(single) {
			fmt.Fprintf(&b, "    %s: %d\n", c.Cell, c.Count)
		}

		if flagged := HighFanoutNets(single, fanoutThreshold); len(flagged) > 0 {
			fmt.Fprintf(&b, "  High fanout nets (>%d):\n", fanoutThreshold)
			for i, net := range flagged {
				if i == 5 {
					break
				}
				fmt.Fprintf(&b, "    %s: fanout=%d (driven by %s %s)\n",
					net.Net, net.Fanout, net.DriverCell, net.DriverInstance)
			}
		}

		area := EstimateArea(single, nil)
		fmt.Fprintf(&b, "  Estimated area: %.0f gate equivalents\n", area.TotalGE)
		b.WriteString("\n")
	}
	return b.String()
}
