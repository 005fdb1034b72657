package netlist

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

func conn(port, net string) PortConnection {
	return PortConnection{Port: port, Net: net}
}

func inst(cell, name string, conns ...PortConnection) CellInstance {
	if conns == nil {
		conns = []PortConnection{}
	}
	return CellInstance{Name: name, Cell: cell, Connections: conns}
}

func TestCountCells(t *testing.T) {
	mod := Module{Instances: []CellInstance{
		inst("NAND2X1", "u1"),
		inst("DFFX1", "u2"),
		inst("NAND2X1", "u3"),
		inst("INVX1", "u4"),
	}}

	got := CountCells([]Module{mod})
	want := []CellCount{
		{Cell: "NAND2X1", Count: 2},
		{Cell: "DFFX1", Count: 1},
		{Cell: "INVX1", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("histogram = %v, want %v", got, want)
	}
}

func fanoutModule(loads int) Module {
	mod := Module{Name: "top"}
	mod.Instances = append(mod.Instances, inst("BUFX2", "u_drv", conn("A", "in"), conn("Y", "big_net")))
	for i := 0; i < loads; i++ {
		mod.Instances = append(mod.Instances,
			inst("INVX1", fmt.Sprintf("u_load%d", i), conn("A", "big_net"), conn("Y", fmt.Sprintf("n%d", i))))
	}
	return mod
}

func TestComputeFanout(t *testing.T) {
	fanout := ComputeFanout([]Module{fanoutModule(3)})

	info, ok := fanout["big_net"]
	if !ok {
		t.Fatal("big_net missing from fanout map")
	}
	if info.Driver != "u_drv" || info.DriverCell != "BUFX2" {
		t.Errorf("driver = %s (%s)", info.Driver, info.DriverCell)
	}
	if info.Fanout != 3 || len(info.Loads) != 3 {
		t.Errorf("fanout = %d, loads = %d", info.Fanout, len(info.Loads))
	}
	if info.Loads[0].Instance != "u_load0" || info.Loads[0].Port != "A" {
		t.Errorf("load = %+v", info.Loads[0])
	}

	// A primary input drives "in"; no instance output does, so it is
	// not in the map.
	if _, ok := fanout["in"]; ok {
		t.Error("undriven net listed in fanout map")
	}

	// n0..n2 are driven but never loaded.
	n0 := fanout["n0"]
	if n0.Fanout != 0 || n0.Loads == nil {
		t.Errorf("n0 = %+v, want fanout 0 with allocated loads", n0)
	}
}

func TestHighFanoutNets(t *testing.T) {
	// Exactly 16 loads stays below the default threshold.
	if flagged := HighFanoutNets([]Module{fanoutModule(16)}, DefaultFanoutThreshold); len(flagged) != 0 {
		t.Errorf("flagged = %v, want none at threshold", flagged)
	}

	flagged := HighFanoutNets([]Module{fanoutModule(17)}, DefaultFanoutThreshold)
	if len(flagged) != 1 {
		t.Fatalf("flagged = %d, want 1", len(flagged))
	}
	f := flagged[0]
	if f.Net != "big_net" || f.DriverInstance != "u_drv" || f.DriverCell != "BUFX2" || f.Fanout != 17 {
		t.Errorf("finding = %+v", f)
	}
}

func TestHighFanoutNetsOrdering(t *testing.T) {
	mod := Module{Instances: []CellInstance{
		inst("BUFX1", "d1", conn("Y", "neta")),
		inst("BUFX1", "d2", conn("Y", "netb")),
	}}
	for i := 0; i < 3; i++ {
		mod.Instances = append(mod.Instances, inst("INVX1", fmt.Sprintf("la%d", i), conn("A", "neta")))
	}
	for i := 0; i < 5; i++ {
		mod.Instances = append(mod.Instances, inst("INVX1", fmt.Sprintf("lb%d", i), conn("A", "netb")))
	}

	flagged := HighFanoutNets([]Module{mod}, 2)
	if len(flagged) != 2 {
		t.Fatalf("flagged = %d, want 2", len(flagged))
	}
	if flagged[0].Net != "netb" || flagged[1].Net != "neta" {
		t.Errorf("order = %s, %s, want worst first", flagged[0].Net, flagged[1].Net)
	}
}

func TestEstimateArea(t *testing.T) {
	mod := Module{Instances: []CellInstance{
		inst("NAND2X1", "u1"),
		inst("DFFX1", "u2"),
		inst("EXOTICX9", "u3"),
	}}

	estimate := EstimateArea([]Module{mod}, nil)
	// 2.0 + 6.0 + 3.0 default for the unknown cell.
	if math.Abs(estimate.TotalGE-11.0) > 1e-9 {
		t.Errorf("TotalGE = %g, want 11", estimate.TotalGE)
	}
	exotic := estimate.ByCell["EXOTICX9"]
	if exotic.Count != 1 || math.Abs(exotic.Area-3.0) > 1e-9 {
		t.Errorf("EXOTICX9 = %+v", exotic)
	}
}

func TestEstimateAreaCustomTable(t *testing.T) {
	mod := Module{Instances: []CellInstance{inst("NAND2X1", "u1")}}
	estimate := EstimateArea([]Module{mod}, map[string]float64{"NAND2X1": 7.5})
	if math.Abs(estimate.TotalGE-7.5) > 1e-9 {
		t.Errorf("TotalGE = %g, want 7.5", estimate.TotalGE)
	}
}

func TestStats(t *testing.T) {
	modules, err := Parse(sampleNetlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := Stats(modules, DefaultFanoutThreshold)
	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}
	top := stats[0]
	if top.Name != "top" || top.Ports != 4 || top.Wires != 4 || top.Instances != 3 {
		t.Errorf("top = %+v", top)
	}
	if top.HighFanout == nil || len(top.HighFanout) != 0 {
		t.Errorf("HighFanout = %#v, want allocated empty list", top.HighFanout)
	}
	// BUFX2 1.5 + NAND2X1 2 + DFFX1 6
	if math.Abs(top.AreaGE-9.5) > 1e-9 {
		t.Errorf("AreaGE = %g, want 9.5", top.AreaGE)
	}
}

func TestSummary(t *testing.T) {
	mod := Module{
		Name:  "top",
		Ports: []string{"clk", "d"},
		Wires: []Wire{{Name: "n1", Width: 1}},
		Instances: []CellInstance{
			inst("NAND2X1", "u1"),
			inst("NAND2X1", "u2"),
			inst("DFFX1", "u3"),
		},
	}

	want := `Module: top
  Ports: 2
  Wires: 1
  Instances: 3
  Cell distribution:
    NAND2X1: 2
    DFFX1: 1
  Estimated area: 10 gate equivalents

`
	if got := Summary([]Module{mod}, DefaultFanoutThreshold); got != want {
		t.Errorf("summary mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummaryListsHighFanout(t *testing.T) {
	got := Summary([]Module{fanoutModule(17)}, DefaultFanoutThreshold)
	if !strings.Contains(got, "  High fanout nets (>16):") {
		t.Errorf("missing high fanout header:\n%s", got)
	}
	if !strings.Contains(got, "    big_net: fanout=17 (driven by BUFX2 u_drv)") {
		t.Errorf("missing high fanout entry:\n%s", got)
	}
}
