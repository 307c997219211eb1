package script

import "strings"

// Demo is a built-in example circuit.
type Demo struct {
	Name   string
	Title  string
	Script string
}

// Demos are the built-in example circuits, in order.
var Demos = []Demo{
	{
		Name:  "and-gate",
		Title: "constant HIGH and LOW into an AND gate",
		Script: `gate 1 0 0
gate 0 0 40
gate AND 100 20
wire 20,7 100,20
wire 20,47 100,30
wire 120,27 160,27
lamp 170 27
propagate
show`,
	},
	{
		Name:  "junction",
		Title: "two wires drawn to the same cell share a node",
		Script: `wire 0,0 40,0
wire 40,0 40,40
force wire 0 HIGH
show`,
	},
	{
		Name:  "lamp",
		Title: "a lamp follows its wire and goes UNKNOWN when the wire is deleted",
		Script: `wire 0,0 40,0
force wire 0 HIGH
lamp 50 0
propagate
show
delete wire 0
propagate
show`,
	},
	{
		Name:  "floating-nand",
		Title: "NAND with floating inputs reads LOW, LOW",
		Script: `gate NAND 0 0
wire 20,7 60,7
propagate
show`,
	},
	{
		Name:  "stale-driver",
		Title: "deleting a driver leaves its wire at the last value",
		Script: `gate 1 0 0
wire 20,7 60,7
propagate
delete gate 0
propagate
show`,
	},
}

// FindDemo looks a demo up by name, case-insensitive.
func FindDemo(name string) (Demo, bool) {
	for _, d := range Demos {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Demo{}, false
}
