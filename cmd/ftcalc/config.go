// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/dalzilio/mss"
	"gopkg.in/yaml.v3"
)

// EventSpec declares one basic event of the system under study. Each
// declared event is compiled once, and every reference to it in the gate
// tree resolves to that one variable: kind "basic" (or an empty kind)
// creates it with FaultTree.Basic, labeled name_0, and kind "repeat" with
// FaultTree.Repeat, labeled name. With either kind, an event referenced from
// several subsystems is a single shared variable.
type EventSpec struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	Probability float64 `yaml:"probability"`
}

// NodeSpec is one node of the gate tree: either a reference to a declared
// event, or a gate ("and", "or", "kofn") combining further NodeSpecs. K is
// only meaningful for the "kofn" gate.
type NodeSpec struct {
	Event string     `yaml:"event,omitempty"`
	Gate  string     `yaml:"gate,omitempty"`
	K     int        `yaml:"k,omitempty"`
	Args  []NodeSpec `yaml:"args,omitempty"`
}

// SystemSpec is the top-level shape of a ftcalc YAML document: the events a
// system is built from and the gate tree describing how their failures
// combine into the top event.
type SystemSpec struct {
	Events []EventSpec `yaml:"events"`
	Top    NodeSpec    `yaml:"top"`
}

// LoadSystemSpec reads and parses a YAML system description from path.
func LoadSystemSpec(path string) (*SystemSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var spec SystemSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(spec.Events) == 0 {
		return nil, fmt.Errorf("%s declares no events", path)
	}
	return &spec, nil
}

// System is a SystemSpec compiled into a diagram: the manager that owns it,
// the top-event node, and the per-variable failure-probability weights
// needed to fold a Prob computation over it.
type System struct {
	Manager *mss.Manager
	Tree    *mss.FaultTree
	Top     mss.Node
	Weights map[string][]float64
}

// Compile builds a System out of spec: every declared event becomes a
// FaultTree basic or repeated variable, the gate tree is folded with
// And/Or/KofN, and the resulting variable labels are paired with their
// declared probabilities.
func (spec *SystemSpec) Compile() (*System, error) {
	mgr := mss.New()
	ft := mss.NewFaultTree(mgr)

	events := make(map[string]*mss.FTNode, len(spec.Events))
	weights := make(map[string][]float64, len(spec.Events))

	for _, ev := range spec.Events {
		var node *mss.FTNode
		switch ev.Kind {
		case "", "basic":
			node = ft.Basic(ev.Name)
		case "repeat":
			node = ft.Repeat(ev.Name)
		default:
			return nil, fmt.Errorf("event %q: unknown kind %q", ev.Name, ev.Kind)
		}
		events[ev.Name] = node

		n, err := ft.Compile(node)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", ev.Name, err)
		}
		label := mgr.HeaderOf(n).Label()
		weights[label] = []float64{1 - ev.Probability, ev.Probability}
	}

	top, err := buildNode(ft, events, spec.Top)
	if err != nil {
		return nil, err
	}
	topNode, err := ft.Compile(top)
	if err != nil {
		return nil, fmt.Errorf("compiling top event: %w", err)
	}

	return &System{Manager: mgr, Tree: ft, Top: topNode, Weights: weights}, nil
}

func buildNode(ft *mss.FaultTree, events map[string]*mss.FTNode, spec NodeSpec) (*mss.FTNode, error) {
	if spec.Event != "" {
		n, ok := events[spec.Event]
		if !ok {
			return nil, fmt.Errorf("reference to undeclared event %q", spec.Event)
		}
		return n, nil
	}
	if spec.Gate == "" {
		return nil, fmt.Errorf("node has neither an event nor a gate")
	}
	args := make([]*mss.FTNode, len(spec.Args))
	for i, a := range spec.Args {
		n, err := buildNode(ft, events, a)
		if err != nil {
			return nil, err
		}
		args[i] = n
	}
	switch spec.Gate {
	case "and":
		return ft.And(args...), nil
	case "or":
		return ft.Or(args...), nil
	case "kofn":
		return ft.KofN(spec.K, args...), nil
	default:
		return nil, fmt.Errorf("unknown gate %q", spec.Gate)
	}
}
