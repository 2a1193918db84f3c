// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"time"

	"github.com/dalzilio/mss"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var probCmd = &cobra.Command{
	Use:   "prob",
	Short: "Report the top event's failure probability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(cmd)
		if err != nil {
			return err
		}
		start := time.Now()
		p, err := mss.Prob[float64](sys.Manager, sys.Top, sys.Weights, mss.FloatRing{})
		if err != nil {
			return fmt.Errorf("computing probability: %w", err)
		}
		log.Debug().Dur("elapsed", time.Since(start)).Msg("prob done")
		color.Green("top event probability: %.6g", p)
		return nil
	},
}

var minsolCmd = &cobra.Command{
	Use:   "minsol",
	Short: "List the minimal cut sets of the top event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(cmd)
		if err != nil {
			return err
		}
		start := time.Now()
		min, err := sys.Manager.Minsol(sys.Top)
		if err != nil {
			return fmt.Errorf("computing minimal cut sets: %w", err)
		}
		log.Debug().Dur("elapsed", time.Since(start)).Msg("minsol done")

		cuts, ok := sys.Manager.Extract(min)
		if !ok {
			color.Yellow("no minimal cut set: the top event cannot fail")
			return nil
		}
		color.Green("%d minimal cut set(s):", len(cuts))
		for _, cut := range cuts {
			fmt.Println("  " + formatCutSet(cut))
		}
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print one satisfying failure path of the top event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(cmd)
		if err != nil {
			return err
		}
		paths, ok := sys.Manager.Extract(sys.Top)
		if !ok {
			color.Yellow("the top event is never true: no failure path exists")
			return nil
		}
		color.Green("a failure path:")
		fmt.Println("  " + formatCutSet(paths[0]))
		return nil
	},
}

// formatCutSet renders an assignment as a comma-separated list, dropping
// variables set to their lowest ("false"/0) value so a Boolean cut set reads
// as the set of events that must occur.
func formatCutSet(path []mss.Assignment) string {
	out := ""
	for _, a := range path {
		if a.Value == 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s=%d", a.Label, a.Value)
	}
	if out == "" {
		return "(empty)"
	}
	return out
}
