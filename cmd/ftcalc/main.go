// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ftcalc compiles a fault tree described in a YAML document into a
// diagram and reports its top-event probability, minimal cut sets, and a
// sample failure path.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ftcalc",
	Short: "Compile and analyse fault trees",
	Long: `ftcalc loads a fault tree (basic events, gates, and per-event failure
probabilities) from a YAML document and reports reliability measures over the
compiled diagram: top-event probability, minimal cut sets, and an example
failure path.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML system description (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(probCmd, minsolCmd, pathCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSystem(cmd *cobra.Command) (*System, error) {
	start := time.Now()
	spec, err := LoadSystemSpec(configPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", configPath).Int("events", len(spec.Events)).Msg("parsed system description")

	sys, err := spec.Compile()
	if err != nil {
		return nil, err
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("nodes", sys.Manager.Size()).
		Int("variables", sys.Manager.Varnum()).
		Msg("compiled fault tree")
	return sys, nil
}
