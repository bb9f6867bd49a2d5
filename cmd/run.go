package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plantsim/plantsim/sim"
)

var (
	configPath   string   // Plant configuration document (YAML or JSON)
	settingsPath string   // Optional simulator settings file
	outputPath   string   // Where to write the structured report
	policies     []string // Dispatch policies to compare
	demo         bool     // Use the built-in example plant
)

// runCmd executes the policy comparison from a plant configuration file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the plant scheduling simulation and compare dispatch policies",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := LoadSettings(settingsPath)
		if err != nil {
			logrus.Fatalf("Load settings: %v", err)
		}

		var cfg *sim.PlantConfig
		switch {
		case demo:
			cfg = DemoPlant()
		case configPath != "":
			cfg, err = LoadPlantConfig(configPath)
			if err != nil {
				logrus.Fatalf("Load plant config: %v", err)
			}
		default:
			logrus.Fatalf("Either --config or --demo is required")
		}
		mergeSettings(cfg, settings)

		names := policies
		if len(names) == 0 {
			names = settings.Policies
		}
		for _, name := range names {
			if !sim.IsValidPolicy(name) {
				logrus.Fatalf("Unknown policy %q (valid: %v)", name, sim.PolicyNames())
			}
		}

		logrus.Infof("Comparing policies %v over %d orders, horizon %.0f days",
			names, len(cfg.Orders), cfg.HorizonDays)
		startTime := time.Now()

		results, err := sim.RunComparison(cfg, names)
		if err != nil {
			logrus.Fatalf("Configuration rejected: %v", err)
		}
		report := sim.BuildReport(results, cfg.HoursPerDay)

		fmt.Print(report.Text())
		logrus.Infof("Comparison finished in %s", time.Since(startTime))

		if outputPath != "" {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				logrus.Fatalf("Marshal report: %v", err)
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				logrus.Fatalf("Write report: %v", err)
			}
			fmt.Printf("Report written to %s\n", outputPath)
		}
	},
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Plant configuration document (.yaml or .json)")
	runCmd.Flags().StringVar(&settingsPath, "settings", "", "Simulator settings file (default: plantsim.yaml if present)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the structured comparison report to this file (JSON)")
	runCmd.Flags().StringSliceVar(&policies, "policy", nil, "Dispatch policies to compare (default: all of fifo,edd,critical-ratio)")
	runCmd.Flags().BoolVar(&demo, "demo", false, "Simulate the built-in example plant")

	rootCmd.AddCommand(runCmd)
}
