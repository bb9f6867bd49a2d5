package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plantsim/plantsim/server"
)

var serveAddr string // Listen address for the HTTP boundary

// serveCmd exposes the engine over HTTP for the surrounding service:
// POST /simulate takes a JSON plant configuration and returns the policy
// comparison; /metrics serves Prometheus counters.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		srv := server.New(serveAddr)
		if err := srv.ListenAndServe(); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
