// Package server exposes the scheduling engine over HTTP: a configuration
// document goes in, the policy comparison report comes out. This is the
// structured-data boundary the surrounding service talks to; rendering a
// form or persisting configurations is the caller's business.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/plantsim/plantsim/sim"
)

// Server serves simulation requests and Prometheus metrics.
type Server struct {
	addr string
}

// New creates a Server listening on addr.
func New(addr string) *Server {
	return &Server{addr: addr}
}

// simulateResponse wraps the comparison report with its text rendering.
type simulateResponse struct {
	Report *sim.ComparisonReport `json:"report"`
	Text   string                `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP routes: POST /simulate, GET /metrics, GET /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/simulate", s.handleSimulate)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe blocks serving requests on the configured address.
func (s *Server) ListenAndServe() error {
	logrus.Infof("Listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var cfg sim.PlantConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		simulationsTotal.WithLabelValues("invalid_config").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "decode configuration: " + err.Error()})
		return
	}
	cfg.ApplyDefaults()

	start := time.Now()
	results, err := sim.RunComparison(&cfg, sim.PolicyNames())
	if err != nil {
		simulationsTotal.WithLabelValues("invalid_config").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	simulationDuration.Observe(time.Since(start).Seconds())

	report := sim.BuildReport(results, cfg.HoursPerDay)
	outcome := "ok"
	for _, row := range report.Policies {
		if !row.Available {
			outcome = "failed"
		}
	}
	simulationsTotal.WithLabelValues(outcome).Inc()

	writeJSON(w, http.StatusOK, simulateResponse{Report: report, Text: report.Text()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("write response: %v", err)
	}
}
