// Runs the same validated configuration through multiple dispatch policies
// and collects one result per policy. Runs are logically independent
// simulations and execute on separate goroutines; each owns a private
// clock, equipment pool, batch set and metrics aggregator. Only the
// immutable catalog and changeover matrix are shared.

package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// PolicyResult is the outcome of one policy run. Exactly one of Summary
// and Err is set.
type PolicyResult struct {
	Policy  string
	Summary *Summary
	Err     error
}

// RunComparison validates the configuration once, then simulates it under
// every named policy. A failure in one run never aborts the others; the
// failed policy's row carries the cause instead of a summary.
func RunComparison(cfg *PlantConfig, policyNames []string) ([]PolicyResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(policyNames) == 0 {
		policyNames = PolicyNames()
	}

	catalog := NewCatalog(cfg.Products)
	changeovers := NewChangeoverMatrix(cfg.Changeovers)

	results := make([]PolicyResult, len(policyNames))
	var wg sync.WaitGroup
	for i, name := range policyNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			// an engine assertion in one run must not take down the
			// comparison; surface it as that policy's error row
			defer func() {
				if r := recover(); r != nil {
					logrus.Errorf("policy %s run failed: %v", name, r)
					results[i] = PolicyResult{Policy: name, Err: fmt.Errorf("policy %s run failed: %v", name, r)}
				}
			}()
			results[i] = runPolicy(cfg, catalog, changeovers, name)
		}(i, name)
	}
	wg.Wait()
	return results, nil
}

func runPolicy(cfg *PlantConfig, catalog *Catalog, changeovers *ChangeoverMatrix, name string) PolicyResult {
	s, err := NewSimulator(cfg, catalog, changeovers, NewDispatchPolicy(name))
	if err != nil {
		return PolicyResult{Policy: name, Err: err}
	}
	logrus.Infof("Starting %s run: %d batches, horizon %.0fh", name, len(s.Batches), s.Horizon)
	s.Run()
	return PolicyResult{Policy: name, Summary: s.Summary()}
}
