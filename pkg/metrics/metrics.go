// Package metrics defines the custom Prometheus collectors for the legal
// case-management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are usable without registration (tests never register them).
// Register exposes them on a registry.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "legalapp"

// ── Client lifecycle ──────────────────────────────────────────────────────────

// ClientOperationsTotal counts client lifecycle operations.
// Labels:
//   - operation: create, update, deactivate, reactivate
//   - result: ok, validation, conflict, not_found, error
var ClientOperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_operations_total",
		Help:      "Total number of client lifecycle operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and registration attempts.
// Labels:
//   - action: login, register
//   - result: ok, validation, conflict, not_found, unauthorized, error
var AuthAttemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// TokenVerificationsTotal counts bearer token checks.
// Label:
//   - result: ok, invalid
var TokenVerificationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// Register adds every collector to reg. Collectors already present on reg
// are skipped, so several routers may share one registry.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		ClientOperationsTotal,
		AuthAttemptsTotal,
		TokenVerificationsTotal,
	} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("register metrics: %w", err)
		}
	}
	return nil
}
