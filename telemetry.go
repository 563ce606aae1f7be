package rocket

import "github.com/prometheus/client_golang/prometheus"

var (
	clampEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rocket_clamp_events_total",
			Help: "Post-step state clamps applied by the integrator.",
		},
		[]string{"kind"},
	)

	integrationFaultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rocket_integration_faults_total",
			Help: "Runs aborted on an unrecoverable non-finite state.",
		},
	)

	stepRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rocket_step_retries_total",
			Help: "Integration steps rejected and retried on a halved time step.",
		},
	)

	insertionIgnitionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rocket_insertion_ignitions_total",
			Help: "Circularization burn ignitions during coast.",
		},
	)

	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rocket_simulations_total",
			Help: "Simulation runs by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(clampEventsTotal)
	prometheus.MustRegister(integrationFaultsTotal)
	prometheus.MustRegister(stepRetriesTotal)
	prometheus.MustRegister(insertionIgnitionsTotal)
	prometheus.MustRegister(simulationsTotal)
}
