package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spinsStarted = promauto.NewCounter(
		prometheusCounterOpts("spins_started_total", "Total number of started spins"),
	)
	spinsCompleted = promauto.NewCounter(
		prometheusCounterOpts("spins_completed_total", "Total number of spins that reached a result"),
	)
	spinsCancelled = promauto.NewCounter(
		prometheusCounterOpts("spins_cancelled_total", "Total number of spins cancelled before a result"),
	)
	spinRejections = promauto.NewCounterVec(
		prometheusCounterOpts("spin_rejections_total", "Total number of rejected spin requests by reason"),
		[]string{"reason"},
	)
	participantsPerSpin = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "spin_participants",
		Help:      "Number of participants per started spin",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 50},
	})
	droppedEvents = promauto.NewCounter(
		prometheusCounterOpts("spin_events_dropped_total", "Total number of spin events dropped for slow subscribers"),
	)
	phaseTransitions = promauto.NewCounterVec(
		prometheusCounterOpts("spin_phase_transitions_total", "Total number of wheel phase transitions by target phase"),
		[]string{"phase"},
	)
)

// IncSpinsStarted увеличивает счётчик запущенных вращений.
func IncSpinsStarted() {
	spinsStarted.Inc()
}

// IncSpinsCompleted увеличивает счётчик вращений, дошедших до результата.
func IncSpinsCompleted() {
	spinsCompleted.Inc()
}

// IncSpinsCancelled увеличивает счётчик отменённых вращений.
func IncSpinsCancelled() {
	spinsCancelled.Inc()
}

// IncSpinRejections увеличивает счётчик отклонённых запросов с указанной причиной.
func IncSpinRejections(reason string) {
	spinRejections.WithLabelValues(reason).Inc()
}

// ObserveParticipants записывает размер списка участников.
func ObserveParticipants(n int) {
	if n <= 0 {
		return
	}
	participantsPerSpin.Observe(float64(n))
}

// IncDroppedEvents увеличивает счётчик событий, не доставленных подписчику.
func IncDroppedEvents() {
	droppedEvents.Inc()
}

// IncPhaseTransitions увеличивает счётчик переходов в фазу phase.
func IncPhaseTransitions(phase string) {
	phaseTransitions.WithLabelValues(phase).Inc()
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}
}
