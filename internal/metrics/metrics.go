// Package metrics exposes the bot's Prometheus instrumentation.
package metrics

import (
	"log"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommandsTotal counts processed chat commands per command name
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_commands_total",
		Help: "Total number of commands processed",
	}, []string{"command"})

	// CallbacksTotal counts processed button callbacks per action
	CallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_callbacks_total",
		Help: "Total number of callback queries processed",
	}, []string{"action"})

	// ResponsesTotal counts recorded player votes per status
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_responses_total",
		Help: "Total number of player responses",
	}, []string{"status"})

	// ErrorsTotal counts handler and transport failures per type
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_errors_total",
		Help: "Total number of errors",
	}, []string{"type"})

	// PlayersCurrent tracks the current session's tally per status
	PlayersCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bot_players_current",
		Help: "Number of players in current session",
	}, []string{"status"})

	// RequestDuration observes handler latency
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bot_request_duration_seconds",
		Help:    "Request processing duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.5, 1.0, 5.0},
	}, []string{"handler"})

	// SchedulerJobsTotal counts scheduler job executions per job
	SchedulerJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_scheduler_jobs_total",
		Help: "Total number of scheduler job executions",
	}, []string{"job"})

	// GuestsAddedTotal counts guest entries added by admins
	GuestsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_guests_added_total",
		Help: "Total number of guest participants added",
	})

	// GuestsDeletedTotal counts roster entries removed by admins
	GuestsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_guests_deleted_total",
		Help: "Total number of guest participants deleted",
	})

	// TeamChangesTotal counts admin team corrections per team
	TeamChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_team_changes_total",
		Help: "Total number of team changes",
	}, []string{"team"})

	// TeamSelectionsTotal counts first-time team picks per team
	TeamSelectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_team_selections_total",
		Help: "Total number of team selections by users",
	}, []string{"team"})
)

// Serve exposes the metrics endpoint on addr. The listener is opened before
// the serving goroutine starts so a bind failure surfaces to the caller
// instead of dying silently in the background.
func Serve(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.Serve(listener, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	log.Printf("metrics server listening on %s", addr)
	return nil
}
