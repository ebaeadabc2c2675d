package dic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikseg",
		Subsystem: "dictionary",
		Name:      "reloads_total",
		Help:      "Total number of dictionary reloads, per result (ok/failed)",
	}, []string{"result"})
	metricWords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ikseg",
		Subsystem: "dictionary",
		Name:      "words",
		Help:      "Enabled words in the live dictionary, per trie",
	}, []string{"dict"})
	metricPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ikseg",
		Subsystem: "monitor",
		Name:      "polls_total",
		Help:      "Total number of remote dictionary polls, per result (modified/not_modified/unchanged/bad_status/error)",
	}, []string{"result"})
	metricWatchEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ikseg",
		Subsystem: "watcher",
		Name:      "events_total",
		Help:      "Total number of local dictionary change events that triggered a reload",
	})
)
