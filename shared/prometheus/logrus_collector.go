package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// LogrusCollector is a logrus hook to collect log counters.
type LogrusCollector struct {
	counterVec *prometheus.CounterVec
}

var (
	supportedLevels = []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	hookInstance    *LogrusCollector
)

const (
	prefixKey     = "prefix"
	defaultprefix = "global"
)

// NewLogrusCollector register internal metrics and return an logrus hook to collect log counters
// The metrics are registered on the first call only; later calls return the same hook instance.
func NewLogrusCollector() *LogrusCollector {
	if hookInstance == nil {
		counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Total number of log messages.",
		}, []string{"level", "prefix"})
		prometheus.MustRegister(counterVec)
		hookInstance = &LogrusCollector{
			counterVec: counterVec,
		}
	}
	return hookInstance
}

// Fire is called on every log call.
func (hook *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultprefix
	if prefixValue, ok := entry.Data[prefixKey]; ok {
		prefix = prefixValue.(string)
	}
	hook.counterVec.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels return the supported levels.
func (hook *LogrusCollector) Levels() []logrus.Level {
	return supportedLevels
}
