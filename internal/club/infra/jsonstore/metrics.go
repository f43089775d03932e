package jsonstore

import (
	"SimplyRugby/internal/club/app/port"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeLoaded  = "loaded"
	outcomeMissing = "missing"
	outcomeCorrupt = "corrupt"
)

// Metrics 记录数据文件读取与缓存命中情况；nil 时所有方法都是空操作。
type Metrics struct {
	loads     *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "club",
			Subsystem: "store",
			Name:      "loads_total",
			Help:      "Data file loads by kind and outcome.",
		}, []string{"kind", "status"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "club",
			Subsystem: "store",
			Name:      "cache_hits_total",
			Help:      "Lookups served from the invalidating cache.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.loads, m.cacheHits} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeLoad(kind port.Kind, outcome string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(string(kind), outcome).Inc()
}

func (m *Metrics) observeCacheHit(kind port.Kind) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(string(kind)).Inc()
}
