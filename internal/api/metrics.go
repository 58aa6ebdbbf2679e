package api

import "github.com/prometheus/client_golang/prometheus"

// TilingMetrics содержит метрики разбора лесных регионов
type TilingMetrics struct {
	tilings *prometheus.CounterVec
}

// NewTilingMetrics создает и регистрирует метрики разбора
func NewTilingMetrics() *TilingMetrics {
	tm := &TilingMetrics{
		tilings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_editor",
			Name:      "forest_tilings_total",
			Help:      "Число разборов лесных регионов по результату.",
		}, []string{"result"}),
	}
	prometheus.MustRegister(tm.tilings)
	return tm
}

// ObserveResult учитывает результат одного разбора
func (tm *TilingMetrics) ObserveResult(result string) {
	tm.tilings.WithLabelValues(result).Inc()
}
