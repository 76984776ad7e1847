package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 摄取管线和状态刷新的指标，经由 governor 的 /metrics 暴露。
// 协作方可以用 last_success_timestamp 判断某个平台的数据是否已经变陈旧。
var (
	FetchCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_source_fetch_total",
			Help: "Source fetch attempts by platform and result",
		},
		[]string{"platform", "result"},
	)

	RecordCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_records_total",
			Help: "Normalized records by platform and outcome (upserted/dropped/write_failed)",
		},
		[]string{"platform", "outcome"},
	)

	LastSyncSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contest_sync_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful sync by platform",
		},
		[]string{"platform"},
	)

	TransitionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contest_status_transitions_total",
			Help: "Status transitions applied by the refresh pass",
		},
		[]string{"to"},
	)
)
