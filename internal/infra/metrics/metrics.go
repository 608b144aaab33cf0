package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "cluster_insights_requests_total",
		Help: "Total number of capacity insight requests served, per operation.",
	},
	[]string{"operation"},
)

var errorsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "cluster_insights_errors_total",
		Help: "Total number of capacity insight requests that failed, per operation.",
	},
	[]string{"operation"},
)

var requestDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "cluster_insights_request_duration_seconds",
		Help:    "Duration of capacity insight requests, per operation.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

var clusterCPUCapacityCores = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "cluster_insights_cluster_cpu_capacity_cores",
		Help: "Total schedulable CPU capacity of the cluster in cores, from the last snapshot.",
	},
)

var clusterCPUAllocatedCores = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "cluster_insights_cluster_cpu_allocated_cores",
		Help: "Sum of declared CPU requests across all pods in cores, from the last snapshot.",
	},
)

var clusterMemoryCapacityGiB = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "cluster_insights_cluster_memory_capacity_gib",
		Help: "Total schedulable memory capacity of the cluster in GiB, from the last snapshot.",
	},
)

var clusterMemoryAllocatedGiB = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "cluster_insights_cluster_memory_allocated_gib",
		Help: "Sum of declared memory requests across all pods in GiB, from the last snapshot.",
	},
)

// RecordRequest increments the request counter for the given operation.
func RecordRequest(operation string) {
	requestsTotal.WithLabelValues(operation).Inc()
}

// RecordError increments the error counter for the given operation.
func RecordError(operation string) {
	errorsTotal.WithLabelValues(operation).Inc()
}

// ObserveRequestDuration records how long a request for the given operation took.
func ObserveRequestDuration(operation string, started time.Time) {
	requestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// SetClusterCapacity publishes the cluster totals of the latest capacity snapshot.
func SetClusterCapacity(totalCPUCores, allocatedCPUCores, totalMemoryGiB, allocatedMemoryGiB float64) {
	clusterCPUCapacityCores.Set(totalCPUCores)
	clusterCPUAllocatedCores.Set(allocatedCPUCores)
	clusterMemoryCapacityGiB.Set(totalMemoryGiB)
	clusterMemoryAllocatedGiB.Set(allocatedMemoryGiB)
}
