package config

import "time"

// Env key constants. All service configuration env vars use CLUSTER_INSIGHTS_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "CLUSTER_INSIGHTS_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "CLUSTER_INSIGHTS_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "CLUSTER_INSIGHTS_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "CLUSTER_INSIGHTS_LOG_FORMAT"

// Port for the capacity insights API and health endpoints.
const envKeyHTTPPort = "CLUSTER_INSIGHTS_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "CLUSTER_INSIGHTS_METRICS_PORT"

// Cron schedule for the periodic capacity snapshot (five fields, e.g. */15 * * * *).
// Set to "off" to disable the snapshotter.
const envKeySnapshotSchedule = "CLUSTER_INSIGHTS_SNAPSHOT_SCHEDULE"

// Snapshot schedule timezone (IANA, e.g. America/New_York). Defaults to UTC.
const envKeySnapshotTZ = "CLUSTER_INSIGHTS_SNAPSHOT_TZ"

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "CLUSTER_INSIGHTS_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Standard k8s env keys used as fallback when CLUSTER_INSIGHTS_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
