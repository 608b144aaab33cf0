package httpserver

import (
	"context"
	"time"

	"github.com/alpha-hack-program/cluster-insights/internal/infra/appstate"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/pinger"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// insighter is the internal interface the handlers need from the
// capacity insights service.
type insighter interface {
	ClusterCapacityQuery(ctx context.Context) (*insights.ClusterCapacity, error)
	CheckResourceFitQuery(ctx context.Context, cpuCores, memoryGiB float64) (*insights.FitVerdict, error)
	NodeBreakdownQuery(ctx context.Context) (*insights.NodeBreakdown, error)
	NamespaceUsageQuery(ctx context.Context) (*insights.NamespaceUsageReport, error)
	PodResourceStatsQuery(ctx context.Context) (*insights.PodResourceStats, error)
	CheckReplicaCapacityQuery(ctx context.Context, appName, namespace string, replicaCount int) (*insights.ReplicaVerdict, error)
}
