package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/alpha-hack-program/cluster-insights/internal/infra/cronparser"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/metrics"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/shutdown"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

// capacityQuerier is the internal interface the snapshotter needs from
// the capacity insights service.
type capacityQuerier interface {
	ClusterCapacityQuery(ctx context.Context) (*insights.ClusterCapacity, error)
}

// Service periodically computes a cluster capacity snapshot on a cron
// schedule and publishes the totals as gauges.
type Service struct {
	logger     *slog.Logger
	insights   capacityQuerier
	parser     *cronparser.Parser
	schedule   string
	tz         string
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
}

// New creates a new capacity snapshotter. The schedule is a standard
// five-field cron spec; it is validated here so a bad spec fails startup
// instead of the first tick.
func New(
	logger *slog.Logger,
	insights capacityQuerier,
	parser *cronparser.Parser,
	schedule string,
	tz string,
) (*Service, error) {
	if _, err := parser.NextAfter(schedule, tz, time.Now()); err != nil {
		return nil, fmt.Errorf("validate snapshot schedule: %w", err)
	}

	return &Service{
		logger:   logger,
		insights: insights,
		parser:   parser,
		schedule: schedule,
		tz:       tz,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the snapshotter component
func (s *Service) Name() string {
	return "capacity-snapshotter"
}

// Ping returns nil while the snapshot loop is running.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.doneCh:
		return fmt.Errorf("snapshot loop is not running")
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("snapshotter is not ready")
	}
}

// Start starts the snapshot loop in a goroutine
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "snapshotter is shutting down, skipping start")

		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed when the snapshotter is ready
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the snapshotter
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "snapshotter is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "snapshotter shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down snapshotter")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before snapshot loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "snapshot loop exited")
	}

	return nil
}

// run waits for each next cron occurrence and takes a snapshot there.
func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "snapshot-run")

	// Take the first snapshot immediately so gauges are populated
	// before the first scheduled occurrence.
	s.snapshot(ctx, logger)

	close(s.ready)

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating snapshot loop")

			return
		}

		now := time.Now()

		next, err := s.parser.NextAfter(s.schedule, s.tz, now)
		if err != nil {
			// Schedule was validated at construction; treat this as fatal for the loop.
			logger.ErrorContext(ctx, "failed to compute next snapshot time",
				"schedule", s.schedule,
				"reason", err,
			)

			return
		}

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
			s.snapshot(ctx, logger)
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating snapshot loop")

			return
		}
	}
}

// snapshot computes the cluster capacity once and publishes the totals.
// A failed snapshot only logs; the next occurrence retries.
func (s *Service) snapshot(ctx context.Context, logger *slog.Logger) {
	start := time.Now()

	capacity, err := s.insights.ClusterCapacityQuery(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "capacity snapshot failed",
			"duration", time.Since(start),
			"reason", err,
		)

		return
	}

	metrics.SetClusterCapacity(
		capacity.TotalCPUCores,
		capacity.AllocatedCPUCores,
		capacity.TotalMemoryGiB,
		capacity.AllocatedMemoryGiB,
	)

	logger.InfoContext(ctx, "capacity snapshot taken",
		"duration", time.Since(start),
		"nodes", capacity.NodeCount,
		"totalCpuCores", capacity.TotalCPUCores,
		"allocatedCpuCores", capacity.AllocatedCPUCores,
		"totalMemoryGib", capacity.TotalMemoryGiB,
		"allocatedMemoryGib", capacity.AllocatedMemoryGiB,
	)
}
