package httpserver_test

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alpha-hack-program/cluster-insights/internal/httpserver"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/appstate"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/pinger"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

type noopInsighter struct{}

func (noopInsighter) ClusterCapacityQuery(context.Context) (*insights.ClusterCapacity, error) {
	return &insights.ClusterCapacity{}, nil
}

func (noopInsighter) CheckResourceFitQuery(_ context.Context, _, _ float64) (*insights.FitVerdict, error) {
	return &insights.FitVerdict{}, nil
}

func (noopInsighter) NodeBreakdownQuery(context.Context) (*insights.NodeBreakdown, error) {
	return &insights.NodeBreakdown{}, nil
}

func (noopInsighter) NamespaceUsageQuery(context.Context) (*insights.NamespaceUsageReport, error) {
	return &insights.NamespaceUsageReport{}, nil
}

func (noopInsighter) PodResourceStatsQuery(context.Context) (*insights.PodResourceStats, error) {
	return &insights.PodResourceStats{}, nil
}

func (noopInsighter) CheckReplicaCapacityQuery(_ context.Context, _, _ string, _ int) (*insights.ReplicaVerdict, error) {
	return &insights.ReplicaVerdict{}, nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	quit := make(chan os.Signal, 1)

	quit <- syscall.SIGTERM

	close(quit)

	pingerSvc := pinger.New(logger, time.Second)
	appState := appstate.New(logger, time.Now(), quit, pingerSvc)

	t.Run("empty port uses default", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, appState, noopInsighter{}, "")
		require.NotNil(t, srv)
	})

	t.Run("non-empty port is used", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, appState, noopInsighter{}, "9191")
		require.NotNil(t, srv)
	})
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	quit := make(chan os.Signal, 1)
	pingerSvc := pinger.New(logger, time.Second)
	appState := appstate.New(logger, time.Now(), quit, pingerSvc)
	srv := httpserver.New(logger, appState, noopInsighter{}, "")

	require.Equal(t, "http-server", srv.Name())
}

func TestServer_Ping(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("before ready returns error", func(t *testing.T) {
		t.Parallel()

		quit := make(chan os.Signal, 1)
		pingerSvc := pinger.New(logger, time.Second)
		appState := appstate.New(logger, time.Now(), quit, pingerSvc)
		srv := httpserver.New(logger, appState, noopInsighter{}, "")

		err := srv.Ping(t.Context())
		require.Error(t, err)
	})

	t.Run("after ready returns nil", func(t *testing.T) {
		t.Parallel()

		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		pingerSvc := pinger.New(logger, time.Second)
		appState := appstate.New(logger, time.Now(), quit, pingerSvc)
		require.NoError(t, appState.SetStarting(t.Context()))
		require.NoError(t, appState.SetRunning(t.Context()))

		srv := httpserver.New(logger, appState, noopInsighter{}, "0")

		ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)

		defer cancel()

		require.NoError(t, srv.Start(ctx))

		select {
		case <-srv.Ready():
		case <-time.After(1 * time.Second):
			t.Fatal("server did not become ready")
		}

		require.NoError(t, srv.Ping(t.Context()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()

		_ = srv.Shutdown(shutdownCtx)
	})
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	srv := httpserver.NewMetricsServer(logger, "0")
	require.Equal(t, "metrics-server", srv.Name())

	require.Error(t, srv.Ping(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))

	select {
	case <-srv.Ready():
	case <-time.After(1 * time.Second):
		t.Fatal("metrics server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
}
