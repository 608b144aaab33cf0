package app

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/alpha-hack-program/cluster-insights/internal/adapters/outbound/k8s"
	"github.com/alpha-hack-program/cluster-insights/internal/config"
	"github.com/alpha-hack-program/cluster-insights/internal/httpserver"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/cronparser"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/pinger"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/shutdown"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/snapshotter"
)

const snapshotScheduleOff = "off"

type App struct {
	logger          *slog.Logger
	appState        appstater
	shutdownHandler *shutdown.Handler
	pingers         *pinger.Service
	servers         []appServer
}

// New creates a new application instance with all dependencies wired.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers *pinger.Service,
) (*App, error) {
	// Create K8s config
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	// Create K8s clientset
	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	// Create secondary adapter (K8s adapter)
	inventoryRepo := k8s.New(logger, clientset)

	// Create logic service (inject repository adapter)
	insightsService := insights.New(
		logger,
		inventoryRepo,
		insights.NewFirstMatchStrategy(),
	)

	httpServer := httpserver.New(logger, appState, insightsService, cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort)

	servers := []appServer{metricsServer, httpServer}

	// Snapshotting is on by default; "off" disables it.
	if cfg.SnapshotSchedule != snapshotScheduleOff {
		snapshotService, err := snapshotter.New(
			logger,
			insightsService,
			cronparser.New(),
			cfg.SnapshotSchedule,
			cfg.SnapshotTZ,
		)
		if err != nil {
			return nil, fmt.Errorf("new snapshotter: %w", err)
		}

		servers = append(servers, snapshotService)
	}

	application := &App{
		logger:          logger,
		appState:        appState,
		shutdownHandler: shutdown.New(logger, appState),
		pingers:         pingers,
		servers:         servers,
	}

	// Shutdown order is the reverse of registration: the snapshotter and
	// servers go down before the pinger service.
	if err := appState.RegisterShutdowner(pingers); err != nil {
		return nil, fmt.Errorf("register pinger shutdowner: %w", err)
	}

	for _, server := range application.servers {
		if err := appState.RegisterShutdowner(server); err != nil {
			return nil, fmt.Errorf("register %s shutdowner: %w", server.Name(), err)
		}

		if err := appState.RegisterPinger(server); err != nil {
			return nil, fmt.Errorf("register %s pinger: %w", server.Name(), err)
		}
	}

	return application, nil
}

// Run starts the application and blocks until context is cancelled.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.shutdownHandler.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.servers)+1)

	for _, server := range a.servers {
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", server.Name(), err)
		}

		readyChans = append(readyChans, server.Ready())
	}

	if err := a.pingers.Start(ctx); err != nil {
		return fmt.Errorf("start pinger service: %w", err)
	}

	readyChans = append(readyChans, a.pingers.Ready())

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "context cancelled before all components became ready")

		return a.appState.Shutdown(ctx)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	a.logger.InfoContext(ctx, "application running")

	<-ctx.Done()

	return a.appState.Shutdown(ctx)
}

// allChannelsClose returns a channel that closes once every input channel
// has closed or the context is cancelled, whichever comes first.
func allChannelsClose(
	ctx context.Context,
	logger *slog.Logger,
	chans ...<-chan struct{},
) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.WarnContext(ctx, "context cancelled while waiting for components readiness")

				return
			}
		}
	}()

	return out
}
