package app

import (
	"context"
	"os"
	"time"

	"github.com/alpha-hack-program/cluster-insights/internal/infra/appstate"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/pinger"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	GetAllStats() map[string]*pinger.Statistics
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	SetTerminating(ctx context.Context) error
	GetStartTime() time.Time
	GetState() appstate.State
	GetUptime() time.Duration
	IsHealthy() bool
	IsReady() bool
	Shutdown(ctx context.Context) error
}

// appServer is a startable component with a readiness channel that can
// also be pinged and shut down.
type appServer interface {
	pinger.Pinger
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}
