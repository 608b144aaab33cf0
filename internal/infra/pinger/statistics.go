package pinger

import (
	"sync"
	"time"
)

// Stats tracks statistics for a single pinger
type Stats struct {
	Name         string
	LastRun      time.Time
	LastError    error
	SuccessCount int
	ErrorCount   int
	mu           sync.RWMutex
}

// NewPingerStats creates a new Stats instance
func NewPingerStats(name string) *Stats {
	return &Stats{
		Name: name,
	}
}

// Statistics is a read-only snapshot of a pinger's state, safe to encode.
type Statistics struct {
	IsHealthy    bool      `json:"isHealthy"`
	LastRun      time.Time `json:"lastRun"`
	LastError    string    `json:"lastError,omitempty"`
	SuccessCount int       `json:"successCount"`
	ErrorCount   int       `json:"errorCount"`
}

// GetStatistics computes and returns a snapshot from Stats
func GetStatistics(stats *Stats) *Statistics {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	snapshot := &Statistics{
		IsHealthy:    stats.LastError == nil,
		LastRun:      stats.LastRun,
		SuccessCount: stats.SuccessCount,
		ErrorCount:   stats.ErrorCount,
	}

	if stats.LastError != nil {
		snapshot.LastError = stats.LastError.Error()
	}

	return snapshot
}
