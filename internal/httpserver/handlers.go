package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alpha-hack-program/cluster-insights/internal/infra/metrics"
	"github.com/alpha-hack-program/cluster-insights/internal/infra/pinger"
	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

type statusResponse struct {
	State      string                        `json:"state"`
	Uptime     string                        `json:"uptime"`
	StartTime  time.Time                     `json:"startTime"`
	UptimeSec  float64                       `json:"uptimeSeconds"`
	Components map[string]*pinger.Statistics `json:"components,omitempty"`
}

type resourceFitRequest struct {
	CPUCores  float64 `json:"cpuCores"`
	MemoryGiB float64 `json:"memoryGib"`
}

type replicaCapacityRequest struct {
	AppName      string `json:"appName"`
	Namespace    string `json:"namespace"`
	ReplicaCount int    `json:"replicaCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	if !s.appState.IsHealthy() {
		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if !s.appState.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	uptime := s.appState.GetUptime()

	response := statusResponse{
		State:      string(s.appState.GetState()),
		Uptime:     uptime.String(),
		StartTime:  s.appState.GetStartTime(),
		UptimeSec:  uptime.Seconds(),
		Components: s.appState.GetAllStats(),
	}

	s.writeJSON(w, r, http.StatusOK, response)
}

func (s *Server) handleClusterCapacity(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opClusterCapacity)
	defer metrics.ObserveRequestDuration(opClusterCapacity, time.Now())

	capacity, err := s.insights.ClusterCapacityQuery(r.Context())
	if err != nil {
		s.writeError(w, r, opClusterCapacity, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, capacity)
}

func (s *Server) handleResourceFit(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opResourceFit)
	defer metrics.ObserveRequestDuration(opResourceFit, time.Now())

	var request resourceFitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeDecodeError(w, r, opResourceFit, err)

		return
	}

	verdict, err := s.insights.CheckResourceFitQuery(r.Context(), request.CPUCores, request.MemoryGiB)
	if err != nil {
		s.writeError(w, r, opResourceFit, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, verdict)
}

func (s *Server) handleReplicaCapacity(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opReplicaCapacity)
	defer metrics.ObserveRequestDuration(opReplicaCapacity, time.Now())

	var request replicaCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeDecodeError(w, r, opReplicaCapacity, err)

		return
	}

	verdict, err := s.insights.CheckReplicaCapacityQuery(
		r.Context(),
		request.AppName,
		request.Namespace,
		request.ReplicaCount,
	)
	if err != nil {
		s.writeError(w, r, opReplicaCapacity, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, verdict)
}

func (s *Server) handleNodeCapacity(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opNodeCapacity)
	defer metrics.ObserveRequestDuration(opNodeCapacity, time.Now())

	breakdown, err := s.insights.NodeBreakdownQuery(r.Context())
	if err != nil {
		s.writeError(w, r, opNodeCapacity, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, breakdown)
}

func (s *Server) handleNamespaceUsage(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opNamespaceUsage)
	defer metrics.ObserveRequestDuration(opNamespaceUsage, time.Now())

	report, err := s.insights.NamespaceUsageQuery(r.Context())
	if err != nil {
		s.writeError(w, r, opNamespaceUsage, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handlePodResources(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRequest(opPodResources)
	defer metrics.ObserveRequestDuration(opPodResources, time.Now())

	stats, err := s.insights.PodResourceStatsQuery(r.Context())
	if err != nil {
		s.writeError(w, r, opPodResources, err)

		return
	}

	s.writeJSON(w, r, http.StatusOK, stats)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

// writeDecodeError rejects a request whose body could not be parsed.
func (s *Server) writeDecodeError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	metrics.RecordError(operation)

	s.logger.DebugContext(r.Context(), "failed to decode request body",
		"operation", operation,
		"reason", err,
	)

	s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
}

// writeError maps service errors to HTTP statuses: invalid input is the
// caller's fault, a missing reference pod is not found, anything else is
// an upstream inventory failure.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	metrics.RecordError(operation)

	status := http.StatusBadGateway

	switch {
	case errors.Is(err, insights.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, insights.ErrNoMatchingPods):
		status = http.StatusNotFound
	}

	s.logger.ErrorContext(r.Context(), "operation failed",
		"operation", operation,
		"status", status,
		"reason", err,
	)

	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
