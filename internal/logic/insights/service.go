package insights

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// Service answers capacity questions about the cluster. Every operation
// is a single-pass read/compute/respond cycle over a freshly fetched
// inventory; no state is retained between invocations, so concurrent
// calls are safe and each reflects its own snapshot.
type Service struct {
	logger   *slog.Logger
	repo     Repository
	strategy ReferenceStrategy
}

// New creates a new insights service. A nil strategy defaults to
// first-match reference pod selection.
func New(
	logger *slog.Logger,
	repo Repository,
	strategy ReferenceStrategy,
) *Service {
	if strategy == nil {
		strategy = NewFirstMatchStrategy()
	}

	return &Service{
		logger:   logger,
		repo:     repo,
		strategy: strategy,
	}
}

// ClusterCapacityQuery sums every node's declared capacity and every
// pod's declared requests into a cluster-wide snapshot.
func (s *Service) ClusterCapacityQuery(ctx context.Context) (*ClusterCapacity, error) {
	nodes, err := s.repo.ListNodesQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNodes, err)
	}

	pods, err := s.repo.ListPodsQuery(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	capacity := &ClusterCapacity{
		NodeCount: len(nodes),
	}

	for i := range nodes {
		capacity.TotalCPUCores += ParseCores(nodes[i].CPUCapacity)
		capacity.TotalMemoryGiB += ParseGiB(nodes[i].MemoryCapacity)
	}

	// Every pod with declared requests counts here, scheduled or not.
	for i := range pods {
		cores, gib := podRequests(pods[i])
		capacity.AllocatedCPUCores += cores
		capacity.AllocatedMemoryGiB += gib
	}

	capacity.AvailableCPUCores = capacity.TotalCPUCores - capacity.AllocatedCPUCores
	capacity.AvailableMemoryGiB = capacity.TotalMemoryGiB - capacity.AllocatedMemoryGiB

	capacity.Explanation = fmt.Sprintf(
		"Cluster has %d nodes. Total capacity: %.2f CPU cores, %.2f GiB memory. "+
			"Allocated (requests): %.2f CPU cores (%.1f%%), %.2f GiB memory (%.1f%%). "+
			"Available: %.2f CPU cores, %.2f GiB memory.",
		capacity.NodeCount,
		capacity.TotalCPUCores, capacity.TotalMemoryGiB,
		capacity.AllocatedCPUCores, utilization(capacity.AllocatedCPUCores, capacity.TotalCPUCores),
		capacity.AllocatedMemoryGiB, utilization(capacity.AllocatedMemoryGiB, capacity.TotalMemoryGiB),
		capacity.AvailableCPUCores, capacity.AvailableMemoryGiB,
	)

	s.logger.DebugContext(ctx, "cluster capacity computed",
		"nodes", capacity.NodeCount,
		"pods", len(pods),
	)

	return capacity, nil
}

// CheckResourceFitQuery evaluates whether an explicit demand fits the
// currently available cluster capacity. Negative amounts are a caller
// contract violation and are rejected before any inventory fetch.
func (s *Service) CheckResourceFitQuery(
	ctx context.Context,
	cpuCores,
	memoryGiB float64,
) (*FitVerdict, error) {
	if cpuCores < 0 {
		return nil, fmt.Errorf("%w: cpu cores must be non-negative", ErrInvalidInput)
	}

	if memoryGiB < 0 {
		return nil, fmt.Errorf("%w: memory GiB must be non-negative", ErrInvalidInput)
	}

	capacity, err := s.ClusterCapacityQuery(ctx)
	if err != nil {
		return nil, err
	}

	verdict := &FitVerdict{
		Fits: capacity.AvailableCPUCores >= cpuCores &&
			capacity.AvailableMemoryGiB >= memoryGiB,
		AvailableCPUCores:        capacity.AvailableCPUCores,
		AvailableMemoryGiB:       capacity.AvailableMemoryGiB,
		CPUUtilizationPercent:    utilization(capacity.AllocatedCPUCores+cpuCores, capacity.TotalCPUCores),
		MemoryUtilizationPercent: utilization(capacity.AllocatedMemoryGiB+memoryGiB, capacity.TotalMemoryGiB),
	}

	if verdict.Fits {
		verdict.Explanation = fmt.Sprintf(
			"Resources fit in the cluster. Requested: %.2f CPU cores, %.2f GiB memory. "+
				"Available: %.2f CPU cores, %.2f GiB memory. "+
				"After allocation the cluster would be at %.1f%% CPU and %.1f%% memory utilization.",
			cpuCores, memoryGiB,
			verdict.AvailableCPUCores, verdict.AvailableMemoryGiB,
			verdict.CPUUtilizationPercent, verdict.MemoryUtilizationPercent,
		)

		return verdict, nil
	}

	var shortages strings.Builder

	if capacity.AvailableCPUCores < cpuCores {
		fmt.Fprintf(&shortages,
			" CPU shortage: %.2f cores needed but only %.2f available (shortfall: %.2f cores).",
			cpuCores, capacity.AvailableCPUCores, cpuCores-capacity.AvailableCPUCores,
		)
	}

	if capacity.AvailableMemoryGiB < memoryGiB {
		fmt.Fprintf(&shortages,
			" Memory shortage: %.2f GiB needed but only %.2f GiB available (shortfall: %.2f GiB).",
			memoryGiB, capacity.AvailableMemoryGiB, memoryGiB-capacity.AvailableMemoryGiB,
		)
	}

	verdict.Explanation = fmt.Sprintf(
		"Resources do not fit in the cluster. Requested: %.2f CPU cores, %.2f GiB memory. "+
			"Available: %.2f CPU cores, %.2f GiB memory.%s",
		cpuCores, memoryGiB,
		verdict.AvailableCPUCores, verdict.AvailableMemoryGiB,
		shortages.String(),
	)

	return verdict, nil
}

// NodeBreakdownQuery reports each node's capacity, the requests of pods
// scheduled on it (matched by exact node name) and its availability.
// Pods with no assigned node appear on no node here even though they
// count in the cluster-wide allocation; that asymmetry is intentional.
func (s *Service) NodeBreakdownQuery(ctx context.Context) (*NodeBreakdown, error) {
	nodes, err := s.repo.ListNodesQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNodes, err)
	}

	pods, err := s.repo.ListPodsQuery(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	breakdown := &NodeBreakdown{
		Nodes:      make([]NodeCapacity, 0, len(nodes)),
		TotalNodes: len(nodes),
	}

	for i := range nodes {
		nodeCapacity := NodeCapacity{
			Name:           nodes[i].Name,
			TotalCPUCores:  ParseCores(nodes[i].CPUCapacity),
			TotalMemoryGiB: ParseGiB(nodes[i].MemoryCapacity),
		}

		for j := range pods {
			if pods[j].NodeName != nodes[i].Name {
				continue
			}

			nodeCapacity.PodCount++

			cores, gib := podRequests(pods[j])
			nodeCapacity.AllocatedCPUCores += cores
			nodeCapacity.AllocatedMemoryGiB += gib
		}

		nodeCapacity.AvailableCPUCores = nodeCapacity.TotalCPUCores - nodeCapacity.AllocatedCPUCores
		nodeCapacity.AvailableMemoryGiB = nodeCapacity.TotalMemoryGiB - nodeCapacity.AllocatedMemoryGiB

		breakdown.Nodes = append(breakdown.Nodes, nodeCapacity)
	}

	breakdown.Explanation = fmt.Sprintf(
		"Cluster has %d nodes. Each node shows total capacity, allocated requests, "+
			"available resources and pod count.",
		breakdown.TotalNodes,
	)

	return breakdown, nil
}

// NamespaceUsageQuery aggregates pod requests and limits per namespace.
// Namespaces from the listing always appear, with zero totals when they
// hold no pods; results are sorted by descending CPU requests.
func (s *Service) NamespaceUsageQuery(ctx context.Context) (*NamespaceUsageReport, error) {
	namespaces, err := s.repo.ListNamespacesQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNamespaces, err)
	}

	pods, err := s.repo.ListPodsQuery(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	usages := make([]NamespaceUsage, 0, len(namespaces))
	index := make(map[string]int, len(namespaces))

	for i := range namespaces {
		index[namespaces[i].Name] = len(usages)
		usages = append(usages, NamespaceUsage{Namespace: namespaces[i].Name})
	}

	for i := range pods {
		name := pods[i].Namespace
		if name == "" {
			name = defaultNamespace
		}

		at, ok := index[name]
		if !ok {
			at = len(usages)
			index[name] = at
			usages = append(usages, NamespaceUsage{Namespace: name})
		}

		usages[at].PodCount++

		reqCores, reqGiB := podRequests(pods[i])
		limCores, limGiB := podLimits(pods[i])

		usages[at].CPURequestsCores += reqCores
		usages[at].MemoryRequestsGiB += reqGiB
		usages[at].CPULimitsCores += limCores
		usages[at].MemoryLimitsGiB += limGiB
	}

	// Stable so that ties keep listing order.
	sort.SliceStable(usages, func(i, j int) bool {
		return usages[i].CPURequestsCores > usages[j].CPURequestsCores
	})

	report := &NamespaceUsageReport{
		Namespaces:      usages,
		TotalNamespaces: len(usages),
	}

	report.Explanation = fmt.Sprintf(
		"Cluster has %d namespaces. Usage shows CPU/memory requests and limits "+
			"per namespace, sorted by CPU requests (descending).",
		report.TotalNamespaces,
	)

	return report, nil
}

// PodResourceStatsQuery ranks pods by declared CPU requests and returns
// the top consumers together with the true total pod count.
func (s *Service) PodResourceStatsQuery(ctx context.Context) (*PodResourceStats, error) {
	pods, err := s.repo.ListPodsQuery(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	profiles := make([]PodResourceProfile, 0, len(pods))
	for i := range pods {
		profiles = append(profiles, podProfile(pods[i]))
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].CPURequestsMillicores > profiles[j].CPURequestsMillicores
	})

	stats := &PodResourceStats{
		TotalPods: len(profiles),
		SortedBy:  podSortCriterion,
	}

	if len(profiles) > topPodsLimit {
		profiles = profiles[:topPodsLimit]
	}

	stats.TopPods = profiles

	stats.Explanation = fmt.Sprintf(
		"Showing top %d pods (out of %d) by CPU requests. Each pod shows CPU/memory "+
			"requests and limits along with the node it is scheduled on.",
		len(stats.TopPods), stats.TotalPods,
	)

	return stats, nil
}

// CheckReplicaCapacityQuery evaluates whether the cluster can absorb
// replicaCount more replicas of an application, inferring per-replica
// cost from a reference pod picked among pods in the namespace whose
// name contains appName.
func (s *Service) CheckReplicaCapacityQuery(
	ctx context.Context,
	appName,
	namespace string,
	replicaCount int,
) (*ReplicaVerdict, error) {
	if replicaCount <= 0 {
		return nil, fmt.Errorf("%w: replica count must be positive", ErrInvalidInput)
	}

	if appName == "" {
		return nil, fmt.Errorf("%w: application name cannot be empty", ErrInvalidInput)
	}

	if namespace == "" {
		return nil, fmt.Errorf("%w: namespace cannot be empty", ErrInvalidInput)
	}

	pods, err := s.repo.ListPodsQuery(ctx, namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	matches := make([]Pod, 0, len(pods))
	for i := range pods {
		if strings.Contains(pods[i].Name, appName) {
			matches = append(matches, pods[i])
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf(
			"%w: no pods found matching %q in namespace %q",
			ErrNoMatchingPods, appName, namespace,
		)
	}

	reference := s.strategy.Select(matches)

	s.logger.DebugContext(ctx, "reference pod selected",
		"strategy", s.strategy.Name(),
		"pod", reference.Name,
		"namespace", namespace,
		"matches", len(matches),
	)

	cpuPerReplica, memoryPerReplica := podRequests(reference)

	totalCPU := cpuPerReplica * float64(replicaCount)
	totalMemory := memoryPerReplica * float64(replicaCount)

	capacity, err := s.ClusterCapacityQuery(ctx)
	if err != nil {
		return nil, err
	}

	verdict := &ReplicaVerdict{
		Fits: capacity.AvailableCPUCores >= totalCPU &&
			capacity.AvailableMemoryGiB >= totalMemory,
		ReferencePod:           reference.Name,
		CPUPerReplicaCores:     cpuPerReplica,
		MemoryPerReplicaGiB:    memoryPerReplica,
		TotalCPURequiredCores:  totalCPU,
		TotalMemoryRequiredGiB: totalMemory,
		AvailableCPUCores:      capacity.AvailableCPUCores,
		AvailableMemoryGiB:     capacity.AvailableMemoryGiB,
		CurrentPodCount:        len(matches),
		ProjectedCPUUtilizationPercent: utilization(
			capacity.AllocatedCPUCores+totalCPU, capacity.TotalCPUCores),
		ProjectedMemoryUtilizationPercent: utilization(
			capacity.AllocatedMemoryGiB+totalMemory, capacity.TotalMemoryGiB),
	}

	verdict.Explanation = s.explainReplicaVerdict(verdict, capacity, appName, namespace, replicaCount)

	return verdict, nil
}

func (s *Service) explainReplicaVerdict(
	verdict *ReplicaVerdict,
	capacity *ClusterCapacity,
	appName,
	namespace string,
	replicaCount int,
) string {
	var out strings.Builder

	if verdict.Fits {
		fmt.Fprintf(&out,
			"Capacity check passed: %d more replicas of %q fit in namespace %q. ",
			replicaCount, appName, namespace,
		)
	} else {
		fmt.Fprintf(&out,
			"Capacity check failed: cannot add %d replicas of %q in namespace %q. ",
			replicaCount, appName, namespace,
		)
	}

	fmt.Fprintf(&out,
		"Reference pod %s needs %.3f CPU cores and %.3f GiB memory per replica; "+
			"%d replicas need %.3f cores and %.3f GiB in total. ",
		verdict.ReferencePod,
		verdict.CPUPerReplicaCores, verdict.MemoryPerReplicaGiB,
		replicaCount,
		verdict.TotalCPURequiredCores, verdict.TotalMemoryRequiredGiB,
	)

	if verdict.Fits {
		fmt.Fprintf(&out,
			"Available: %.3f CPU cores, %.3f GiB memory. "+
				"Projected utilization after adding replicas: %.1f%% CPU, %.1f%% memory. ",
			verdict.AvailableCPUCores, verdict.AvailableMemoryGiB,
			verdict.ProjectedCPUUtilizationPercent, verdict.ProjectedMemoryUtilizationPercent,
		)
	} else {
		if capacity.AvailableCPUCores < verdict.TotalCPURequiredCores {
			fmt.Fprintf(&out,
				"CPU shortage: %.3f cores needed but only %.3f available "+
					"(shortfall: %.3f cores); at most %d replicas fit by CPU. ",
				verdict.TotalCPURequiredCores, capacity.AvailableCPUCores,
				verdict.TotalCPURequiredCores-capacity.AvailableCPUCores,
				maxReplicas(capacity.AvailableCPUCores, verdict.CPUPerReplicaCores),
			)
		}

		if capacity.AvailableMemoryGiB < verdict.TotalMemoryRequiredGiB {
			fmt.Fprintf(&out,
				"Memory shortage: %.3f GiB needed but only %.3f GiB available "+
					"(shortfall: %.3f GiB); at most %d replicas fit by memory. ",
				verdict.TotalMemoryRequiredGiB, capacity.AvailableMemoryGiB,
				verdict.TotalMemoryRequiredGiB-capacity.AvailableMemoryGiB,
				maxReplicas(capacity.AvailableMemoryGiB, verdict.MemoryPerReplicaGiB),
			)
		}
	}

	fmt.Fprintf(&out, "Current pods matching %q: %d.", appName, verdict.CurrentPodCount)

	return out.String()
}

// maxReplicas is the whole-replica count affordable by the available
// capacity, 0 when the per-replica demand is 0 (no division by zero).
func maxReplicas(available, perReplica float64) int {
	if perReplica <= 0 {
		return 0
	}

	count := math.Floor(available / perReplica)
	if count < 0 {
		return 0
	}

	return int(count)
}
