package insights

// Inventory descriptors handed over by the outbound adapter. Resource
// fields keep their raw quantity encodings; only the normalizer in this
// package interprets them.

// Node is a cluster node with its declared capacity.
type Node struct {
	Name           string
	CPUCapacity    string
	MemoryCapacity string
}

// Container carries the declared requests and limits of one container.
// Unset fields are empty strings and aggregate as zero.
type Container struct {
	CPURequest    string
	MemoryRequest string
	CPULimit      string
	MemoryLimit   string
}

// Pod is a pod with its per-container resource declarations.
// NodeName is empty when the pod is not scheduled on any node.
type Pod struct {
	Name       string
	Namespace  string
	NodeName   string
	Containers []Container
}

// Namespace is a namespace listing entry.
type Namespace struct {
	Name string
}

// Result records returned by the query operations.

// ClusterCapacity is the cluster-wide capacity snapshot.
type ClusterCapacity struct {
	TotalCPUCores      float64 `json:"totalCpuCores"`
	TotalMemoryGiB     float64 `json:"totalMemoryGib"`
	AllocatedCPUCores  float64 `json:"allocatedCpuCores"`
	AllocatedMemoryGiB float64 `json:"allocatedMemoryGib"`
	AvailableCPUCores  float64 `json:"availableCpuCores"`
	AvailableMemoryGiB float64 `json:"availableMemoryGib"`
	NodeCount          int     `json:"nodeCount"`
	Explanation        string  `json:"explanation"`
}

// FitVerdict is the result of a direct resource fit check.
type FitVerdict struct {
	Fits                     bool    `json:"fits"`
	AvailableCPUCores        float64 `json:"availableCpuCores"`
	AvailableMemoryGiB       float64 `json:"availableMemoryGib"`
	CPUUtilizationPercent    float64 `json:"cpuUtilizationPercent"`
	MemoryUtilizationPercent float64 `json:"memoryUtilizationPercent"`
	Explanation              string  `json:"explanation"`
}

// NodeCapacity is one node's totals, allocations and availability.
type NodeCapacity struct {
	Name               string  `json:"name"`
	TotalCPUCores      float64 `json:"totalCpuCores"`
	TotalMemoryGiB     float64 `json:"totalMemoryGib"`
	AllocatedCPUCores  float64 `json:"allocatedCpuCores"`
	AllocatedMemoryGiB float64 `json:"allocatedMemoryGib"`
	AvailableCPUCores  float64 `json:"availableCpuCores"`
	AvailableMemoryGiB float64 `json:"availableMemoryGib"`
	PodCount           int     `json:"podCount"`
}

// NodeBreakdown is the per-node capacity report.
type NodeBreakdown struct {
	Nodes       []NodeCapacity `json:"nodes"`
	TotalNodes  int            `json:"totalNodes"`
	Explanation string         `json:"explanation"`
}

// NamespaceUsage is one namespace's aggregated requests and limits.
type NamespaceUsage struct {
	Namespace         string  `json:"namespace"`
	CPURequestsCores  float64 `json:"cpuRequestsCores"`
	MemoryRequestsGiB float64 `json:"memoryRequestsGib"`
	CPULimitsCores    float64 `json:"cpuLimitsCores"`
	MemoryLimitsGiB   float64 `json:"memoryLimitsGib"`
	PodCount          int     `json:"podCount"`
}

// NamespaceUsageReport is the per-namespace usage report.
type NamespaceUsageReport struct {
	Namespaces      []NamespaceUsage `json:"namespaces"`
	TotalNamespaces int              `json:"totalNamespaces"`
	Explanation     string           `json:"explanation"`
}

// PodResourceProfile is one pod's resource declarations in integer
// sub-units, chosen for lossless ranking and display.
type PodResourceProfile struct {
	Name                  string `json:"name"`
	Namespace             string `json:"namespace"`
	CPURequestsMillicores int64  `json:"cpuRequestsMillicores"`
	MemoryRequestsMiB     int64  `json:"memoryRequestsMib"`
	CPULimitsMillicores   int64  `json:"cpuLimitsMillicores"`
	MemoryLimitsMiB       int64  `json:"memoryLimitsMib"`
	Node                  string `json:"node"`
}

// PodResourceStats is the top-pods-by-consumption report. TopPods is
// truncated; TotalPods is the true pod count.
type PodResourceStats struct {
	TopPods     []PodResourceProfile `json:"topPods"`
	TotalPods   int                  `json:"totalPods"`
	SortedBy    string               `json:"sortedBy"`
	Explanation string               `json:"explanation"`
}

// ReplicaVerdict is the result of a replica capacity check.
type ReplicaVerdict struct {
	Fits                              bool    `json:"fits"`
	ReferencePod                      string  `json:"referencePod"`
	CPUPerReplicaCores                float64 `json:"cpuPerReplicaCores"`
	MemoryPerReplicaGiB               float64 `json:"memoryPerReplicaGib"`
	TotalCPURequiredCores             float64 `json:"totalCpuRequiredCores"`
	TotalMemoryRequiredGiB            float64 `json:"totalMemoryRequiredGib"`
	AvailableCPUCores                 float64 `json:"availableCpuCores"`
	AvailableMemoryGiB                float64 `json:"availableMemoryGib"`
	CurrentPodCount                   int     `json:"currentPodCount"`
	ProjectedCPUUtilizationPercent    float64 `json:"projectedCpuUtilizationPercent"`
	ProjectedMemoryUtilizationPercent float64 `json:"projectedMemoryUtilizationPercent"`
	Explanation                       string  `json:"explanation"`
}
