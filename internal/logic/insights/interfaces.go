package insights

import "context"

// Repository is the port interface for the cluster inventory source.
// Implementations are provided by adapters in the outbound layer.
// Every query returns a fresh listing; nothing is cached between calls.
type Repository interface {
	ListNodesQuery(ctx context.Context) ([]Node, error)

	// ListPodsQuery lists pods in the given namespace; an empty
	// namespace means cluster-wide.
	ListPodsQuery(ctx context.Context, namespace string) ([]Pod, error)

	ListNamespacesQuery(ctx context.Context) ([]Namespace, error)
}

// ReferenceStrategy picks the reference pod used to infer per-replica
// resource cost in the replica capacity check. The slice is never empty.
type ReferenceStrategy interface {
	Name() string
	Select(matches []Pod) Pod
}
