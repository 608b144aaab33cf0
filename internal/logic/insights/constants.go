package insights

const (
	// topPodsLimit caps the pod list returned by PodResourceStatsQuery;
	// the true pod count is reported separately.
	topPodsLimit = 20

	// unscheduledNode is the sentinel for pods with no assigned node.
	unscheduledNode = "unscheduled"

	// defaultNamespace is used when a pod reports no namespace.
	defaultNamespace = "default"

	// podSortCriterion labels the sort order of PodResourceStatsQuery.
	podSortCriterion = "CPU requests (descending)"

	percent = 100.0
)
