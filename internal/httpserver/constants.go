package httpserver

import "time"

const (
	defaultPort = "8080"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb
)

// Operation labels used on the request and error counters.
const (
	opClusterCapacity = "get_cluster_capacity"
	opResourceFit     = "check_resource_fit"
	opNodeCapacity    = "get_node_capacity"
	opNamespaceUsage  = "get_namespace_usage"
	opPodResources    = "get_pod_resources"
	opReplicaCapacity = "check_replica_capacity"
)
