package insights

// Pure folds over inventory descriptors. Everything works in canonical
// units (cores, GiB) produced by the normalizer; unset fields fold in
// as zero.

// podRequests sums the declared requests of every container in the pod.
func podRequests(pod Pod) (cores, gib float64) {
	for i := range pod.Containers {
		cores += ParseCores(pod.Containers[i].CPURequest)
		gib += ParseGiB(pod.Containers[i].MemoryRequest)
	}

	return cores, gib
}

// podLimits sums the declared limits of every container in the pod.
func podLimits(pod Pod) (cores, gib float64) {
	for i := range pod.Containers {
		cores += ParseCores(pod.Containers[i].CPULimit)
		gib += ParseGiB(pod.Containers[i].MemoryLimit)
	}

	return cores, gib
}

// podProfile folds one pod into integer sub-units for ranking and display.
func podProfile(pod Pod) PodResourceProfile {
	profile := PodResourceProfile{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Node:      pod.NodeName,
	}

	if profile.Namespace == "" {
		profile.Namespace = defaultNamespace
	}

	if profile.Node == "" {
		profile.Node = unscheduledNode
	}

	for i := range pod.Containers {
		profile.CPURequestsMillicores += ToMillicores(ParseCores(pod.Containers[i].CPURequest))
		profile.MemoryRequestsMiB += ToMebibytes(ParseGiB(pod.Containers[i].MemoryRequest))
		profile.CPULimitsMillicores += ToMillicores(ParseCores(pod.Containers[i].CPULimit))
		profile.MemoryLimitsMiB += ToMebibytes(ParseGiB(pod.Containers[i].MemoryLimit))
	}

	return profile
}

// utilization returns allocated/total as a percentage, 0 when total is
// zero (the ratio is undefined there; 0 by convention, never a division).
func utilization(allocated, total float64) float64 {
	if total <= 0 {
		return 0
	}

	return allocated / total * percent
}
