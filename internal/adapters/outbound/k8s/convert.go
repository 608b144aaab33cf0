package k8s

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

// Conversion keeps resource fields as their canonical quantity string
// encodings; interpretation belongs to the insights normalizer. Absent
// fields stay empty and aggregate as zero.

func toDomainNode(node *corev1.Node) insights.Node {
	out := insights.Node{
		Name: node.Name,
	}

	if cpu, ok := node.Status.Capacity[corev1.ResourceCPU]; ok {
		out.CPUCapacity = cpu.String()
	}

	if memory, ok := node.Status.Capacity[corev1.ResourceMemory]; ok {
		out.MemoryCapacity = memory.String()
	}

	return out
}

func toDomainPod(pod *corev1.Pod) insights.Pod {
	out := insights.Pod{
		Name:       pod.Name,
		Namespace:  pod.Namespace,
		NodeName:   pod.Spec.NodeName,
		Containers: make([]insights.Container, 0, len(pod.Spec.Containers)),
	}

	for i := range pod.Spec.Containers {
		out.Containers = append(out.Containers, toDomainContainer(&pod.Spec.Containers[i]))
	}

	return out
}

func toDomainContainer(container *corev1.Container) insights.Container {
	out := insights.Container{}

	if cpu, ok := container.Resources.Requests[corev1.ResourceCPU]; ok {
		out.CPURequest = cpu.String()
	}

	if memory, ok := container.Resources.Requests[corev1.ResourceMemory]; ok {
		out.MemoryRequest = memory.String()
	}

	if cpu, ok := container.Resources.Limits[corev1.ResourceCPU]; ok {
		out.CPULimit = cpu.String()
	}

	if memory, ok := container.Resources.Limits[corev1.ResourceMemory]; ok {
		out.MemoryLimit = memory.String()
	}

	return out
}
