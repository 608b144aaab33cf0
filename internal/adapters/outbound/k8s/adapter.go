package k8s

import (
	"context"
	"fmt"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

type adapter struct {
	logger    *slog.Logger
	clientset kubernetes.Interface
}

// New creates a new K8s inventory adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
) insights.Repository {
	return &adapter{
		logger:    logger,
		clientset: clientset,
	}
}

var _ insights.Repository = (*adapter)(nil)

func (a *adapter) ListNodesQuery(ctx context.Context) ([]insights.Node, error) {
	nodeList, err := a.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	nodes := make([]insights.Node, 0, len(nodeList.Items))
	for i := range nodeList.Items {
		nodes = append(nodes, toDomainNode(&nodeList.Items[i]))
	}

	return nodes, nil
}

// ListPodsQuery lists pods in the given namespace; an empty namespace
// lists pods cluster-wide.
func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace string,
) ([]insights.Pod, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		if namespace == "" {
			return nil, fmt.Errorf("list pods: %w", err)
		}

		return nil, fmt.Errorf("list pods in namespace %s: %w", namespace, err)
	}

	pods := make([]insights.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) ListNamespacesQuery(ctx context.Context) ([]insights.Namespace, error) {
	namespaceList, err := a.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}

	namespaces := make([]insights.Namespace, 0, len(namespaceList.Items))
	for i := range namespaceList.Items {
		namespaces = append(namespaces, insights.Namespace{Name: namespaceList.Items[i].Name})
	}

	return namespaces, nil
}
