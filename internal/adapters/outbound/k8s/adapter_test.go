package k8s_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	fakeclient "k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/alpha-hack-program/cluster-insights/internal/adapters/outbound/k8s"
)

func newNode(name, cpu, memory string) *corev1.Node {
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Status: corev1.NodeStatus{
			Capacity: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse(cpu),
				corev1.ResourceMemory: resource.MustParse(memory),
			},
		},
	}
}

func newPod(name, namespace, node string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: corev1.PodSpec{
			NodeName: node,
			Containers: []corev1.Container{
				{
					Name: "main",
					Resources: corev1.ResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceCPU:    resource.MustParse("500m"),
							corev1.ResourceMemory: resource.MustParse("512Mi"),
						},
						Limits: corev1.ResourceList{
							corev1.ResourceCPU:    resource.MustParse("1"),
							corev1.ResourceMemory: resource.MustParse("1Gi"),
						},
					},
				},
			},
		},
	}
}

func TestAdapter_ListNodesQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns nodes with quantity encodings", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(newNode("node-a", "8", "32Gi"))
		repo := k8s.New(slog.Default(), clientset)

		nodes, err := repo.ListNodesQuery(t.Context())
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		require.Equal(t, "node-a", nodes[0].Name)
		require.Equal(t, "8", nodes[0].CPUCapacity)
		require.Equal(t, "32Gi", nodes[0].MemoryCapacity)
	})

	t.Run("node without capacity yields empty encodings", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(&corev1.Node{
			ObjectMeta: metav1.ObjectMeta{Name: "bare"},
		})
		repo := k8s.New(slog.Default(), clientset)

		nodes, err := repo.ListNodesQuery(t.Context())
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		require.Empty(t, nodes[0].CPUCapacity)
		require.Empty(t, nodes[0].MemoryCapacity)
	})

	t.Run("listing failure is wrapped", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset()
		clientset.PrependReactor("list", "nodes",
			func(k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, errors.New("apiserver unavailable")
			})

		repo := k8s.New(slog.Default(), clientset)

		_, err := repo.ListNodesQuery(t.Context())
		require.Error(t, err)
		require.Contains(t, err.Error(), "list nodes")
	})
}

func TestAdapter_ListPodsQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty namespace lists cluster-wide", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(
			newPod("web-1", "default", "node-a"),
			newPod("worker-1", "jobs", "node-b"),
		)
		repo := k8s.New(slog.Default(), clientset)

		pods, err := repo.ListPodsQuery(t.Context(), "")
		require.NoError(t, err)
		require.Len(t, pods, 2)
	})

	t.Run("namespace scopes the listing", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(
			newPod("web-1", "default", "node-a"),
			newPod("worker-1", "jobs", "node-b"),
		)
		repo := k8s.New(slog.Default(), clientset)

		pods, err := repo.ListPodsQuery(t.Context(), "jobs")
		require.NoError(t, err)
		require.Len(t, pods, 1)
		require.Equal(t, "worker-1", pods[0].Name)
	})

	t.Run("container resources keep their encodings", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(newPod("web-1", "default", "node-a"))
		repo := k8s.New(slog.Default(), clientset)

		pods, err := repo.ListPodsQuery(t.Context(), "default")
		require.NoError(t, err)
		require.Len(t, pods, 1)
		require.Equal(t, "node-a", pods[0].NodeName)
		require.Len(t, pods[0].Containers, 1)
		require.Equal(t, "500m", pods[0].Containers[0].CPURequest)
		require.Equal(t, "512Mi", pods[0].Containers[0].MemoryRequest)
		require.Equal(t, "1", pods[0].Containers[0].CPULimit)
		require.Equal(t, "1Gi", pods[0].Containers[0].MemoryLimit)
	})

	t.Run("pod without declared resources yields empty encodings", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(&corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{Name: "bare", Namespace: "default"},
			Spec: corev1.PodSpec{
				Containers: []corev1.Container{{Name: "main"}},
			},
		})
		repo := k8s.New(slog.Default(), clientset)

		pods, err := repo.ListPodsQuery(t.Context(), "default")
		require.NoError(t, err)
		require.Len(t, pods, 1)
		require.Empty(t, pods[0].Containers[0].CPURequest)
		require.Empty(t, pods[0].Containers[0].MemoryRequest)
	})

	t.Run("listing failure names the namespace", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset()
		clientset.PrependReactor("list", "pods",
			func(k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, errors.New("apiserver unavailable")
			})

		repo := k8s.New(slog.Default(), clientset)

		_, err := repo.ListPodsQuery(t.Context(), "jobs")
		require.Error(t, err)
		require.Contains(t, err.Error(), "list pods in namespace jobs")
	})
}

func TestAdapter_ListNamespacesQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns namespace names", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset(
			&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
			&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kube-system"}},
		)
		repo := k8s.New(slog.Default(), clientset)

		namespaces, err := repo.ListNamespacesQuery(t.Context())
		require.NoError(t, err)
		require.Len(t, namespaces, 2)
	})

	t.Run("listing failure is wrapped", func(t *testing.T) {
		t.Parallel()

		clientset := fakeclient.NewClientset()
		clientset.PrependReactor("list", "namespaces",
			func(k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, errors.New("apiserver unavailable")
			})

		repo := k8s.New(slog.Default(), clientset)

		_, err := repo.ListNamespacesQuery(t.Context())
		require.Error(t, err)
		require.Contains(t, err.Error(), "list namespaces")
	})
}
