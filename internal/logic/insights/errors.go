package insights

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNoMatchingPods = errors.New("no matching pods")
	ErrListNodes      = errors.New("list nodes")
	ErrListPods       = errors.New("list pods")
	ErrListNamespaces = errors.New("list namespaces")
)
