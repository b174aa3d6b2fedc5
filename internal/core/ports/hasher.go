package ports

import "go.trai.ch/toolbelt/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes the input hash for a target, resolving its
	// input patterns against root.
	ComputeInputHash(task *domain.Task, env map[string]string, root string) (string, error)
	// ComputeOutputHash computes a hash over the given output files.
	ComputeOutputHash(outputs []string, root string) (string, error)
}
