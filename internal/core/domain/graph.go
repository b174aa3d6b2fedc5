// Package domain contains the core domain models shared by the toolbelt utilities.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of build targets.
type Graph struct {
	root           string
	tasks          map[InternedString]Task
	dependents     map[InternedString][]InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks:      make(map[InternedString]Task),
		dependents: make(map[InternedString][]InternedString),
	}
}

// SetRoot sets the directory relative task paths are resolved against.
func (g *Graph) SetRoot(root string) {
	g.root = root
}

// Root returns the directory relative task paths are resolved against.
func (g *Graph) Root() string {
	return g.root
}

// AddTask adds a task to the graph.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, "cannot add build target"), "task_name", t.Name.String())
	}
	g.tasks[t.Name] = *t
	for _, dep := range t.Dependencies {
		g.dependents[dep] = append(g.dependents[dep], t.Name)
	}
	g.executionOrder = nil
	return nil
}

// Task returns the task with the given name.
func (g *Graph) Task(name string) (Task, bool) {
	t, ok := g.tasks[NewInternedString(name)]
	return t, ok
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Dependents returns the tasks that depend directly on name.
func (g *Graph) Dependents(name InternedString) []InternedString {
	return g.dependents[name]
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order used by Walk if successful.
func (g *Graph) Validate() error {
	order := make([]InternedString, 0, len(g.tasks))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "unresolved build dependency"), "dependency", u.String())
		}

		for _, dep := range task.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	g.executionOrder = order
	return nil
}

func (g *Graph) sortedNames() []InternedString {
	names := make([]InternedString, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return names
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	var sb strings.Builder
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		sb.WriteString(path[i].String())
		sb.WriteString(" -> ")
	}
	sb.WriteString(dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid build graph"), "cycle", sb.String())
}

// Walk returns an iterator that yields tasks in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}

// Closure returns a new graph holding the named targets and everything they
// depend on, transitively.
func (g *Graph) Closure(targets []string) (*Graph, error) {
	sub := NewGraph()
	sub.SetRoot(g.root)

	var add func(name InternedString) error
	add = func(name InternedString) error {
		if _, done := sub.tasks[name]; done {
			return nil
		}
		task, ok := g.tasks[name]
		if !ok {
			return zerr.With(zerr.Wrap(ErrTaskNotFound, "unknown build target"), "target", name.String())
		}
		if err := sub.AddTask(&task); err != nil {
			return err
		}
		for _, dep := range task.Dependencies {
			if err := add(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, target := range targets {
		if err := add(NewInternedString(target)); err != nil {
			return nil, err
		}
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return sub, nil
}
