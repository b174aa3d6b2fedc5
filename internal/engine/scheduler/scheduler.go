// Package scheduler implements the in-process build engine: it runs build
// targets in dependency order, in parallel where the graph allows, and skips
// targets whose inputs have not changed since their last successful run.
package scheduler

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a build target.
type TaskStatus string

const (
	// StatusPending indicates the target is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the target is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the target has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the target failed.
	StatusFailed TaskStatus = "Failed"
	// StatusCached indicates the target was skipped because it was up to date.
	StatusCached TaskStatus = "Cached"
)

// Request describes one build.
type Request struct {
	// Graph holds every known target.
	Graph *domain.Graph
	// Targets are the targets to build. Empty builds the whole graph.
	Targets []string
	// Properties are exported to each target's environment and expanded
	// in its command as ${name}.
	Properties map[string]string
	// Store records successful runs. Nil disables skipping.
	Store ports.BuildInfoStore
	// Parallelism bounds the targets running at once. Values below 1 mean 1.
	Parallelism int
}

// Scheduler manages the execution of build targets.
type Scheduler struct {
	executor ports.Executor
	hasher   ports.Hasher
	listener ports.BuildListener
	now      func() time.Time

	mu         sync.RWMutex
	taskStatus map[domain.InternedString]TaskStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(executor ports.Executor, hasher ports.Hasher, listener ports.BuildListener) *Scheduler {
	return &Scheduler{
		executor:   executor,
		hasher:     hasher,
		listener:   listener,
		now:        time.Now,
		taskStatus: make(map[domain.InternedString]TaskStatus),
	}
}

func (s *Scheduler) initTaskStatuses(g *domain.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.taskStatus)
	for task := range g.Walk() {
		s.taskStatus[task.Name] = StatusPending
	}
}

func (s *Scheduler) updateStatus(name domain.InternedString, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

func (s *Scheduler) getStatus(name domain.InternedString) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

// Run builds the requested targets and everything they depend on. A target
// starts only after all of its dependencies succeeded; a failure stops its
// dependents but not unrelated targets.
func (s *Scheduler) Run(ctx context.Context, req Request) error {
	targets := req.Targets
	if len(targets) == 0 {
		targets = allTargets(req.Graph)
	}

	sub, err := req.Graph.Closure(targets)
	if err != nil {
		return err
	}
	s.initTaskStatuses(sub)
	s.listener.BuildStarted(targets)

	err = s.newRunState(ctx, sub, req).run()
	if err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrBuildExecutionFailed, err), "build failed")
	}
	s.listener.BuildFinished(err)
	return err
}

func allTargets(g *domain.Graph) []string {
	var names []string
	for task := range g.Walk() {
		names = append(names, task.Name.String())
	}
	return names
}

type result struct {
	task domain.InternedString
	err  error
}

type runState struct {
	s           *Scheduler
	ctx         context.Context
	graph       *domain.Graph
	req         Request
	env         []string
	inDegree    map[domain.InternedString]int
	tasks       map[domain.InternedString]domain.Task
	ready       []domain.InternedString
	active      int
	resultsCh   chan result
	errs        error
	parallelism int
}

func (s *Scheduler) newRunState(ctx context.Context, g *domain.Graph, req Request) *runState {
	parallelism := max(req.Parallelism, 1)
	inDegree := make(map[domain.InternedString]int, g.TaskCount())
	tasks := make(map[domain.InternedString]domain.Task, g.TaskCount())

	var ready []domain.InternedString
	for task := range g.Walk() {
		tasks[task.Name] = task
		inDegree[task.Name] = len(task.Dependencies)
		if len(task.Dependencies) == 0 {
			ready = append(ready, task.Name)
		}
	}

	return &runState{
		s:           s,
		ctx:         ctx,
		graph:       g,
		req:         req,
		env:         propertyEnv(req.Properties),
		inDegree:    inDegree,
		tasks:       tasks,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		parallelism: parallelism,
	}
}

func (state *runState) run() error {
	for !state.isDone() {
		state.schedule()
		if state.isDone() {
			break
		}
		if state.ctx.Err() != nil && state.active == 0 {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
			// Drain running targets; nothing new is scheduled.
			if state.active > 0 {
				state.handleResult(<-state.resultsCh)
			}
		}
	}

	if err := state.ctx.Err(); err != nil {
		state.errs = errors.Join(state.errs, err)
	}
	return state.errs
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(name, StatusRunning)

		go func(t domain.Task) {
			state.resultsCh <- result{task: t.Name, err: state.execute(&t)}
		}(state.tasks[name])
	}
}

func (state *runState) execute(task *domain.Task) error {
	s := state.s
	name := task.Name.String()

	if !task.Cacheable() || state.req.Store == nil {
		s.listener.TargetStarted(name)
		return state.runTask(task)
	}

	inputHash, err := s.hasher.ComputeInputHash(task, state.hashEnv(task), state.graph.Root())
	if err != nil {
		return err
	}
	if state.upToDate(task, inputHash) {
		s.updateStatus(task.Name, StatusCached)
		s.listener.TargetSkipped(name)
		return nil
	}

	s.listener.TargetStarted(name)
	if err := state.runTask(task); err != nil {
		return err
	}
	return state.record(task, inputHash)
}

func (state *runState) runTask(task *domain.Task) error {
	expanded := *task
	expanded.Command = ExpandProperties(task.Command, state.req.Properties)
	return state.s.executor.Execute(state.ctx, &expanded, state.env, nil, nil)
}

// upToDate reports whether the stored record matches inputHash and the
// declared outputs are still the ones that run produced.
func (state *runState) upToDate(task *domain.Task, inputHash string) bool {
	info, err := state.req.Store.Get(task.Name.String())
	if err != nil || info == nil || info.InputHash != inputHash {
		return false
	}
	if len(task.Outputs) == 0 {
		return true
	}
	outputHash, err := state.s.hasher.ComputeOutputHash(outputPaths(task), state.graph.Root())
	return err == nil && outputHash == info.OutputHash
}

func (state *runState) record(task *domain.Task, inputHash string) error {
	info := domain.BuildInfo{
		TaskName:  task.Name.String(),
		InputHash: inputHash,
		Timestamp: state.s.now(),
	}
	if len(task.Outputs) > 0 {
		outputHash, err := state.s.hasher.ComputeOutputHash(outputPaths(task), state.graph.Root())
		if err != nil {
			return zerr.Wrap(err, "target did not produce its outputs")
		}
		info.OutputHash = outputHash
	}
	return state.req.Store.Put(info)
}

// hashEnv is the part of the environment a target's result depends on.
func (state *runState) hashEnv(task *domain.Task) map[string]string {
	env := make(map[string]string, len(state.req.Properties)+len(task.Environment))
	maps.Copy(env, state.req.Properties)
	maps.Copy(env, task.Environment)
	return env
}

func (state *runState) handleResult(res result) {
	state.active--
	name := res.task.String()

	if res.err != nil {
		wrapped := zerr.With(zerr.Wrap(res.err, "target failed"), "target", name)
		state.errs = errors.Join(state.errs, wrapped)
		state.s.updateStatus(res.task, StatusFailed)
		state.s.listener.TargetFinished(name, res.err)
		return
	}

	if state.s.getStatus(res.task) != StatusCached {
		state.s.updateStatus(res.task, StatusCompleted)
		state.s.listener.TargetFinished(name, nil)
	}
	for _, dep := range state.graph.Dependents(res.task) {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

func outputPaths(task *domain.Task) []string {
	paths := make([]string, len(task.Outputs))
	for i, out := range task.Outputs {
		paths[i] = out.String()
	}
	return paths
}

func propertyEnv(props map[string]string) []string {
	env := make([]string, 0, len(props))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		env = append(env, k+"="+props[k])
	}
	return env
}
