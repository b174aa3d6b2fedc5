package scheduler_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports/mocks"
	"go.trai.ch/toolbelt/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func task(name string, deps ...string) *domain.Task {
	return &domain.Task{
		Name:         domain.NewInternedString(name),
		Command:      []string{"echo", name},
		Dependencies: domain.NewInternedStrings(deps),
	}
}

func graphOf(t *testing.T, tasks ...*domain.Task) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	g.SetRoot("/work")
	for _, tk := range tasks {
		require.NoError(t, g.AddTask(tk))
	}
	require.NoError(t, g.Validate())
	return g
}

type fixture struct {
	exec     *mocks.MockExecutor
	hasher   *mocks.MockHasher
	store    *mocks.MockBuildInfoStore
	listener *mocks.MockBuildListener
	s        *scheduler.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		exec:     mocks.NewMockExecutor(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		listener: mocks.NewMockBuildListener(ctrl),
	}
	f.s = scheduler.NewScheduler(f.exec, f.hasher, f.listener)
	return f
}

func (f *fixture) quietListener() {
	f.listener.EXPECT().BuildStarted(gomock.Any()).AnyTimes()
	f.listener.EXPECT().TargetStarted(gomock.Any()).AnyTimes()
	f.listener.EXPECT().TargetSkipped(gomock.Any()).AnyTimes()
	f.listener.EXPECT().TargetFinished(gomock.Any(), gomock.Any()).AnyTimes()
	f.listener.EXPECT().BuildFinished(gomock.Any()).AnyTimes()
}

func TestScheduler_Run_DependencyOrder(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	g := graphOf(t,
		task("package", "compile", "schemas"),
		task("compile", "init"),
		task("schemas", "init"),
		task("init"),
	)

	var mu sync.Mutex
	var order []string
	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).
		DoAndReturn(func(_ context.Context, tk *domain.Task, _ []string, _, _ io.Writer) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, tk.Name.String())
			return nil
		}).Times(4)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{Graph: g, Targets: []string{"package"}, Parallelism: 4}))

	require.Len(t, order, 4)
	assert.Equal(t, "init", order[0])
	assert.Equal(t, "package", order[3])
	assert.ElementsMatch(t, []string{"compile", "schemas"}, order[1:3])

	for name, status := range f.s.GetTaskStatusMap() {
		assert.Equal(t, scheduler.StatusCompleted, status, name.String())
	}
}

func TestScheduler_Run_FailureStopsDependents(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	g := graphOf(t,
		task("package", "compile", "schemas"),
		task("compile", "init"),
		task("schemas", "init"),
		task("init"),
	)

	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).
		DoAndReturn(func(_ context.Context, tk *domain.Task, _ []string, _, _ io.Writer) error {
			switch tk.Name.String() {
			case "compile":
				return errors.New("javac failed")
			case "package":
				t.Error("package must not run after compile failed")
			}
			return nil
		}).Times(3)

	err := f.s.Run(t.Context(), scheduler.Request{Graph: g, Parallelism: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildExecutionFailed))
	assert.Contains(t, err.Error(), "javac failed")

	statuses := f.s.GetTaskStatusMap()
	assert.Equal(t, scheduler.StatusFailed, statuses[domain.NewInternedString("compile")])
	assert.Equal(t, scheduler.StatusCompleted, statuses[domain.NewInternedString("schemas")])
	assert.Equal(t, scheduler.StatusPending, statuses[domain.NewInternedString("package")])
}

func TestScheduler_Run_OnlyRequestedClosure(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	g := graphOf(t, task("docs"), task("compile", "init"), task("init"))

	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).
		DoAndReturn(func(_ context.Context, tk *domain.Task, _ []string, _, _ io.Writer) error {
			assert.NotEqual(t, "docs", tk.Name.String())
			return nil
		}).Times(2)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{Graph: g, Targets: []string{"compile"}}))
}

func TestScheduler_Run_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	g := graphOf(t, task("init"))

	err := f.s.Run(t.Context(), scheduler.Request{Graph: g, Targets: []string{"deploy"}})
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestScheduler_Run_PropertiesExpandedAndExported(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	tk := &domain.Task{
		Name:    domain.NewInternedString("dist"),
		Command: []string{"zip", "-r", "sim-${release}.zip", "${missing}"},
	}
	g := graphOf(t, tk)

	f.exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), []string{"arch=x64", "release=2.1"}, nil, nil).
		DoAndReturn(func(_ context.Context, got *domain.Task, _ []string, _, _ io.Writer) error {
			assert.Equal(t, []string{"zip", "-r", "sim-2.1.zip", "${missing}"}, got.Command)
			return nil
		})

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{
		Graph:      g,
		Properties: map[string]string{"release": "2.1", "arch": "x64"},
	}))
	assert.Equal(t, []string{"zip", "-r", "sim-${release}.zip", "${missing}"}, tk.Command, "graph task is not modified")
}

func cacheableTask() *domain.Task {
	return &domain.Task{
		Name:    domain.NewInternedString("report"),
		Command: []string{"toolbelt", "transform", "in.xml", "out.html", "r.xsl"},
		Inputs:  domain.NewInternedStrings([]string{"in.xml", "r.xsl"}),
		Outputs: domain.NewInternedStrings([]string{"out.html"}),
	}
}

func TestScheduler_Run_SkipsUpToDateTarget(t *testing.T) {
	f := newFixture(t)
	g := graphOf(t, cacheableTask())

	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), map[string]string{"release": "2.1"}, "/work").Return("in-1", nil)
	f.store.EXPECT().Get("report").Return(&domain.BuildInfo{TaskName: "report", InputHash: "in-1", OutputHash: "out-1"}, nil)
	f.hasher.EXPECT().ComputeOutputHash([]string{"out.html"}, "/work").Return("out-1", nil)

	gomock.InOrder(
		f.listener.EXPECT().BuildStarted([]string{"report"}),
		f.listener.EXPECT().TargetSkipped("report"),
		f.listener.EXPECT().BuildFinished(nil),
	)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{
		Graph:      g,
		Targets:    []string{"report"},
		Properties: map[string]string{"release": "2.1"},
		Store:      f.store,
	}))
	assert.Equal(t, scheduler.StatusCached, f.s.GetTaskStatusMap()[domain.NewInternedString("report")])
}

func TestScheduler_Run_RebuildsChangedTarget(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2024, time.March, 5, 7, 9, 0, 0, time.UTC)
	f.s.SetClock(func() time.Time { return now })
	g := graphOf(t, cacheableTask())

	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any(), "/work").Return("in-2", nil)
	f.store.EXPECT().Get("report").Return(&domain.BuildInfo{TaskName: "report", InputHash: "in-1"}, nil)
	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).Return(nil)
	f.hasher.EXPECT().ComputeOutputHash([]string{"out.html"}, "/work").Return("out-2", nil)
	f.store.EXPECT().Put(domain.BuildInfo{TaskName: "report", InputHash: "in-2", OutputHash: "out-2", Timestamp: now}).Return(nil)

	gomock.InOrder(
		f.listener.EXPECT().BuildStarted([]string{"report"}),
		f.listener.EXPECT().TargetStarted("report"),
		f.listener.EXPECT().TargetFinished("report", nil),
		f.listener.EXPECT().BuildFinished(nil),
	)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{Graph: g, Store: f.store}))
}

func TestScheduler_Run_RebuildsWhenOutputsChanged(t *testing.T) {
	f := newFixture(t)
	f.quietListener()
	g := graphOf(t, cacheableTask())

	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any(), "/work").Return("in-1", nil)
	f.store.EXPECT().Get("report").Return(&domain.BuildInfo{TaskName: "report", InputHash: "in-1", OutputHash: "out-1"}, nil)
	gomock.InOrder(
		f.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/work").Return("", errors.New("output missing")),
		f.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/work").Return("out-1", nil),
	)
	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).Return(nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{Graph: g, Store: f.store}))
}

func TestScheduler_Run_RespectsParallelism(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	g := graphOf(t, task("a"), task("b"), task("c"), task("d"), task("e"))

	var running, peak atomic.Int32
	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).
		DoAndReturn(func(context.Context, *domain.Task, []string, io.Writer, io.Writer) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
			return nil
		}).Times(5)

	require.NoError(t, f.s.Run(t.Context(), scheduler.Request{Graph: g, Parallelism: 2}))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScheduler_Run_Canceled(t *testing.T) {
	f := newFixture(t)
	f.quietListener()

	g := graphOf(t, task("second", "first"), task("first"))

	ctx, cancel := context.WithCancel(t.Context())
	f.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil).
		DoAndReturn(func(context.Context, *domain.Task, []string, io.Writer, io.Writer) error {
			cancel()
			return nil
		})

	err := f.s.Run(ctx, scheduler.Request{Graph: g})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
