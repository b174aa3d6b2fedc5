package ports

// BuildListener receives progress events from the in-process build engine.
//
//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type BuildListener interface {
	BuildStarted(targets []string)
	TargetStarted(name string)
	TargetSkipped(name string)
	TargetFinished(name string, err error)
	BuildFinished(err error)
}
