package domain

// Task is a build target executed by the in-process build engine.
// It uses InternedString for fields that are frequently repeated to save memory.
type Task struct {
	Name         InternedString
	Command      []string
	Inputs       []InternedString
	Outputs      []InternedString
	Dependencies []InternedString
	Environment  map[string]string
	WorkingDir   InternedString
}

// Cacheable reports whether the task declares inputs and can be skipped when
// they have not changed since the last successful run.
func (t *Task) Cacheable() bool {
	return len(t.Inputs) > 0
}
