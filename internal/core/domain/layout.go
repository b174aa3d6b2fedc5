package domain

const (
	// StateDirName is the directory holding toolbelt's own bookkeeping.
	StateDirName = ".toolbelt"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
