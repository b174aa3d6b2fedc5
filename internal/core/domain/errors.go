package domain

import "go.trai.ch/zerr"

var (
	// ErrStylesheetNotFound is returned when a stylesheet file cannot be stat'ed.
	ErrStylesheetNotFound = zerr.New("stylesheet not found")

	// ErrStylesheetCompile is returned when a stylesheet fails to compile.
	ErrStylesheetCompile = zerr.New("failed to compile stylesheet")

	// ErrTransformFailed is returned when applying a compiled stylesheet fails.
	ErrTransformFailed = zerr.New("transformation failed")

	// ErrSchemaCompile is returned when an XML schema fails to compile.
	ErrSchemaCompile = zerr.New("unable to create schema")

	// ErrDocumentRead is returned when the document to validate cannot be read.
	ErrDocumentRead = zerr.New("failed to read document")

	// ErrValidationLogWrite is returned when the validation error log cannot be written.
	ErrValidationLogWrite = zerr.New("failed to write validation log")

	// ErrProcessStart is returned when an external build process cannot be launched.
	ErrProcessStart = zerr.New("failed to start process")

	// ErrTaskCanceled is returned when a running task was canceled.
	ErrTaskCanceled = zerr.New("task canceled")

	// ErrNoTarget is returned when a task runner is invoked without a target name.
	ErrNoTarget = zerr.New("no target specified")

	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInputNotFound is returned when a declared input file or directory is not found.
	ErrInputNotFound = zerr.New("input not found")

	// ErrBuildExecutionFailed is returned when one or more build targets failed.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrStoreReadFailed is returned when the build info store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info store")

	// ErrStoreWriteFailed is returned when the build info store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info store")

	// ErrConfigReadFailed is returned when a config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCopyFailed is returned when a file copy fails.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrMoveFailed is returned when a file move fails.
	ErrMoveFailed = zerr.New("failed to move file")

	// ErrInvalidCoordinate is returned when a coordinate is outside the projectable range.
	ErrInvalidCoordinate = zerr.New("invalid coordinate")

	// ErrXMLLoadFailed is returned when an XML document cannot be loaded.
	ErrXMLLoadFailed = zerr.New("failed to load XML document")

	// ErrXMLWriteFailed is returned when an XML document cannot be written.
	ErrXMLWriteFailed = zerr.New("failed to write XML document")

	// ErrDocumentInvalid is returned when a document fails schema validation.
	ErrDocumentInvalid = zerr.New("document is not valid")
)
