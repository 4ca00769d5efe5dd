package logging

// Field names for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Lexing.
	FieldItems    = "items"
	FieldErrors   = "errors"
	FieldLanguage = "language"
	FieldOffset   = "offset"
	FieldStack    = "stack"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
