package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for jsplex.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitLexErrors indicates that lexing completed with error items.
	ExitLexErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates invalid input data, like a corrupt state blob.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78
)

// ErrLexErrors is returned when lexing produced error items.
var ErrLexErrors = errors.New("lexing errors found")

// ErrInvalidInput wraps errors caused by malformed command arguments.
var ErrInvalidInput = errors.New("invalid input")

// ExitCode maps an error returned by a command to an exit code.
func ExitCode(err error) int {
	var (
		cfgErr  *ConfigError
		pathErr *fs.PathError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLexErrors):
		return ExitLexErrors
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.Is(err, ErrInvalidInput):
		return ExitDataError
	case errors.As(err, &pathErr):
		return ExitIOError
	}
	return ExitInvalidUsage
}
