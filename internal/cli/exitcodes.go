package cli

import (
	"errors"
	"io/fs"

	"github.com/dreandnought/TreeWatcher/internal/textio"
	"github.com/dreandnought/TreeWatcher/pkg/loader"
)

// Exit codes for treewatcher.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNoTree indicates the input held no reconstructable tree
	// (empty file or banner-only content).
	ExitNoTree = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// errConfig and errUsage mark configuration and usage failures for
// exit-code classification.
var (
	errConfig = errors.New("configuration error")
	errUsage  = errors.New("usage error")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, loader.ErrNoRoot), errors.Is(err, textio.ErrEmptyInput):
		return ExitNoTree
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
