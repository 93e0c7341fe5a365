package ports

import (
	"context"

	"go.trai.ch/k2build/internal/core/domain"
)

// Dispatcher transfers control to the external program implementing a task.
type Dispatcher interface {
	// Program returns the program name and argument vector for the task.
	Program(task domain.Task) (string, []string, error)

	// Dispatch replaces the current process image with the task's program.
	// On success it does not return; the external program's exit status
	// becomes the exit status of this invocation.
	Dispatch(ctx context.Context, task domain.Task) error

	// VerifyMasker checks that the low-complexity masking tool for the
	// database mode is available on PATH.
	VerifyMasker(protein bool) error
}
