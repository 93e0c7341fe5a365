// Package shell dispatches the selected task to its external program by
// replacing the current process image.
package shell

import (
	"context"
	"os/exec"

	"go.trai.ch/k2build/internal/core/domain"
	"go.trai.ch/k2build/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// programs maps each task kind to the external program implementing it.
var programs = map[domain.TaskKind]string{
	domain.TaskDownloadTaxonomy: "download_taxonomy.sh",
	domain.TaskDownloadLibrary:  "download_genomic_library.sh",
	domain.TaskAddToLibrary:     "add_to_library.sh",
	domain.TaskBuild:            "build_kraken2_db.sh",
	domain.TaskStandard:         "standard_installation.sh",
	domain.TaskClean:            "clean_db.sh",
}

// specialPrograms maps each special database to its installation program.
var specialPrograms = map[domain.SpecialType]string{
	domain.SpecialGreengenes: "16S_gg_installation.sh",
	domain.SpecialSilva:      "16S_silva_installation.sh",
	domain.SpecialRDP:        "16S_rdp_installation.sh",
}

// Dispatcher implements ports.Dispatcher using execve. The lookPath and
// execve functions are swappable for testing.
type Dispatcher struct {
	env      ports.Environment
	logger   ports.Logger
	lookPath func(file string) (string, error)
	execve   func(argv0 string, argv []string, envv []string) error
}

// NewDispatcher creates a Dispatcher passing env to the dispatched program.
func NewDispatcher(env ports.Environment, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		env:      env,
		logger:   logger,
		lookPath: exec.LookPath,
		execve:   unix.Exec,
	}
}

// Program returns the external program name and argument vector for a task.
// Subtypes are validated against their closed enumerations; an unrecognized
// value fails here rather than being forwarded.
func (d *Dispatcher) Program(task domain.Task) (string, []string, error) {
	switch task.Kind {
	case domain.TaskDownloadLibrary:
		if _, err := domain.ParseLibraryType(string(task.Library)); err != nil {
			return "", nil, err
		}
		return programs[task.Kind], []string{string(task.Library)}, nil
	case domain.TaskAddToLibrary:
		return programs[task.Kind], []string{task.File}, nil
	case domain.TaskSpecial:
		prog, ok := specialPrograms[task.Special]
		if !ok {
			return "", nil, domain.Detail(domain.ErrUnknownSpecialType, "special", string(task.Special))
		}
		return prog, nil, nil
	default:
		prog, ok := programs[task.Kind]
		if !ok {
			return "", nil, domain.ErrNoTaskSelected
		}
		return prog, nil, nil
	}
}

// Dispatch resolves the task's program on PATH and replaces the current
// process image with it. There is no post-dispatch code path; on success the
// external program's exit status becomes this tool's exit status.
func (d *Dispatcher) Dispatch(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prog, args, err := d.Program(task)
	if err != nil {
		return err
	}

	path, err := d.lookPath(prog)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to locate task program"), "program", prog)
	}

	d.logger.Info("dispatching " + prog)

	argv := append([]string{prog}, args...)
	if err := d.execve(path, argv, d.env.Environ()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to execute task program"), "program", prog)
	}
	return nil
}

// VerifyMasker checks that the low-complexity masking tool for the database
// mode is available on PATH before any sequence processing is dispatched.
func (d *Dispatcher) VerifyMasker(protein bool) error {
	tool := "k2mask"
	if protein {
		tool = "segmasker"
	}
	if _, err := d.lookPath(tool); err != nil {
		return domain.Detail(domain.ErrMaskerNotFound, "masker", tool)
	}
	return nil
}
