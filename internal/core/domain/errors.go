package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrBadUsage is returned for malformed command line input, such as
	// unknown flags or unexpected positional arguments.
	ErrBadUsage = zerr.New("invalid command line")

	// ErrNoTaskSelected is returned when none of the task flags is given.
	ErrNoTaskSelected = zerr.New("no task selected")

	// ErrMultipleTasksSelected is returned when more than one task flag is given.
	ErrMultipleTasksSelected = zerr.New("more than one task selected")

	// ErrUnknownLibraryType is returned when --download-library names a
	// library outside the recognized set.
	ErrUnknownLibraryType = zerr.New("unknown library type")

	// ErrUnknownSpecialType is returned when --special names a database
	// outside the recognized set.
	ErrUnknownSpecialType = zerr.New("unknown special database type")

	// ErrProteinIncompatibleTask is returned when a protein database is
	// combined with a nucleotide-only task.
	ErrProteinIncompatibleTask = zerr.New("task not available for protein databases")

	// ErrMissingDBName is returned when no database name is configured.
	ErrMissingDBName = zerr.New("database name required")

	// ErrInvalidThreadCount is returned when the thread count is not positive.
	ErrInvalidThreadCount = zerr.New("thread count must be positive")

	// ErrMinimizerExceedsKmer is returned when the minimizer length is
	// greater than the k-mer length.
	ErrMinimizerExceedsKmer = zerr.New("minimizer length must not exceed k-mer length")

	// ErrMinimizerLenOutOfRange is returned when the minimizer length is
	// outside 1..31.
	ErrMinimizerLenOutOfRange = zerr.New("minimizer length must be between 1 and 31")

	// ErrInvalidLoadFactor is returned when the load factor is outside (0, 1].
	ErrInvalidLoadFactor = zerr.New("load factor must be greater than 0 and at most 1")

	// ErrInvalidUpdateInterval is returned when the update interval is below 1.
	ErrInvalidUpdateInterval = zerr.New("update interval must be at least 1")

	// ErrSeedSpacesOutOfRange is returned when the minimizer spaces are
	// negative or exceed the maximum allowed for the minimizer length.
	ErrSeedSpacesOutOfRange = zerr.New("minimizer spaces exceed maximum allowed for minimizer length")

	// ErrInvalidBlockSize is returned when the block or subblock size is not
	// positive.
	ErrInvalidBlockSize = zerr.New("block and subblock sizes must be positive")

	// ErrInvalidMaxDBSize is returned when the maximum database size is negative.
	ErrInvalidMaxDBSize = zerr.New("maximum database size must not be negative")

	// ErrInvalidTaxidBits is returned when the minimum taxid bit count is negative.
	ErrInvalidTaxidBits = zerr.New("minimum bits for taxid must not be negative")

	// ErrInvalidEnvValue is returned when an inherited environment variable
	// cannot be parsed as the expected type.
	ErrInvalidEnvValue = zerr.New("invalid value in inherited environment")

	// ErrLibraryFileNotFound is returned when the --add-to-library file does
	// not exist or is not readable.
	ErrLibraryFileNotFound = zerr.New("library file not found")

	// ErrMaskerNotFound is returned when masking is enabled but the
	// low-complexity masking tool is not on PATH.
	ErrMaskerNotFound = zerr.New("unable to find masking tool on PATH")
)

// Detail decorates err with key/value metadata pairs. zerr.With on a root
// error returns a detached copy that errors.Is no longer matches, so the
// pairs land on a message-less wrapper that keeps err as the cause.
func Detail(err error, pairs ...any) error {
	if err == nil {
		return nil
	}
	decorated := zerr.Wrap(err, "")
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		decorated = zerr.With(decorated, key, pairs[i+1])
	}
	return decorated
}

// usageErrors are the error kinds that indicate misuse of the command line
// rather than an out-of-range configuration value.
var usageErrors = []error{
	ErrBadUsage,
	ErrNoTaskSelected,
	ErrMultipleTasksSelected,
	ErrUnknownLibraryType,
	ErrUnknownSpecialType,
	ErrProteinIncompatibleTask,
}

// IsUsage reports whether err is a usage error. Callers map usage errors to
// the conventional exit code 64.
func IsUsage(err error) bool {
	for _, sentinel := range usageErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
