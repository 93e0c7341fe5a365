package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/k2build/internal/core/domain"
)

func TestSelectTask_ExactlyOne(t *testing.T) {
	tests := []struct {
		name  string
		flags domain.TaskFlags
		want  domain.Task
	}{
		{
			name:  "download taxonomy",
			flags: domain.TaskFlags{DownloadTaxonomy: true},
			want:  domain.Task{Kind: domain.TaskDownloadTaxonomy},
		},
		{
			name:  "download library",
			flags: domain.TaskFlags{DownloadLibrary: "bacteria"},
			want:  domain.Task{Kind: domain.TaskDownloadLibrary, Library: domain.LibraryBacteria},
		},
		{
			name:  "download UniVec_Core library",
			flags: domain.TaskFlags{DownloadLibrary: "UniVec_Core"},
			want:  domain.Task{Kind: domain.TaskDownloadLibrary, Library: domain.LibraryUniVecCore},
		},
		{
			name:  "add to library",
			flags: domain.TaskFlags{AddToLibrary: "genomes.fna"},
			want:  domain.Task{Kind: domain.TaskAddToLibrary, File: "genomes.fna"},
		},
		{
			name:  "build",
			flags: domain.TaskFlags{Build: true},
			want:  domain.Task{Kind: domain.TaskBuild},
		},
		{
			name:  "standard",
			flags: domain.TaskFlags{Standard: true},
			want:  domain.Task{Kind: domain.TaskStandard},
		},
		{
			name:  "clean",
			flags: domain.TaskFlags{Clean: true},
			want:  domain.Task{Kind: domain.TaskClean},
		},
		{
			name:  "special",
			flags: domain.TaskFlags{Special: "silva"},
			want:  domain.Task{Kind: domain.TaskSpecial, Special: domain.SpecialSilva},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.SelectTask(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectTask_InvariantViolations(t *testing.T) {
	t.Run("zero tasks selected", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoTaskSelected)
		assert.True(t, domain.IsUsage(err))
	})

	t.Run("two tasks selected", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{Build: true, Clean: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMultipleTasksSelected)
		assert.True(t, domain.IsUsage(err))
	})

	t.Run("all seven tasks selected", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{
			DownloadTaxonomy: true,
			DownloadLibrary:  "viral",
			AddToLibrary:     "extra.fna",
			Build:            true,
			Standard:         true,
			Clean:            true,
			Special:          "rdp",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMultipleTasksSelected)
	})

	t.Run("unknown library type", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{DownloadLibrary: "mammals"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownLibraryType)
		assert.True(t, domain.IsUsage(err))
	})

	t.Run("library type is case sensitive", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{DownloadLibrary: "univec"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownLibraryType)
	})

	t.Run("unknown special type", func(t *testing.T) {
		_, err := domain.SelectTask(domain.TaskFlags{Special: "gtdb"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownSpecialType)
		assert.True(t, domain.IsUsage(err))
	})
}

func TestTaskKind_String(t *testing.T) {
	assert.Equal(t, "download-taxonomy", domain.TaskDownloadTaxonomy.String())
	assert.Equal(t, "special", domain.TaskSpecial.String())
	assert.Equal(t, "unknown", domain.TaskUnknown.String())
}

func TestIsUsage(t *testing.T) {
	assert.True(t, domain.IsUsage(domain.ErrBadUsage))
	assert.False(t, domain.IsUsage(domain.ErrInvalidLoadFactor))
	assert.False(t, domain.IsUsage(nil))
}
