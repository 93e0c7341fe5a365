package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/k2build/internal/core/domain"
)

func TestBuildSeedTemplate(t *testing.T) {
	tests := []struct {
		name   string
		length int
		spaces int
		want   string
	}{
		{
			name:   "nucleotide default",
			length: 31,
			spaces: 7,
			want:   "11111111111111111" + strings.Repeat("01", 7),
		},
		{
			name:   "protein default has no spaces",
			length: 12,
			spaces: 0,
			want:   "111111111111",
		},
		{
			name:   "single space",
			length: 8,
			spaces: 2,
			want:   "11110101",
		},
		{
			name:   "minimal minimizer",
			length: 1,
			spaces: 0,
			want:   "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.BuildSeedTemplate(tt.length, tt.spaces)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every valid combination yields a template of exactly minimizerLen
// characters with minimizerLen - minimizerSpaces care positions.
func TestBuildSeedTemplate_Properties(t *testing.T) {
	for length := 1; length <= domain.MaxMinimizerLen; length++ {
		for spaces := 0; spaces <= length/4; spaces++ {
			got, err := domain.BuildSeedTemplate(length, spaces)
			require.NoError(t, err)
			assert.Len(t, got, length, "length=%d spaces=%d", length, spaces)
			assert.Equal(t, length-spaces, strings.Count(got, "1"), "length=%d spaces=%d", length, spaces)
			assert.Equal(t, spaces, strings.Count(got, "0"), "length=%d spaces=%d", length, spaces)
		}
	}
}

func TestBuildSeedTemplate_SpacesOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		length int
		spaces int
	}{
		{name: "spaces exceed quarter of minimizer", length: 12, spaces: 4},
		{name: "spaces exceed maximum for default minimizer", length: 31, spaces: 8},
		{name: "negative spaces", length: 31, spaces: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.BuildSeedTemplate(tt.length, tt.spaces)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSeedSpacesOutOfRange)
		})
	}
}
