package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/k2build/internal/core/domain"
)

// validConfig returns a configuration that passes every check; tests mutate
// single fields to probe individual failure modes.
func validConfig() domain.BuildConfiguration {
	return domain.BuildConfiguration{
		DBName:          "testdb",
		ThreadCount:     4,
		KmerLen:         35,
		MinimizerLen:    31,
		MinimizerSpaces: 7,
		LoadFactor:      0.7,
		BlockSize:       16384,
		SubblockSize:    4096,
		Masking:         true,
		UpdateInterval:  1,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, domain.Validate(validConfig()))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BuildConfiguration)
		wantErr error
	}{
		{
			name:    "missing database name",
			mutate:  func(c *domain.BuildConfiguration) { c.DBName = "" },
			wantErr: domain.ErrMissingDBName,
		},
		{
			name:    "zero threads",
			mutate:  func(c *domain.BuildConfiguration) { c.ThreadCount = 0 },
			wantErr: domain.ErrInvalidThreadCount,
		},
		{
			name:    "negative threads",
			mutate:  func(c *domain.BuildConfiguration) { c.ThreadCount = -2 },
			wantErr: domain.ErrInvalidThreadCount,
		},
		{
			name: "minimizer longer than kmer",
			mutate: func(c *domain.BuildConfiguration) {
				c.KmerLen = 20
				c.MinimizerLen = 25
				c.MinimizerSpaces = 0
			},
			wantErr: domain.ErrMinimizerExceedsKmer,
		},
		{
			name: "zero minimizer length",
			mutate: func(c *domain.BuildConfiguration) {
				c.MinimizerLen = 0
				c.MinimizerSpaces = 0
			},
			wantErr: domain.ErrMinimizerLenOutOfRange,
		},
		{
			name: "minimizer length above hard ceiling",
			mutate: func(c *domain.BuildConfiguration) {
				c.KmerLen = 40
				c.MinimizerLen = 32
			},
			wantErr: domain.ErrMinimizerLenOutOfRange,
		},
		{
			name:    "zero load factor",
			mutate:  func(c *domain.BuildConfiguration) { c.LoadFactor = 0 },
			wantErr: domain.ErrInvalidLoadFactor,
		},
		{
			name:    "load factor above one",
			mutate:  func(c *domain.BuildConfiguration) { c.LoadFactor = 1.01 },
			wantErr: domain.ErrInvalidLoadFactor,
		},
		{
			name:    "zero update interval",
			mutate:  func(c *domain.BuildConfiguration) { c.UpdateInterval = 0 },
			wantErr: domain.ErrInvalidUpdateInterval,
		},
		{
			name: "spaces exceed quarter of minimizer",
			mutate: func(c *domain.BuildConfiguration) {
				c.KmerLen = 15
				c.MinimizerLen = 12
				c.MinimizerSpaces = 4
			},
			wantErr: domain.ErrSeedSpacesOutOfRange,
		},
		{
			name:    "zero block size",
			mutate:  func(c *domain.BuildConfiguration) { c.BlockSize = 0 },
			wantErr: domain.ErrInvalidBlockSize,
		},
		{
			name:    "negative max db size",
			mutate:  func(c *domain.BuildConfiguration) { c.MaxDBSize = -1 },
			wantErr: domain.ErrInvalidMaxDBSize,
		},
		{
			name:    "negative taxid bits",
			mutate:  func(c *domain.BuildConfiguration) { c.MinTaxidBits = -1 },
			wantErr: domain.ErrInvalidTaxidBits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := domain.Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, domain.IsUsage(err), "configuration errors are not usage errors")
		})
	}
}

// The first failure in priority order wins when several fields are invalid.
func TestValidate_Priority(t *testing.T) {
	cfg := validConfig()
	cfg.DBName = ""
	cfg.ThreadCount = 0
	cfg.LoadFactor = 5

	err := domain.Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingDBName)
}

func TestValidate_LoadFactorBoundary(t *testing.T) {
	cfg := validConfig()
	cfg.LoadFactor = 1.0
	assert.NoError(t, domain.Validate(cfg))
}

func TestDefaultsFor(t *testing.T) {
	nt := domain.DefaultsFor(false)
	assert.Equal(t, 35, nt.KmerLen)
	assert.Equal(t, 31, nt.MinimizerLen)
	assert.Equal(t, 7, nt.MinimizerSpaces)

	aa := domain.DefaultsFor(true)
	assert.Equal(t, 15, aa.KmerLen)
	assert.Equal(t, 12, aa.MinimizerLen)
	assert.Equal(t, 0, aa.MinimizerSpaces)
}
