// Package domain contains the core configuration and task model for k2build.
package domain

// MaxMinimizerLen is the hard ceiling on minimizer length. It is imposed by
// the encoding width of the compact hash table format built downstream.
const MaxMinimizerLen = 31

// Mode-independent defaults.
const (
	DefaultThreadCount    = 1
	DefaultLoadFactor     = 0.7
	DefaultBlockSize      = 16384
	DefaultUpdateInterval = 1
)

// ModeDefaults holds the parameter defaults that depend on the database mode.
type ModeDefaults struct {
	KmerLen         int
	MinimizerLen    int
	MinimizerSpaces int
}

var (
	nucleotideDefaults = ModeDefaults{KmerLen: 35, MinimizerLen: 31, MinimizerSpaces: 7}
	proteinDefaults    = ModeDefaults{KmerLen: 15, MinimizerLen: 12, MinimizerSpaces: 0}
)

// DefaultsFor returns the parameter defaults for the given database mode.
func DefaultsFor(protein bool) ModeDefaults {
	if protein {
		return proteinDefaults
	}
	return nucleotideDefaults
}

// BuildConfiguration is the fully resolved set of build parameters.
// It is constructed once per invocation and not mutated after validation,
// except for SeedTemplate which is derived and attached right after.
type BuildConfiguration struct {
	DBName          string  `yaml:"db"`
	ThreadCount     int     `yaml:"threads"`
	Protein         bool    `yaml:"protein"`
	KmerLen         int     `yaml:"kmer_len"`
	MinimizerLen    int     `yaml:"minimizer_len"`
	MinimizerSpaces int     `yaml:"minimizer_spaces"`
	SeedTemplate    string  `yaml:"seed_template"`
	LoadFactor      float64 `yaml:"load_factor"`
	BlockSize       int     `yaml:"block_size"`
	SubblockSize    int     `yaml:"subblock_size"`
	MaxDBSize       int64   `yaml:"max_db_size"` // 0 means unlimited
	Masking         bool    `yaml:"masking"`
	UseFTP          bool    `yaml:"use_ftp"`
	SkipMaps        bool    `yaml:"skip_maps"`
	FastBuild       bool    `yaml:"fast_build"`
	OnlyEstimate    bool    `yaml:"only_estimate"`
	MinTaxidBits    int     `yaml:"min_taxid_bits"` // 0 means auto
	UpdateInterval  int     `yaml:"update_interval"`
}

// Overrides carries the explicit CLI flag values, the highest-precedence
// configuration tier. A nil field means the flag was not given and the
// inherited environment or the mode default applies instead.
type Overrides struct {
	DBName          *string
	Threads         *int
	KmerLen         *int
	MinimizerLen    *int
	MinimizerSpaces *int
	Protein         *bool
	Masking         *bool
	MaxDBSize       *int64
	UseFTP          *bool
	SkipMaps        *bool
	LoadFactor      *float64
	FastBuild       *bool
	BlockSize       *int
	SubblockSize    *int
	MinTaxidBits    *int
	UpdateInterval  *int
	OnlyEstimate    *bool
}
