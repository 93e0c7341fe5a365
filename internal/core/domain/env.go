package domain

// Environment variable names forming the configuration contract with the
// external build scripts. Inherited values act as fallback defaults; before
// dispatch every variable is rewritten from the resolved configuration.
const (
	EnvDBName          = "KRAKEN2_DB_NAME"
	EnvThreadCount     = "KRAKEN2_THREAD_CT"
	EnvLoadFactor      = "KRAKEN2_LOAD_FACTOR"
	EnvKmerLen         = "KRAKEN2_KMER_LEN"
	EnvMinimizerLen    = "KRAKEN2_MINIMIZER_LEN"
	EnvMinimizerSpaces = "KRAKEN2_MINIMIZER_SPACES"
	EnvProteinDB       = "KRAKEN2_PROTEIN_DB"
	EnvUseFTP          = "KRAKEN2_USE_FTP"
	EnvSkipMaps        = "KRAKEN2_SKIP_MAPS"
	EnvMaskLC          = "KRAKEN2_MASK_LC"
	EnvFastBuild       = "KRAKEN2_FAST_BUILD"
	EnvBlockSize       = "KRAKEN2_BLOCK_SIZE"
	EnvSubblockSize    = "KRAKEN2_SUBBLOCK_SIZE"
	EnvMinTaxidBits    = "KRAKEN2_MIN_TAXID_BITS"
	EnvUpdateInterval  = "KRAKEN2_UPDATE_INTERVAL"
	EnvOnlyEstimate    = "KRAKEN2_ONLY_ESTIMATE"

	// Derived values, exported but never read back.
	EnvSeedTemplate = "KRAKEN2_SEED_TEMPLATE"
	EnvMaxDBSize    = "KRAKEN2_MAX_DB_SIZE"
	EnvDir          = "KRAKEN2_DIR"
)
