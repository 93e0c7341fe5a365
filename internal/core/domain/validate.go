package domain

// Validate enforces the numeric and cross-field invariants over a resolved
// configuration. The first violated check is reported; any failure aborts the
// invocation, this tool is a pre-flight gate with no recovery path.
func Validate(cfg BuildConfiguration) error {
	if cfg.DBName == "" {
		return ErrMissingDBName
	}
	if cfg.ThreadCount <= 0 {
		return Detail(ErrInvalidThreadCount, "threads", cfg.ThreadCount)
	}
	if cfg.MinimizerLen > cfg.KmerLen {
		return Detail(ErrMinimizerExceedsKmer,
			"minimizer_len", cfg.MinimizerLen,
			"kmer_len", cfg.KmerLen,
		)
	}
	if cfg.MinimizerLen <= 0 || cfg.MinimizerLen > MaxMinimizerLen {
		return Detail(ErrMinimizerLenOutOfRange, "minimizer_len", cfg.MinimizerLen)
	}
	if cfg.LoadFactor <= 0 || cfg.LoadFactor > 1 {
		return Detail(ErrInvalidLoadFactor, "load_factor", cfg.LoadFactor)
	}
	if cfg.UpdateInterval < 1 {
		return Detail(ErrInvalidUpdateInterval, "update_interval", cfg.UpdateInterval)
	}
	if _, err := BuildSeedTemplate(cfg.MinimizerLen, cfg.MinimizerSpaces); err != nil {
		return err
	}
	if cfg.BlockSize <= 0 || cfg.SubblockSize <= 0 {
		return Detail(ErrInvalidBlockSize,
			"block_size", cfg.BlockSize,
			"subblock_size", cfg.SubblockSize,
		)
	}
	if cfg.MaxDBSize < 0 {
		return Detail(ErrInvalidMaxDBSize, "max_db_size", cfg.MaxDBSize)
	}
	if cfg.MinTaxidBits < 0 {
		return Detail(ErrInvalidTaxidBits, "min_taxid_bits", cfg.MinTaxidBits)
	}
	return nil
}
