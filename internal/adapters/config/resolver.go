// Package config resolves the build configuration from CLI overrides, the
// inherited environment and mode-dependent defaults.
package config

import (
	"strconv"

	"go.trai.ch/k2build/internal/core/domain"
	"go.trai.ch/k2build/internal/core/ports"
)

// Resolver implements ports.ConfigResolver. Resolution is a pure construction
// over its inputs; the returned record fully contains all outputs and nothing
// is written back to the environment here.
type Resolver struct {
	env ports.Environment
}

// NewResolver creates a new Resolver reading fallbacks from env.
func NewResolver(env ports.Environment) *Resolver {
	return &Resolver{env: env}
}

// Resolve applies flag > environment > default precedence per field.
// The database mode is resolved first since it selects the default table;
// the subblock size is computed last, after threads and block size are known.
func (r *Resolver) Resolve(ov domain.Overrides) (domain.BuildConfiguration, error) {
	protein := r.boolValue(ov.Protein, domain.EnvProteinDB, false)
	defs := domain.DefaultsFor(protein)

	var cfg domain.BuildConfiguration
	var err error

	cfg.Protein = protein
	cfg.DBName = r.stringValue(ov.DBName, domain.EnvDBName, "")
	cfg.Masking = r.boolValue(ov.Masking, domain.EnvMaskLC, true)
	cfg.UseFTP = r.boolValue(ov.UseFTP, domain.EnvUseFTP, false)
	cfg.SkipMaps = r.boolValue(ov.SkipMaps, domain.EnvSkipMaps, false)
	cfg.FastBuild = r.boolValue(ov.FastBuild, domain.EnvFastBuild, false)
	cfg.OnlyEstimate = r.boolValue(ov.OnlyEstimate, domain.EnvOnlyEstimate, false)

	if cfg.ThreadCount, err = r.intValue(ov.Threads, domain.EnvThreadCount, domain.DefaultThreadCount); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.KmerLen, err = r.intValue(ov.KmerLen, domain.EnvKmerLen, defs.KmerLen); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.MinimizerLen, err = r.intValue(ov.MinimizerLen, domain.EnvMinimizerLen, defs.MinimizerLen); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.MinimizerSpaces, err = r.intValue(ov.MinimizerSpaces, domain.EnvMinimizerSpaces, defs.MinimizerSpaces); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.LoadFactor, err = r.floatValue(ov.LoadFactor, domain.EnvLoadFactor, domain.DefaultLoadFactor); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.BlockSize, err = r.intValue(ov.BlockSize, domain.EnvBlockSize, domain.DefaultBlockSize); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.MinTaxidBits, err = r.intValue(ov.MinTaxidBits, domain.EnvMinTaxidBits, 0); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.UpdateInterval, err = r.intValue(ov.UpdateInterval, domain.EnvUpdateInterval, domain.DefaultUpdateInterval); err != nil {
		return domain.BuildConfiguration{}, err
	}

	// The maximum database size has no environment fallback; absent means
	// unlimited.
	if ov.MaxDBSize != nil {
		cfg.MaxDBSize = *ov.MaxDBSize
	}

	// Computed, not defaulted: evaluated only once threads and block size
	// are both resolved.
	if cfg.SubblockSize, err = r.intValue(ov.SubblockSize, domain.EnvSubblockSize, 0); err != nil {
		return domain.BuildConfiguration{}, err
	}
	if cfg.SubblockSize == 0 && cfg.ThreadCount > 0 {
		cfg.SubblockSize = ceilDiv(cfg.BlockSize, cfg.ThreadCount)
	}

	return cfg, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (r *Resolver) stringValue(ov *string, key, def string) string {
	if ov != nil {
		return *ov
	}
	if v, ok := r.env.Lookup(key); ok {
		return v
	}
	return def
}

// boolValue treats a present-but-empty variable as false, mirroring the
// exporter's encoding of booleans as "1" or the empty string.
func (r *Resolver) boolValue(ov *bool, key string, def bool) bool {
	if ov != nil {
		return *ov
	}
	if v, ok := r.env.Lookup(key); ok {
		return v != ""
	}
	return def
}

func (r *Resolver) intValue(ov *int, key string, def int) (int, error) {
	if ov != nil {
		return *ov, nil
	}
	v, ok := r.env.Lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.Detail(domain.ErrInvalidEnvValue, "variable", key, "value", v)
	}
	return n, nil
}

func (r *Resolver) floatValue(ov *float64, key string, def float64) (float64, error) {
	if ov != nil {
		return *ov, nil
	}
	v, ok := r.env.Lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, domain.Detail(domain.ErrInvalidEnvValue, "variable", key, "value", v)
	}
	return f, nil
}
